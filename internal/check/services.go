// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package check

import (
	"context"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/dashctl/dashctl/internal/awscli"
)

const lambdaListCap = 10

// Services discovers what is actually running in the account so the operator
// can see which dashboard panels will have data. Discovery failures degrade
// to printed errors; the section always runs to the end.
func (c *Checker) Services(ctx context.Context) bool {
	c.ui.Header("Service Discovery")

	ok := c.discoverECS(ctx)

	c.ui.Println()
	ok = c.discoverEC2(ctx) && ok

	c.ui.Println()
	ok = c.discoverLambda(ctx) && ok

	c.ui.Println()
	ok = c.discoverELB(ctx) && ok

	c.ui.Println()
	ok = c.discoverRDS(ctx) && ok

	return ok
}

func (c *Checker) discoverECS(ctx context.Context) bool {
	c.ui.Println("ECS Clusters:")

	result := c.aws.Run(ctx, []string{
		"ecs", "list-clusters", "--query", "clusterArns[*]", "--output", "json",
	}, awscli.CheckTimeout)
	if !result.Success {
		c.ui.Errorf("Failed to list ECS clusters")
		return false
	}
	if !gjson.Valid(result.Stdout) {
		c.ui.Errorf("Failed to parse ECS clusters response")
		return false
	}

	clusters := gjson.Parse(result.Stdout).Array()
	if len(clusters) == 0 {
		c.ui.Warningf("No ECS clusters found")
		return true
	}

	for _, arn := range clusters {
		c.ui.Infof("%s", arnSuffix(arn.String()))

		svc := c.aws.Run(ctx, []string{
			"ecs", "list-services",
			"--cluster", arn.String(),
			"--query", "serviceArns[*]",
			"--output", "json",
		}, awscli.CheckTimeout)
		if !svc.Success {
			continue
		}
		for _, serviceArn := range gjson.Parse(svc.Stdout).Array() {
			c.ui.Printf("    - %s\n", arnSuffix(serviceArn.String()))
		}
	}
	return true
}

func (c *Checker) discoverEC2(ctx context.Context) bool {
	c.ui.Println("EC2 Instances (running):")

	result := c.aws.Run(ctx, []string{
		"ec2", "describe-instances",
		"--filters", "Name=instance-state-name,Values=running",
		"--query", "Reservations[*].Instances[*].[InstanceId,Tags[?Key==`Name`].Value|[0],InstanceType]",
		"--output", "json",
	}, awscli.CheckTimeout)
	if !result.Success {
		c.ui.Errorf("Failed to describe EC2 instances")
		return false
	}
	if !gjson.Valid(result.Stdout) {
		c.ui.Errorf("Failed to parse EC2 instances response")
		return false
	}

	// The query yields one array of [id, name, type] triples per reservation.
	count := 0
	for _, reservation := range gjson.Parse(result.Stdout).Array() {
		for _, inst := range reservation.Array() {
			fields := inst.Array()
			if len(fields) < 3 {
				continue
			}
			name := fields[1].String()
			if name == "" {
				name = "unnamed"
			}
			c.ui.Infof("%s - %s (%s)", fields[0].String(), name, fields[2].String())
			count++
		}
	}
	if count == 0 {
		c.ui.Warningf("No running EC2 instances found")
	}
	return true
}

func (c *Checker) discoverLambda(ctx context.Context) bool {
	c.ui.Println("Lambda Functions:")

	result := c.aws.Run(ctx, []string{
		"lambda", "list-functions",
		"--query", "Functions[*].[FunctionName,Runtime]",
		"--output", "json",
	}, awscli.CheckTimeout)
	if !result.Success {
		c.ui.Errorf("Failed to list Lambda functions")
		return false
	}
	if !gjson.Valid(result.Stdout) {
		c.ui.Errorf("Failed to parse Lambda functions response")
		return false
	}

	functions := gjson.Parse(result.Stdout).Array()
	if len(functions) == 0 {
		c.ui.Warningf("No Lambda functions found")
		return true
	}

	for i, fn := range functions {
		if i == lambdaListCap {
			break
		}
		fields := fn.Array()
		if len(fields) < 2 {
			continue
		}
		c.ui.Infof("%s (%s)", fields[0].String(), fields[1].String())
	}
	if len(functions) > lambdaListCap {
		c.ui.Printf("    ... and %d more\n", len(functions)-lambdaListCap)
	}
	return true
}

func (c *Checker) discoverELB(ctx context.Context) bool {
	c.ui.Println("Load Balancers:")

	result := c.aws.Run(ctx, []string{
		"elbv2", "describe-load-balancers",
		"--query", "LoadBalancers[*].[LoadBalancerName,Type,State.Code]",
		"--output", "json",
	}, awscli.CheckTimeout)
	if !result.Success {
		c.ui.Errorf("Failed to describe load balancers")
		return false
	}
	if !gjson.Valid(result.Stdout) {
		c.ui.Errorf("Failed to parse load balancers response")
		return false
	}

	lbs := gjson.Parse(result.Stdout).Array()
	if len(lbs) == 0 {
		c.ui.Warningf("No load balancers found")
		return true
	}
	for _, lb := range lbs {
		fields := lb.Array()
		if len(fields) < 3 {
			continue
		}
		c.ui.Infof("%s (%s) - %s", fields[0].String(), fields[1].String(), fields[2].String())
	}
	return true
}

func (c *Checker) discoverRDS(ctx context.Context) bool {
	c.ui.Println("RDS Instances:")

	result := c.aws.Run(ctx, []string{
		"rds", "describe-db-instances",
		"--query", "DBInstances[*].[DBInstanceIdentifier,Engine,DBInstanceStatus]",
		"--output", "json",
	}, awscli.CheckTimeout)
	if !result.Success {
		c.ui.Errorf("Failed to describe RDS instances")
		return false
	}
	if !gjson.Valid(result.Stdout) {
		c.ui.Errorf("Failed to parse RDS instances response")
		return false
	}

	dbs := gjson.Parse(result.Stdout).Array()
	if len(dbs) == 0 {
		c.ui.Warningf("No RDS instances found")
		return true
	}
	for _, db := range dbs {
		fields := db.Array()
		if len(fields) < 3 {
			continue
		}
		c.ui.Infof("%s (%s) - %s", fields[0].String(), fields[1].String(), fields[2].String())
	}
	return true
}

// arnSuffix strips everything through the last '/' so reports show the short
// resource name.
func arnSuffix(arn string) string {
	if i := strings.LastIndexByte(arn, '/'); i >= 0 {
		return arn[i+1:]
	}
	return arn
}
