// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package check

import (
	"context"

	"github.com/dashctl/dashctl/internal/awscli"
)

// probe pairs an IAM action label with the cheapest CLI call that exercises
// it. Result sizes are capped so probes stay fast on large accounts.
type probe struct {
	action string
	args   []string
}

// requiredProbes cover every call the dashboard makes. A failure here means
// a dashboard panel will be broken.
var requiredProbes = []probe{
	{"ecs:ListClusters", []string{"ecs", "list-clusters", "--max-results", "1"}},
	{"ec2:DescribeInstances", []string{"ec2", "describe-instances", "--max-results", "1"}},
	{"ec2:DescribeRegions", []string{"ec2", "describe-regions", "--max-results", "1"}},
	{"lambda:ListFunctions", []string{"lambda", "list-functions", "--max-items", "1"}},
	{"cloudwatch:DescribeAlarms", []string{"cloudwatch", "describe-alarms", "--max-records", "1"}},
	{"cloudwatch:ListMetrics", []string{"cloudwatch", "list-metrics", "--namespace", "AWS/EC2"}},
	{"rds:DescribeDBInstances", []string{"rds", "describe-db-instances", "--max-records", "1"}},
	{"elbv2:DescribeLoadBalancers", []string{"elbv2", "describe-load-balancers", "--page-size", "1"}},
	{"s3:ListBuckets", []string{"s3api", "list-buckets"}},
	{"sts:GetCallerIdentity", []string{"sts", "get-caller-identity"}},
}

// optionalProbes feed panels that only light up when the service is enabled
// for the account.
var optionalProbes = []probe{
	{"ce:GetCostAndUsage", []string{
		"ce", "get-cost-and-usage",
		"--time-period", "Start=2024-01-01,End=2024-01-02",
		"--granularity", "DAILY",
		"--metrics", "BlendedCost",
	}},
	{"securityhub:GetFindings", []string{"securityhub", "get-findings", "--max-results", "1"}},
	{"guardduty:ListDetectors", []string{"guardduty", "list-detectors", "--max-results", "1"}},
	{"elasticbeanstalk:DescribeEnvironments", []string{"elasticbeanstalk", "describe-environments", "--max-records", "1"}},
}

// Permissions probes each action serially and prints a pass/fail line per
// probe plus summary counts. Returns true when all required probes passed.
func (c *Checker) Permissions(ctx context.Context) bool {
	c.ui.Header("Dash Monitoring Permissions")

	passed := 0
	failed := 0
	for _, p := range requiredProbes {
		result := c.aws.Run(ctx, p.args, awscli.CheckTimeout)
		if result.Success {
			c.ui.Successf("%s", p.action)
			passed++
		} else {
			c.ui.Errorf("%s", p.action)
			failed++
		}
	}

	c.ui.Println()
	c.ui.Infof("Optional permissions (may require service activation):")
	for _, p := range optionalProbes {
		result := c.aws.Run(ctx, p.args, awscli.CheckTimeout)
		if result.Success {
			c.ui.Successf("%s", p.action)
		} else {
			c.ui.Warningf("%s (not available or not enabled)", p.action)
		}
	}

	c.ui.Println()
	c.ui.Printf("Required permissions: %d passed, %d failed\n", passed, failed)

	return failed == 0
}
