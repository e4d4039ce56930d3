// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package metrics

import (
	"context"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/dashctl/dashctl/internal/awscli"
	"github.com/dashctl/dashctl/internal/output"
)

// tailDatapoints caps per-resource metric tables at the freshest datapoints.
const tailDatapoints = 5

// series is one statistics query within a resource's metric set.
type series struct {
	metric string
	label  string
	stat   string
}

// ECS prints CPU and memory utilization for one service. Without a service it
// lists the cluster's services and stops so the operator can pick one.
func (q *Querier) ECS(ctx context.Context, cluster string, service string, hours int) error {
	q.ui.Header("ECS Metrics: " + cluster)

	if service == "" {
		return q.listClusterServices(ctx, cluster)
	}

	q.ui.Infof("Service: %s", service)
	q.ui.Println()

	dimensions := []string{
		"Name=ClusterName,Value=" + cluster,
		"Name=ServiceName,Value=" + service,
	}
	set := []series{
		{"CPUUtilization", "CPU Utilization", "Average"},
		{"MemoryUtilization", "Memory Utilization", "Average"},
	}
	q.resourceSet(ctx, "AWS/ECS", dimensions, set, hours)
	return nil
}

// EC2 prints CPU utilization and network throughput for one instance.
func (q *Querier) EC2(ctx context.Context, instanceID string, hours int) error {
	q.ui.Header("EC2 Metrics: " + instanceID)

	dimensions := []string{"Name=InstanceId,Value=" + instanceID}
	set := []series{
		{"CPUUtilization", "CPU Utilization", "Average"},
		{"NetworkIn", "Network In (bytes)", "Sum"},
		{"NetworkOut", "Network Out (bytes)", "Sum"},
	}
	q.resourceSet(ctx, "AWS/EC2", dimensions, set, hours)
	return nil
}

// RDS prints CPU, connection count, and free storage for one DB instance.
func (q *Querier) RDS(ctx context.Context, dbIdentifier string, hours int) error {
	q.ui.Header("RDS Metrics: " + dbIdentifier)

	dimensions := []string{"Name=DBInstanceIdentifier,Value=" + dbIdentifier}
	set := []series{
		{"CPUUtilization", "CPU Utilization", "Average"},
		{"DatabaseConnections", "Database Connections", "Average"},
		{"FreeStorageSpace", "Free Storage Space (bytes)", "Average"},
	}
	q.resourceSet(ctx, "AWS/RDS", dimensions, set, hours)
	return nil
}

// resourceSet runs each series and renders its freshest datapoints. A series
// with no data degrades to a warning; resource metric sets never fail hard.
func (q *Querier) resourceSet(ctx context.Context, namespace string, dimensions []string, set []series, hours int) {
	if hours <= 0 {
		hours = DefaultHours
	}
	start, end := awscli.TimeRange(hours)

	for _, s := range set {
		q.ui.Printf("%s:\n", s.label)

		args := []string{
			"cloudwatch", "get-metric-statistics",
			"--namespace", namespace,
			"--metric-name", s.metric,
		}
		for _, d := range dimensions {
			args = append(args, "--dimensions", d)
		}
		args = append(args,
			"--start-time", start,
			"--end-time", end,
			"--period", fmt.Sprintf("%d", DefaultPeriod),
			"--statistics", s.stat,
			"--output", "json",
		)

		result := q.aws.Run(ctx, args, awscli.QueryTimeout)
		if !result.Success {
			q.ui.Warningf("No data for %s", s.metric)
			q.ui.Println()
			continue
		}

		cols := []output.Column{
			{Title: "timestamp", Path: "Timestamp"},
			{Title: strings.ToLower(s.stat), Path: s.stat},
		}
		output.Spit(result.Stdout, "Datapoints", cols, q.rowOpts(0, tailDatapoints), q.ui.Writer())
		q.ui.Println()
	}
}

func (q *Querier) listClusterServices(ctx context.Context, cluster string) error {
	q.ui.Println("Services in cluster:")

	result := q.aws.Run(ctx, []string{
		"ecs", "list-services",
		"--cluster", cluster,
		"--query", "serviceArns[*]",
		"--output", "json",
	}, awscli.QueryTimeout)
	if !result.Success {
		return fmt.Errorf("list services: %s", result.Stderr)
	}

	for _, arn := range gjson.Parse(result.Stdout).Array() {
		name := arn.String()
		if i := strings.LastIndexByte(name, '/'); i >= 0 {
			name = name[i+1:]
		}
		q.ui.Printf("  - %s\n", name)
	}
	q.ui.Println()
	q.ui.Printf("Usage: dashctl metrics ecs %s <service-name>\n", cluster)
	return nil
}
