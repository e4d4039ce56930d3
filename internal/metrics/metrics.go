// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package metrics

import (
	"context"
	"fmt"

	"github.com/dashctl/dashctl/internal/awscli"
	"github.com/dashctl/dashctl/internal/output"
	"github.com/dashctl/dashctl/internal/ui"
)

// DefaultPeriod and DefaultHours match the CLI flag defaults; config keys
// metrics.period and metrics.hours may override them at the flag layer.
const (
	DefaultPeriod = 300
	DefaultHours  = 1
)

// namespaces is the catalog shown by `metrics list` without an argument.
var namespaces = []struct {
	name string
	desc string
}{
	{"AWS/EC2", "EC2 instances"},
	{"AWS/ECS", "ECS services"},
	{"AWS/Lambda", "Lambda functions"},
	{"AWS/RDS", "RDS databases"},
	{"AWS/ELB", "Classic Load Balancers"},
	{"AWS/ApplicationELB", "Application Load Balancers"},
	{"AWS/NetworkELB", "Network Load Balancers"},
	{"AWS/S3", "S3 buckets"},
	{"AWS/SQS", "SQS queues"},
	{"AWS/SNS", "SNS topics"},
	{"AWS/DynamoDB", "DynamoDB tables"},
}

// Querier runs CloudWatch queries through the external CLI and renders the
// extracted datasets per the shared output options.
type Querier struct {
	aws  awscli.Runner
	ui   *ui.Printer
	opts output.Options
}

// New constructs a Querier.
func New(r awscli.Runner, p *ui.Printer, opts output.Options) *Querier {
	return &Querier{aws: r, ui: p, opts: opts}
}

// List prints the namespace catalog when namespace is empty, otherwise the
// metrics the namespace contains with their first dimension.
func (q *Querier) List(ctx context.Context, namespace string) error {
	q.ui.Header("CloudWatch Metrics")

	if namespace == "" {
		q.ui.Println("Common namespaces:")
		for _, ns := range namespaces {
			q.ui.Printf("  %-25s - %s\n", ns.name, ns.desc)
		}
		q.ui.Println()
		q.ui.Println("Usage: dashctl metrics list <namespace>")
		return nil
	}

	q.ui.Infof("Listing metrics in namespace: %s", namespace)
	q.ui.Println()

	result := q.aws.Run(ctx, []string{
		"cloudwatch", "list-metrics",
		"--namespace", namespace,
		"--output", "json",
	}, awscli.QueryTimeout)
	if !result.Success {
		return fmt.Errorf("list metrics: %s", result.Stderr)
	}

	cols := []output.Column{
		{Title: "metric", Path: "MetricName"},
		{Title: "dimension", Path: "Dimensions.0.Name"},
		{Title: "value", Path: "Dimensions.0.Value"},
	}
	output.Spit(result.Stdout, "Metrics", cols, q.rowOpts(0, 0), q.ui.Writer())
	return nil
}

// GetParams shape a single-metric statistics query.
type GetParams struct {
	Metric         string
	Namespace      string
	DimensionName  string
	DimensionValue string
	Hours          int
	Period         int
}

// Get fetches Average/Minimum/Maximum statistics for one metric and renders
// the datapoints sorted by timestamp.
func (q *Querier) Get(ctx context.Context, p GetParams) error {
	q.ui.Header("CloudWatch Metric: " + p.Metric)

	if p.Namespace == "" {
		p.Namespace = "AWS/EC2"
	}
	if p.Hours <= 0 {
		p.Hours = DefaultHours
	}
	if p.Period <= 0 {
		p.Period = DefaultPeriod
	}

	start, end := awscli.TimeRange(p.Hours)
	q.ui.Infof("Namespace: %s", p.Namespace)
	q.ui.Infof("Period: %ds", p.Period)
	q.ui.Infof("Time range: %s to %s", start, end)

	args := []string{
		"cloudwatch", "get-metric-statistics",
		"--namespace", p.Namespace,
		"--metric-name", p.Metric,
		"--start-time", start,
		"--end-time", end,
		"--period", fmt.Sprintf("%d", p.Period),
		"--statistics", "Average", "Minimum", "Maximum",
		"--output", "json",
	}
	if p.DimensionName != "" && p.DimensionValue != "" {
		args = append(args,
			"--dimensions", fmt.Sprintf("Name=%s,Value=%s", p.DimensionName, p.DimensionValue))
		q.ui.Infof("Dimension: %s=%s", p.DimensionName, p.DimensionValue)
	}
	q.ui.Println()

	result := q.aws.Run(ctx, args, awscli.QueryTimeout)
	if !result.Success {
		return fmt.Errorf("get metric %s: %s", p.Metric, result.Stderr)
	}

	cols := []output.Column{
		{Title: "timestamp", Path: "Timestamp"},
		{Title: "average", Path: "Average"},
		{Title: "minimum", Path: "Minimum"},
		{Title: "maximum", Path: "Maximum"},
	}
	output.Spit(result.Stdout, "Datapoints", cols, q.rowOpts(0, 0), q.ui.Writer())
	return nil
}

// rowOpts derives per-dataset render options from the shared ones. sortBy -1
// keeps document order; tail 0 keeps all rows.
func (q *Querier) rowOpts(sortBy int, tail int) output.Options {
	opts := q.opts
	opts.SortBy = sortBy
	opts.Tail = tail
	return opts
}
