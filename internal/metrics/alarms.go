// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package metrics

import (
	"context"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/dashctl/dashctl/internal/awscli"
	"github.com/dashctl/dashctl/internal/output"
)

// alarmStates in summary display order.
var alarmStates = []string{"ALARM", "OK", "INSUFFICIENT_DATA"}

// Alarms lists CloudWatch alarms, optionally restricted to one state, then
// prints per-state counts. A non-zero ALARM count is highlighted.
func (q *Querier) Alarms(ctx context.Context, state string) error {
	q.ui.Header("CloudWatch Alarms")

	if state != "" {
		q.ui.Infof("Filtering by state: %s", state)
	}
	q.ui.Println()

	args := []string{"cloudwatch", "describe-alarms", "--output", "json"}
	if state != "" {
		args = append(args, "--state-value", state)
	}

	result := q.aws.Run(ctx, args, awscli.QueryTimeout)
	if !result.Success {
		return fmt.Errorf("list alarms: %s", result.Stderr)
	}

	cols := []output.Column{
		{Title: "alarm", Path: "AlarmName"},
		{Title: "state", Path: "StateValue"},
		{Title: "metric", Path: "MetricName"},
		{Title: "namespace", Path: "Namespace"},
	}
	output.Spit(result.Stdout, "MetricAlarms", cols, q.rowOpts(0, 0), q.ui.Writer())
	q.ui.Println()

	q.ui.Println("Summary:")
	for _, s := range alarmStates {
		count := q.alarmCount(ctx, s)
		if s == "ALARM" && count != "0" && count != "?" {
			q.ui.Highlightf("  ALARM: %s", count)
			continue
		}
		q.ui.Printf("  %s: %s\n", s, count)
	}
	return nil
}

// alarmCount asks the CLI for the number of alarms in the given state. "?"
// means the count call itself failed; the listing above already succeeded so
// this is cosmetic.
func (q *Querier) alarmCount(ctx context.Context, state string) string {
	result := q.aws.Run(ctx, []string{
		"cloudwatch", "describe-alarms",
		"--state-value", state,
		"--query", "length(MetricAlarms)",
		"--output", "json",
	}, awscli.QueryTimeout)
	if !result.Success {
		return "?"
	}
	return fmt.Sprintf("%d", gjson.Parse(result.Stdout).Int())
}
