// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package metrics

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/dashctl/dashctl/internal/awscli"
	"github.com/dashctl/dashctl/internal/log"
)

// DefaultExportHours is the export command's wider default window.
const DefaultExportHours = 24

// dataQuery is one entry of the get-metric-data query file. Field names
// follow the CLI's expected JSON shape.
type dataQuery struct {
	ID         string     `json:"Id"`
	MetricStat metricStat `json:"MetricStat"`
	ReturnData bool       `json:"ReturnData"`
}

type metricStat struct {
	Metric metricRef `json:"Metric"`
	Period int       `json:"Period"`
	Stat   string    `json:"Stat"`
}

type metricRef struct {
	Namespace  string `json:"Namespace"`
	MetricName string `json:"MetricName"`
}

// exportQueries is the fixed dashboard query set: hourly CPU averages per
// compute service plus hourly Lambda invocation sums.
var exportQueries = []dataQuery{
	{ID: "ec2_cpu", ReturnData: true, MetricStat: metricStat{
		Metric: metricRef{Namespace: "AWS/EC2", MetricName: "CPUUtilization"},
		Period: 3600, Stat: "Average",
	}},
	{ID: "ecs_cpu", ReturnData: true, MetricStat: metricStat{
		Metric: metricRef{Namespace: "AWS/ECS", MetricName: "CPUUtilization"},
		Period: 3600, Stat: "Average",
	}},
	{ID: "rds_cpu", ReturnData: true, MetricStat: metricStat{
		Metric: metricRef{Namespace: "AWS/RDS", MetricName: "CPUUtilization"},
		Period: 3600, Stat: "Average",
	}},
	{ID: "lambda_invocations", ReturnData: true, MetricStat: metricStat{
		Metric: metricRef{Namespace: "AWS/Lambda", MetricName: "Invocations"},
		Period: 3600, Stat: "Sum",
	}},
}

// Export runs the fixed query set through get-metric-data and writes the raw
// JSON response to outputFile. The queries travel via a temp file because the
// CLI takes them as a file:// argument; the temp file is always removed.
func (q *Querier) Export(ctx context.Context, outputFile string, hours int) error {
	q.ui.Header("Exporting Metrics")

	if outputFile == "" {
		outputFile = "metrics.json"
	}
	if hours <= 0 {
		hours = DefaultExportHours
	}

	start, end := awscli.TimeRange(hours)
	q.ui.Infof("Time range: %s to %s", start, end)
	q.ui.Infof("Output file: %s", outputFile)

	queriesFile, err := writeQueriesFile()
	if err != nil {
		return fmt.Errorf("write queries file: %w", err)
	}
	defer func() {
		if err := os.Remove(queriesFile); err != nil {
			log.Debugf("remove queries file: err=%s", err)
		}
	}()

	result := q.aws.Run(ctx, []string{
		"cloudwatch", "get-metric-data",
		"--metric-data-queries", "file://" + queriesFile,
		"--start-time", start,
		"--end-time", end,
		"--output", "json",
	}, awscli.ExportTimeout)
	if !result.Success {
		return fmt.Errorf("export metrics: %s", result.Stderr)
	}

	if err := os.WriteFile(outputFile, []byte(result.Stdout), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outputFile, err)
	}

	q.ui.Successf("Metrics exported to %s", outputFile)
	q.ui.Infof("File size: %s", humanize.Bytes(uint64(len(result.Stdout))))
	return nil
}

// writeQueriesFile marshals the query set into a temp file and returns its
// path. The caller owns removal.
func writeQueriesFile() (string, error) {
	f, err := os.CreateTemp("", "dashctl-queries-*.json")
	if err != nil {
		return "", err
	}

	enc := json.NewEncoder(f)
	if err := enc.Encode(exportQueries); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}
