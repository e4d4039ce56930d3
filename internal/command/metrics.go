// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/dashctl/dashctl/internal/meta"
	"github.com/dashctl/dashctl/internal/metrics"
)

func metricsListCommandAction(ctx context.Context, cmd *cli.Command) error {
	return newQuerier(cmd).List(ctx, cmd.Args().First())
}

func metricsGetCommandAction(ctx context.Context, cmd *cli.Command) error {
	metric := cmd.Args().First()
	if metric == "" {
		return errors.New("metric name is required")
	}

	params := metrics.GetParams{
		Metric:    metric,
		Namespace: cmd.String("namespace"),
		Hours:     cmd.Int("hours"),
		Period:    cmd.Int("period"),
	}
	// Dimension arrives as Name=Value; a spec without "=" is ignored the way
	// the CLI itself ignores malformed shorthand.
	if d := cmd.String("dimension"); d != "" {
		if parts := strings.SplitN(d, "=", 2); len(parts) == 2 {
			params.DimensionName = parts[0]
			params.DimensionValue = parts[1]
		}
	}

	return newQuerier(cmd).Get(ctx, params)
}

func metricsAlarmsCommandAction(ctx context.Context, cmd *cli.Command) error {
	state := cmd.Args().First()
	if err := AlarmStateValidator(state); err != nil {
		return err
	}
	return newQuerier(cmd).Alarms(ctx, state)
}

func metricsECSCommandAction(ctx context.Context, cmd *cli.Command) error {
	cluster := cmd.Args().First()
	if cluster == "" {
		return errors.New("cluster name is required")
	}
	return newQuerier(cmd).ECS(ctx, cluster, cmd.Args().Get(1), cmd.Int("hours"))
}

func metricsEC2CommandAction(ctx context.Context, cmd *cli.Command) error {
	instanceID := cmd.Args().First()
	if instanceID == "" {
		return errors.New("instance id is required")
	}
	return newQuerier(cmd).EC2(ctx, instanceID, cmd.Int("hours"))
}

func metricsRDSCommandAction(ctx context.Context, cmd *cli.Command) error {
	dbIdentifier := cmd.Args().First()
	if dbIdentifier == "" {
		return errors.New("db instance identifier is required")
	}
	return newQuerier(cmd).RDS(ctx, dbIdentifier, cmd.Int("hours"))
}

func metricsExportCommandAction(ctx context.Context, cmd *cli.Command) error {
	return newQuerier(cmd).Export(ctx, cmd.Args().First(), cmd.Int("hours"))
}

// metricsCommandBuilder constructs the "metrics" command group.
func metricsCommandBuilder(meta meta.Meta) *cli.Command {
	sessionFlags := func() []cli.Flag {
		return []cli.Flag{
			NewProfileFlag("metrics", meta.Config.Source),
			NewRegionFlag("metrics", meta.Config.Source),
		}
	}

	group := &cli.Command{
		Name:      "metrics",
		Usage:     "query CloudWatch metrics",
		UsageText: "dashctl metrics <list|get|alarms|ecs|ec2|rds|export> [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
	}

	group.Commands = append(group.Commands,
		(&ReportCommandBuilder{
			Name:      "list",
			Usage:     "list metrics in a namespace",
			UsageText: "dashctl metrics list [namespace] [options]",
			Flags:     sessionFlags(),
			Action:    metricsListCommandAction,
			Meta:      meta,
		}).Build(),
		(&ReportCommandBuilder{
			Name:      "get",
			Usage:     "get statistics for one metric",
			UsageText: "dashctl metrics get <metric> [options]",
			Flags: append(sessionFlags(),
				&cli.StringFlag{
					Name:    "namespace",
					Aliases: []string{"n"},
					Usage:   "CloudWatch namespace",
					Value:   "AWS/EC2",
				},
				&cli.StringFlag{
					Name:    "dimension",
					Aliases: []string{"d"},
					Usage:   "dimension in Name=Value format",
				},
				NewHoursFlag(metrics.DefaultHours, meta.Config.Source),
				NewPeriodFlag(meta.Config.Source),
			),
			Action: metricsGetCommandAction,
			Meta:   meta,
		}).Build(),
		(&ReportCommandBuilder{
			Name:      "alarms",
			Usage:     "list CloudWatch alarms with a state summary",
			UsageText: "dashctl metrics alarms [ALARM|OK|INSUFFICIENT_DATA] [options]",
			Flags:     sessionFlags(),
			Action:    metricsAlarmsCommandAction,
			Meta:      meta,
		}).Build(),
		(&ReportCommandBuilder{
			Name:      "ecs",
			Usage:     "get ECS service metrics",
			UsageText: "dashctl metrics ecs <cluster> [service] [options]",
			Flags:     append(sessionFlags(), NewHoursFlag(metrics.DefaultHours, meta.Config.Source)),
			Action:    metricsECSCommandAction,
			Meta:      meta,
		}).Build(),
		(&ReportCommandBuilder{
			Name:      "ec2",
			Usage:     "get EC2 instance metrics",
			UsageText: "dashctl metrics ec2 <instance-id> [options]",
			Flags:     append(sessionFlags(), NewHoursFlag(metrics.DefaultHours, meta.Config.Source)),
			Action:    metricsEC2CommandAction,
			Meta:      meta,
		}).Build(),
		(&ReportCommandBuilder{
			Name:      "rds",
			Usage:     "get RDS instance metrics",
			UsageText: "dashctl metrics rds <db-identifier> [options]",
			Flags:     append(sessionFlags(), NewHoursFlag(metrics.DefaultHours, meta.Config.Source)),
			Action:    metricsRDSCommandAction,
			Meta:      meta,
		}).Build(),
		(&ReportCommandBuilder{
			Name:      "export",
			Usage:     "export dashboard metrics via get-metric-data",
			UsageText: "dashctl metrics export [output-file] [options]",
			Flags:     append(sessionFlags(), NewHoursFlag(metrics.DefaultExportHours, meta.Config.Source)),
			Action:    metricsExportCommandAction,
			Meta:      meta,
		}).Build(),
	)

	return group
}
