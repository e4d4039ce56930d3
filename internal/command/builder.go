// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/dashctl/dashctl/internal/meta"
)

// ReportCommandBuilder constructs a cli.Command for the report subcommands
// using a consistent pattern. It accepts the command name, usage text,
// optional UsageText, custom flags, the action handler, and meta. The builder
// automatically wires metadata, applies global flags, and sets up validators.
type ReportCommandBuilder struct {
	Name      string
	Usage     string
	UsageText string
	Flags     []cli.Flag
	Action    func(context.Context, *cli.Command) error
	Meta      meta.Meta
}

// Build returns a configured cli.Command from the builder.
func (rcb *ReportCommandBuilder) Build() *cli.Command {
	return &cli.Command{
		Name:      rcb.Name,
		Usage:     rcb.Usage,
		UsageText: rcb.UsageText,
		Metadata: map[string]any{
			"meta": rcb.Meta,
		},
		Flags: append(rcb.Flags, NewGlobalFlags(rcb.Name)...),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			return ctx, GlobalFlagsValidator(ctx, c)
		},
		Action: rcb.Action,
	}
}
