// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/dashctl/dashctl/internal/config"
	"github.com/dashctl/dashctl/internal/meta"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {

	// The arg[1] immediately following the binary (arg[0]) is the dashctl
	// command group and also represents the namespace key to be used when
	// retrieving config values. arg[1] could be -h/--help, so ignore it if it
	// appears to be a flag.
	var ns string
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		ns = args[1]
	}

	sd, _ := os.Getwd()

	// A missing config file is fine; getters fall back to defaults.
	cfg, _ := config.Load() //nolint
	cfg.Namespace = ns
	config.Config.Namespace = ns

	meta := meta.Meta{
		Args:        args,
		Config:      cfg,
		Context:     ctx,
		StartingDir: sd,
	}

	app := &cli.Command{
		Name:  "dashctl",
		Usage: "AWS dashboard control",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "dashctl version info",
				HideDefault: true,
			},
		},
	}

	app.Commands = append(app.Commands,
		checkCommandBuilder(meta),
		metricsCommandBuilder(meta),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		for _, sub := range cmd.Commands {
			sort.Slice(sub.Flags, func(i, j int) bool {
				return sub.Flags[i].Names()[0] < sub.Flags[j].Names()[0]
			})
		}
	}

	return app, nil
}
