// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"os"

	"github.com/urfave/cli/v3"

	"github.com/dashctl/dashctl/internal/awscli"
	"github.com/dashctl/dashctl/internal/check"
	"github.com/dashctl/dashctl/internal/metrics"
	"github.com/dashctl/dashctl/internal/output"
	"github.com/dashctl/dashctl/internal/ui"
)

// newChecker assembles a Checker from the command's session flags.
func newChecker(cmd *cli.Command) *check.Checker {
	return check.New(newRunner(cmd), newPrinter(cmd))
}

// newQuerier assembles a Querier from the command's session and output flags.
func newQuerier(cmd *cli.Command) *metrics.Querier {
	return metrics.New(newRunner(cmd), newPrinter(cmd), outputOptions(cmd))
}

func newRunner(cmd *cli.Command) awscli.Runner {
	return awscli.New(cmd.String("profile"), cmd.String("region"))
}

func newPrinter(cmd *cli.Command) *ui.Printer {
	return ui.NewPrinter(os.Stdout, cmd.Bool("color"))
}

func outputOptions(cmd *cli.Command) output.Options {
	return output.Options{
		Format: cmd.String("output"),
		Color:  cmd.Bool("color"),
		Titles: cmd.Bool("titles"),
		Filter: cmd.String("filter"),
		SortBy: -1,
	}
}
