// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/dashctl/dashctl/internal/metrics"
	"github.com/dashctl/dashctl/internal/ui"
)

func NewGlobalFlags(params ...string) (flags []cli.Flag) {
	flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Value:   ui.Detect(),
		},
		&cli.StringFlag{
			Name:    "filter",
			Aliases: []string{"f"},
			Usage:   "comma-separated list of filters to apply to results",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Value:   "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.BoolFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Value:   false,
		},
	}

	return
}

// NewProfileFlag constructs the "profile" flag, optionally namespaced to a
// command group and config file. params[1] is the config file.
func NewProfileFlag(params ...string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:    "profile",
		Aliases: []string{"p"},
		Usage:   "AWS profile to pin on every CLI call",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("DASHCTL_PROFILE"),
		),
	}

	if len(params) == 2 {
		flag = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], flag)
	}

	return
}

// NewRegionFlag constructs the "region" flag, optionally namespaced to a
// command group and config file. params[1] is the config file.
func NewRegionFlag(params ...string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:    "region",
		Aliases: []string{"r"},
		Usage:   "AWS region to pin on every CLI call",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("DASHCTL_REGION"),
		),
	}

	if len(params) == 2 {
		flag = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], flag)
	}

	return
}

// NewHoursFlag constructs the "hours" query-window flag with a config file
// source so the window can default from dashctl.yaml.
func NewHoursFlag(value int, path string) *cli.IntFlag {
	flag := &cli.IntFlag{
		Name:  "hours",
		Usage: "hours of data to query",
		Value: value,
	}
	if path != "" {
		flag.Sources = cli.NewValueSourceChain(
			yaml.YAML("metrics.hours", altsrc.StringSourcer(path)),
		)
	}
	return flag
}

// NewPeriodFlag constructs the "period" flag with a config file source.
func NewPeriodFlag(path string) *cli.IntFlag {
	flag := &cli.IntFlag{
		Name:  "period",
		Usage: "datapoint period in seconds",
		Value: metrics.DefaultPeriod,
	}
	if path != "" {
		flag.Sources = cli.NewValueSourceChain(
			yaml.YAML("metrics.period", altsrc.StringSourcer(path)),
		)
	}
	return flag
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config file
// sources to the given flag's Sources chain.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	src = yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}
