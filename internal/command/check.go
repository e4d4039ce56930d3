// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"

	"github.com/urfave/cli/v3"

	"github.com/dashctl/dashctl/internal/meta"
)

// checkAllCommandAction runs the full verification report. Hard prerequisite
// failures surface as errors (exit 1); the rest of the report degrades to
// printed warnings.
func checkAllCommandAction(ctx context.Context, cmd *cli.Command) error {
	return newChecker(cmd).All(ctx)
}

func checkIdentityCommandAction(ctx context.Context, cmd *cli.Command) error {
	c := newChecker(cmd)
	if !c.Installation(ctx) {
		return errAWSNotInstalled
	}
	if !c.Identity(ctx) {
		return errAuthFailed
	}
	return nil
}

// checkPermissionsCommandAction fails the run when a required probe fails;
// this is the one section where an explicit invocation hardens the verdict.
func checkPermissionsCommandAction(ctx context.Context, cmd *cli.Command) error {
	c := newChecker(cmd)
	if !c.Installation(ctx) {
		return errAWSNotInstalled
	}
	if !c.Identity(ctx) {
		return errAuthFailed
	}
	if !c.Permissions(ctx) {
		return errors.New("required permissions missing")
	}
	return nil
}

func checkServicesCommandAction(ctx context.Context, cmd *cli.Command) error {
	c := newChecker(cmd)
	if !c.Installation(ctx) {
		return errAWSNotInstalled
	}
	if !c.Identity(ctx) {
		return errAuthFailed
	}
	c.Services(ctx)
	return nil
}

func checkConfigCommandAction(ctx context.Context, cmd *cli.Command) error {
	c := newChecker(cmd)
	if !c.Installation(ctx) {
		return errAWSNotInstalled
	}
	c.Config(ctx)
	return nil
}

var (
	errAWSNotInstalled = errors.New("aws CLI is not installed")
	errAuthFailed      = errors.New("authentication failed")
)

// checkCommandBuilder constructs the "check" command group. Without a
// subcommand the full report runs.
func checkCommandBuilder(meta meta.Meta) *cli.Command {
	sessionFlags := func() []cli.Flag {
		return []cli.Flag{
			NewProfileFlag("check", meta.Config.Source),
			NewRegionFlag("check", meta.Config.Source),
		}
	}

	group := (&ReportCommandBuilder{
		Name:      "check",
		Usage:     "verify AWS CLI setup for the dashboard",
		UsageText: "dashctl check [all|identity|permissions|services|config] [options]",
		Flags:     sessionFlags(),
		Action:    checkAllCommandAction,
		Meta:      meta,
	}).Build()

	subs := []struct {
		name   string
		usage  string
		action func(context.Context, *cli.Command) error
	}{
		{"all", "run the full verification report", checkAllCommandAction},
		{"identity", "verify caller identity", checkIdentityCommandAction},
		{"permissions", "probe dashboard IAM permissions", checkPermissionsCommandAction},
		{"services", "discover running services", checkServicesCommandAction},
		{"config", "show local AWS configuration", checkConfigCommandAction},
	}
	for _, sub := range subs {
		group.Commands = append(group.Commands, (&ReportCommandBuilder{
			Name:   sub.name,
			Usage:  sub.usage,
			Flags:  sessionFlags(),
			Action: sub.action,
			Meta:   meta,
		}).Build())
	}

	return group
}
