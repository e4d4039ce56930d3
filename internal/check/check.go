// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package check

import (
	"context"
	"errors"

	"github.com/dashctl/dashctl/internal/awscli"
	"github.com/dashctl/dashctl/internal/log"
	"github.com/dashctl/dashctl/internal/ui"
)

// Checker runs the setup verification report sections. Each section prints
// its findings and reports a pass/fail; only the two hard prerequisites (CLI
// presence and valid credentials) abort a run.
type Checker struct {
	aws awscli.Runner
	ui  *ui.Printer
}

// New constructs a Checker over the given runner and printer.
func New(r awscli.Runner, p *ui.Printer) *Checker {
	return &Checker{aws: r, ui: p}
}

// All runs the full report: installation, identity, configuration,
// permissions, and service discovery. A missing CLI or failed authentication
// stops the run immediately; later sections degrade to printed warnings.
func (c *Checker) All(ctx context.Context) error {
	if !c.Installation(ctx) {
		return errors.New("aws CLI is not installed")
	}
	if !c.Identity(ctx) {
		return errors.New("authentication failed")
	}
	c.Config(ctx)
	c.Permissions(ctx)
	c.Services(ctx)
	return nil
}

// Installation verifies the CLI binary is present and responsive.
func (c *Checker) Installation(ctx context.Context) bool {
	c.ui.Header("AWS CLI Installation")

	path, err := c.aws.Path()
	if err != nil {
		c.ui.Errorf("AWS CLI not found in PATH")
		c.ui.Println()
		c.ui.Println("Install with:")
		c.ui.Println("  macOS:  brew install awscli")
		c.ui.Println("  Linux:  curl 'https://awscli.amazonaws.com/awscli-exe-linux-x86_64.zip' -o 'awscliv2.zip'")
		return false
	}

	result := c.aws.Run(ctx, []string{"--version"}, awscli.CheckTimeout)
	if !result.Success {
		c.ui.Errorf("Failed to get AWS CLI version: %s", result.Stderr)
		return false
	}

	version := firstLine(result.Stdout)
	log.Debugf("cli version: version=%s", version)
	c.ui.Successf("AWS CLI installed: %s", version)
	c.ui.Infof("Path: %s", path)
	return true
}
