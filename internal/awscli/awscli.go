// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package awscli

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"

	"github.com/dashctl/dashctl/internal/config"
	"github.com/dashctl/dashctl/internal/log"
)

// Per-call timeouts. Checks are quick probes, metric queries can scan more
// data, and get-metric-data exports are the slowest calls we make.
const (
	CheckTimeout  = 30 * time.Second
	QueryTimeout  = 60 * time.Second
	ExportTimeout = 120 * time.Second
)

// Result captures one CLI invocation. Success agrees with ExitCode: it is
// true if and only if the process ran to completion and exited zero.
// Synthetic failures (missing binary, timeout) carry ExitCode -1.
type Result struct {
	Success  bool
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner abstracts the external AWS CLI so report sections can be tested
// without a binary or an account.
type Runner interface {
	// Run executes the CLI with the given args under the timeout. It never
	// returns an error; failures of any kind are normalized into the Result.
	Run(ctx context.Context, args []string, timeout time.Duration) Result

	// Path reports where the CLI binary lives, or an error when it is not
	// installed.
	Path() (string, error)
}

// CLI is the production Runner. It shells out to the aws binary, optionally
// pinning --profile and --region on every call.
type CLI struct {
	Binary  string
	Profile string
	Region  string
}

// New constructs a CLI. The binary name defaults to "aws" and may be
// overridden with the awscli.binary config key.
func New(profile string, region string) *CLI {
	binary, _ := config.GetString("awscli.binary", "aws")
	return &CLI{
		Binary:  binary,
		Profile: profile,
		Region:  region,
	}
}

// Path implements Runner.
func (c *CLI) Path() (string, error) {
	return exec.LookPath(c.Binary)
}

// Run implements Runner. The command is executed with a bounded timeout and
// captured output. A missing binary or an expired deadline produce a
// synthetic failure Result instead of an error so that callers have a single
// success/failure branch to deal with.
func (c *CLI) Run(ctx context.Context, args []string, timeout time.Duration) Result {
	if _, err := exec.LookPath(c.Binary); err != nil {
		log.Debugf("binary not found: binary=%s", c.Binary)
		return Result{
			Success:  false,
			Stderr:   "AWS CLI not found",
			ExitCode: -1,
		}
	}

	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	full := args
	if extra := c.sessionArgs(); len(extra) > 0 {
		full = append(append([]string{}, args...), extra...)
	}
	log.Debugf("running: binary=%s, args=%v, timeout=%s", c.Binary, full, timeout)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(runCtx, c.Binary, full...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		log.Debugf("command timed out: args=%v", full)
		return Result{
			Success:  false,
			Stderr:   "Command timed out",
			ExitCode: -1,
		}
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return Result{
				Success:  false,
				Stdout:   stdout.String(),
				Stderr:   stderr.String(),
				ExitCode: exitErr.ExitCode(),
			}
		}
		// Start failures that are not exit statuses (e.g. permission denied).
		return Result{
			Success:  false,
			Stderr:   err.Error(),
			ExitCode: -1,
		}
	}

	return Result{
		Success:  true,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: 0,
	}
}

// sessionArgs returns the trailing args that pin profile and region.
func (c *CLI) sessionArgs() []string {
	var args []string
	if c.Profile != "" {
		args = append(args, "--profile", c.Profile)
	}
	if c.Region != "" {
		args = append(args, "--region", c.Region)
	}
	return args
}
