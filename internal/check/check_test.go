// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package check

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dashctl/dashctl/internal/awscli"
	"github.com/dashctl/dashctl/internal/ui"
)

// fakeRunner scripts Results by the leading CLI args and records every call.
type fakeRunner struct {
	pathErr   error
	responses map[string]awscli.Result
	calls     []string
}

func (f *fakeRunner) Path() (string, error) {
	if f.pathErr != nil {
		return "", f.pathErr
	}
	return "/usr/local/bin/aws", nil
}

func (f *fakeRunner) Run(_ context.Context, args []string, _ time.Duration) awscli.Result {
	key := strings.Join(args, " ")
	f.calls = append(f.calls, key)
	for prefix, result := range f.responses {
		if strings.HasPrefix(key, prefix) {
			return result
		}
	}
	return awscli.Result{Success: false, Stderr: "unscripted call", ExitCode: 1}
}

func okJSON(doc string) awscli.Result {
	return awscli.Result{Success: true, Stdout: doc, ExitCode: 0}
}

func newTestChecker(r awscli.Runner) (*Checker, *bytes.Buffer) {
	var buf bytes.Buffer
	return New(r, ui.NewPrinter(&buf, false)), &buf
}

func TestAll_AbortsWhenCLIMissing(t *testing.T) {
	runner := &fakeRunner{pathErr: errors.New("not found")}
	checker, buf := newTestChecker(runner)

	err := checker.All(context.Background())

	assert.EqualError(t, err, "aws CLI is not installed")
	// Nothing may be executed once the binary is known to be absent.
	assert.Empty(t, runner.calls)
	assert.Contains(t, buf.String(), "AWS CLI not found in PATH")
	assert.Contains(t, buf.String(), "brew install awscli")
}

func TestAll_AbortsOnAuthFailure(t *testing.T) {
	runner := &fakeRunner{
		responses: map[string]awscli.Result{
			"--version": okJSON("aws-cli/2.15.0 Python/3.11.6"),
			"sts get-caller-identity": {
				Success:  false,
				Stderr:   "An error occurred (ExpiredToken)",
				ExitCode: 255,
			},
		},
	}
	checker, buf := newTestChecker(runner)

	err := checker.All(context.Background())

	assert.EqualError(t, err, "authentication failed")
	assert.Contains(t, buf.String(), "Failed to get caller identity")
	// The run must stop before the permission probes.
	for _, call := range runner.calls {
		assert.NotContains(t, call, "ecs list-clusters")
	}
}

func TestInstallation_ReportsVersionAndPath(t *testing.T) {
	runner := &fakeRunner{
		responses: map[string]awscli.Result{
			"--version": okJSON("aws-cli/2.15.0 Python/3.11.6 Darwin/23.1.0\n"),
		},
	}
	checker, buf := newTestChecker(runner)

	assert.True(t, checker.Installation(context.Background()))
	assert.Contains(t, buf.String(), "AWS CLI installed: aws-cli/2.15.0")
	assert.Contains(t, buf.String(), "/usr/local/bin/aws")
}

func TestIdentity_Success(t *testing.T) {
	runner := &fakeRunner{
		responses: map[string]awscli.Result{
			"sts get-caller-identity": okJSON(`{
				"UserId": "AIDAEXAMPLE",
				"Account": "123456789012",
				"Arn": "arn:aws:iam::123456789012:user/ops"
			}`),
			"configure get region": okJSON("eu-west-1\n"),
		},
	}
	checker, buf := newTestChecker(runner)

	assert.True(t, checker.Identity(context.Background()))

	out := buf.String()
	assert.Contains(t, out, "123456789012")
	assert.Contains(t, out, "arn:aws:iam::123456789012:user/ops")
	assert.Contains(t, out, "eu-west-1")
}

func TestIdentity_MalformedJSON(t *testing.T) {
	runner := &fakeRunner{
		responses: map[string]awscli.Result{
			"sts get-caller-identity": okJSON("not json at all"),
		},
	}
	checker, buf := newTestChecker(runner)

	assert.False(t, checker.Identity(context.Background()))
	assert.Contains(t, buf.String(), "Invalid JSON response from AWS CLI")
}

func TestIdentity_MissingFields(t *testing.T) {
	runner := &fakeRunner{
		responses: map[string]awscli.Result{
			"sts get-caller-identity": okJSON(`{"Account": "123456789012"}`),
			"configure get region":    {Success: false, ExitCode: 255},
		},
	}
	checker, buf := newTestChecker(runner)

	assert.True(t, checker.Identity(context.Background()))

	out := buf.String()
	assert.Contains(t, out, "N/A")
	assert.Contains(t, out, "not set")
}

func TestPermissions_CountsAndVerdict(t *testing.T) {
	runner := &fakeRunner{
		responses: map[string]awscli.Result{
			"ecs list-clusters":            okJSON(`{"clusterArns": []}`),
			"ec2 describe-instances":       okJSON(`{"Reservations": []}`),
			"ec2 describe-regions":         okJSON(`{"Regions": []}`),
			"lambda list-functions":        okJSON(`{"Functions": []}`),
			"cloudwatch describe-alarms":   okJSON(`{"MetricAlarms": []}`),
			"cloudwatch list-metrics":      okJSON(`{"Metrics": []}`),
			"rds describe-db-instances":    okJSON(`{"DBInstances": []}`),
			"elbv2 describe-load-balancers": {
				Success:  false,
				Stderr:   "An error occurred (AccessDenied)",
				ExitCode: 255,
			},
			"s3api list-buckets":      okJSON(`{"Buckets": []}`),
			"sts get-caller-identity": okJSON(`{"Account": "123456789012"}`),
		},
	}
	checker, buf := newTestChecker(runner)

	assert.False(t, checker.Permissions(context.Background()))
	assert.Contains(t, buf.String(), "Required permissions: 9 passed, 1 failed")
}

func TestPermissions_AllGranted(t *testing.T) {
	runner := &fakeRunner{
		responses: map[string]awscli.Result{"": okJSON(`{}`)},
	}
	checker, buf := newTestChecker(runner)

	assert.True(t, checker.Permissions(context.Background()))
	assert.Contains(t, buf.String(), "Required permissions: 10 passed, 0 failed")
	// Optional probes run too but never affect the verdict.
	assert.Contains(t, buf.String(), "ce:GetCostAndUsage")
}

func TestServices_Discovery(t *testing.T) {
	runner := &fakeRunner{
		responses: map[string]awscli.Result{
			"ecs list-clusters": okJSON(`["arn:aws:ecs:eu-west-1:123456789012:cluster/web"]`),
			"ecs list-services": okJSON(`["arn:aws:ecs:eu-west-1:123456789012:service/web/api"]`),
			"ec2 describe-instances": okJSON(
				`[[["i-0abc", "web-1", "t3.micro"], ["i-0def", null, "t3.small"]]]`),
			"lambda list-functions":         okJSON(`[["fn-a", "python3.11"], ["fn-b", "nodejs18.x"]]`),
			"elbv2 describe-load-balancers": okJSON(`[]`),
			"rds describe-db-instances":     {Success: false, Stderr: "AccessDenied", ExitCode: 255},
		},
	}
	checker, buf := newTestChecker(runner)

	assert.False(t, checker.Services(context.Background()))

	out := buf.String()
	assert.Contains(t, out, "web")
	assert.Contains(t, out, "- api")
	assert.Contains(t, out, "i-0abc - web-1 (t3.micro)")
	assert.Contains(t, out, "i-0def - unnamed (t3.small)")
	assert.Contains(t, out, "fn-a (python3.11)")
	assert.Contains(t, out, "No load balancers found")
	assert.Contains(t, out, "Failed to describe RDS instances")
}

func TestServices_LambdaListCapped(t *testing.T) {
	entries := make([]string, 0, 13)
	for _, n := range strings.Split("abcdefghijklm", "") {
		entries = append(entries, `["fn-`+n+`", "go1.x"]`)
	}
	runner := &fakeRunner{
		responses: map[string]awscli.Result{
			"ecs list-clusters":             okJSON(`[]`),
			"ec2 describe-instances":        okJSON(`[]`),
			"lambda list-functions":         okJSON("[" + strings.Join(entries, ",") + "]"),
			"elbv2 describe-load-balancers": okJSON(`[]`),
			"rds describe-db-instances":     okJSON(`[]`),
		},
	}
	checker, buf := newTestChecker(runner)

	assert.True(t, checker.Services(context.Background()))

	out := buf.String()
	assert.Contains(t, out, "fn-j")
	assert.NotContains(t, out, "fn-k")
	assert.Contains(t, out, "... and 3 more")
}

func TestServices_MalformedResponse(t *testing.T) {
	runner := &fakeRunner{
		responses: map[string]awscli.Result{
			"ecs list-clusters":             okJSON("An error occurred"),
			"ec2 describe-instances":        okJSON(`[]`),
			"lambda list-functions":         okJSON(`[]`),
			"elbv2 describe-load-balancers": okJSON(`[]`),
			"rds describe-db-instances":     okJSON(`[]`),
		},
	}
	checker, buf := newTestChecker(runner)

	assert.False(t, checker.Services(context.Background()))
	assert.Contains(t, buf.String(), "Failed to parse ECS clusters response")
}

func TestConfig_RedactsSecrets(t *testing.T) {
	t.Setenv("AWS_CONFIG_FILE", "/nonexistent/config")
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", "/nonexistent/credentials")
	t.Setenv("AWS_ACCESS_KEY_ID", "AKIAEXAMPLE")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "supersecret")
	t.Setenv("AWS_REGION", "us-east-1")

	checker, buf := newTestChecker(&fakeRunner{})
	assert.True(t, checker.Config(context.Background()))

	out := buf.String()
	assert.Contains(t, out, "AWS_ACCESS_KEY_ID=***")
	assert.Contains(t, out, "AWS_SECRET_ACCESS_KEY=***")
	assert.NotContains(t, out, "supersecret")
	assert.Contains(t, out, "AWS_REGION=us-east-1")
	assert.Contains(t, out, "Config file not found")
}

func TestArnSuffix(t *testing.T) {
	assert.Equal(t, "web", arnSuffix("arn:aws:ecs:eu-west-1:123456789012:cluster/web"))
	assert.Equal(t, "plain", arnSuffix("plain"))
}
