// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package check

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	sdkconfig "github.com/aws/aws-sdk-go-v2/config"

	"github.com/dashctl/dashctl/internal/log"
	"github.com/dashctl/dashctl/internal/profiles"
)

// sessionEnv lists the environment variables that influence credential and
// region resolution. Secrets are redacted in the report.
var sessionEnv = []struct {
	name   string
	secret bool
}{
	{"AWS_PROFILE", false},
	{"AWS_DEFAULT_REGION", false},
	{"AWS_REGION", false},
	{"AWS_ACCESS_KEY_ID", true},
	{"AWS_SECRET_ACCESS_KEY", true},
	{"AWS_SESSION_TOKEN", true},
}

// Config reports the shared config/credentials files, the profiles they
// define, relevant environment variables, and the region the SDK resolves
// from all of that. Purely local; no AWS API calls.
func (c *Checker) Config(ctx context.Context) bool {
	c.ui.Header("AWS Configuration")

	c.reportSharedFile("Config file", profiles.ConfigPath(), profiles.ConfigFile)
	c.reportSharedFile("Credentials file", profiles.CredentialsPath(), profiles.CredentialsFile)

	c.ui.Println()
	c.ui.Infof("Environment:")
	set := 0
	for _, env := range sessionEnv {
		value := os.Getenv(env.name)
		if value == "" {
			continue
		}
		if env.secret {
			value = "***"
		}
		c.ui.Infof("  %s=%s", env.name, value)
		set++
	}
	if set == 0 {
		c.ui.Infof("  (none set)")
	}

	c.ui.Println()
	cfg, err := c.resolveSDK(ctx)
	if err != nil || cfg.Region == "" {
		c.ui.Warningf("No region resolved; set AWS_REGION or run: aws configure")
		return true
	}
	c.ui.Successf("Resolved region: %s", cfg.Region)

	return true
}

func (c *Checker) reportSharedFile(label string, path string, kind profiles.Kind) {
	names, err := profiles.Load(path, kind)
	if err != nil {
		if os.IsNotExist(err) {
			c.ui.Warningf("%s not found: %s", label, path)
		} else {
			c.ui.Errorf("%s unreadable: %s", label, err)
		}
		return
	}

	c.ui.Successf("%s: %s", label, path)
	if len(names) > 0 {
		c.ui.Infof("  Profiles: %s", strings.Join(names, ", "))
	}
}

// resolveSDK asks the SDK's default chain (env, profile, shared config) what
// it would resolve. This mirrors what the CLI itself would do without making
// a network call.
func (c *Checker) resolveSDK(ctx context.Context) (aws.Config, error) {
	loadCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cfg, err := sdkconfig.LoadDefaultConfig(loadCtx)
	if err != nil {
		log.Debugf("sdk config load failed: err=%s", err)
		return aws.Config{}, err
	}
	return cfg, nil
}
