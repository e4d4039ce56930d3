// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package check

import (
	"context"
	"os"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/dashctl/dashctl/internal/awscli"
)

// Identity verifies that credentials resolve to a caller identity. A failure
// here means nothing else will work, so callers treat false as fatal.
func (c *Checker) Identity(ctx context.Context) bool {
	c.ui.Header("AWS Identity")

	result := c.aws.Run(ctx, []string{"sts", "get-caller-identity", "--output", "json"}, awscli.CheckTimeout)
	if !result.Success {
		c.ui.Errorf("Failed to get caller identity")
		c.ui.Println(result.Stderr)
		c.ui.Println()
		c.ui.Println("Check your credentials:")
		c.ui.Println("  aws configure")
		c.ui.Println("  aws configure --profile <profile-name>")
		return false
	}

	if !gjson.Valid(result.Stdout) {
		c.ui.Errorf("Invalid JSON response from AWS CLI")
		return false
	}

	identity := gjson.Parse(result.Stdout)
	c.ui.Successf("Authenticated successfully")
	c.ui.Infof("Account:  %s", fieldOr(identity, "Account", "N/A"))
	c.ui.Infof("ARN:      %s", fieldOr(identity, "Arn", "N/A"))
	c.ui.Infof("User ID:  %s", fieldOr(identity, "UserId", "N/A"))

	if profile := os.Getenv("AWS_PROFILE"); profile != "" {
		c.ui.Infof("Profile:  %s", profile)
	}

	region := "not set"
	if r := c.aws.Run(ctx, []string{"configure", "get", "region"}, awscli.CheckTimeout); r.Success {
		if v := strings.TrimSpace(r.Stdout); v != "" {
			region = v
		}
	}
	c.ui.Infof("Region:   %s", region)

	return true
}

// fieldOr returns the string field from doc or a fallback when absent.
func fieldOr(doc gjson.Result, path string, fallback string) string {
	if v := doc.Get(path); v.Exists() && v.String() != "" {
		return v.String()
	}
	return fallback
}

// firstLine trims the payload to its first line.
func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
