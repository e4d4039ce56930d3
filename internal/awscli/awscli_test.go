// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package awscli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRun_MissingBinary(t *testing.T) {
	c := &CLI{Binary: "dashctl-no-such-binary"}

	res := c.Run(context.Background(), []string{"--version"}, CheckTimeout)

	assert.False(t, res.Success)
	assert.Equal(t, "AWS CLI not found", res.Stderr)
	assert.Equal(t, -1, res.ExitCode)
	assert.Empty(t, res.Stdout)
}

func TestRun_Timeout(t *testing.T) {
	// Stand in a slow binary for aws. The wrapper must synthesize a failure
	// rather than return an error or hang.
	c := &CLI{Binary: "sleep"}

	res := c.Run(context.Background(), []string{"5"}, 100*time.Millisecond)

	assert.False(t, res.Success)
	assert.Equal(t, "Command timed out", res.Stderr)
	assert.Equal(t, -1, res.ExitCode)
}

func TestRun_Success(t *testing.T) {
	c := &CLI{Binary: "echo"}

	res := c.Run(context.Background(), []string{"hello"}, CheckTimeout)

	assert.True(t, res.Success)
	assert.Equal(t, 0, res.ExitCode)
	assert.Equal(t, "hello\n", res.Stdout)
}

func TestRun_NonZeroExit(t *testing.T) {
	c := &CLI{Binary: "false"}

	res := c.Run(context.Background(), nil, CheckTimeout)

	assert.False(t, res.Success)
	assert.NotEqual(t, 0, res.ExitCode)
}

func TestRun_SessionArgsAppended(t *testing.T) {
	c := &CLI{Binary: "echo", Profile: "ops", Region: "us-west-2"}

	res := c.Run(context.Background(), []string{"cloudwatch"}, CheckTimeout)

	assert.True(t, res.Success)
	assert.Equal(t, "cloudwatch --profile ops --region us-west-2\n", res.Stdout)
}

func TestPath(t *testing.T) {
	c := &CLI{Binary: "echo"}
	path, err := c.Path()
	assert.NoError(t, err)
	assert.NotEmpty(t, path)

	c = &CLI{Binary: "dashctl-no-such-binary"}
	_, err = c.Path()
	assert.Error(t, err)
}

func TestTimeRange(t *testing.T) {
	tests := []struct {
		name  string
		hours int
	}{
		{name: "one hour", hours: 1},
		{name: "one day", hours: 24},
		{name: "one week", hours: 168},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
			start, end := timeRangeAt(now, tt.hours)

			st, err := time.Parse(windowFormat, start)
			assert.NoError(t, err)
			et, err := time.Parse(windowFormat, end)
			assert.NoError(t, err)

			assert.True(t, st.Before(et), "start must precede end")
			assert.Equal(t, time.Duration(tt.hours)*time.Hour, et.Sub(st))
			assert.Equal(t, now, et)
		})
	}
}

func TestTimeRange_Now(t *testing.T) {
	start, end := TimeRange(6)

	st, err := time.Parse(windowFormat, start)
	assert.NoError(t, err)
	et, err := time.Parse(windowFormat, end)
	assert.NoError(t, err)
	assert.Equal(t, 6*time.Hour, et.Sub(st))
}
