// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitApp_CommandTree(t *testing.T) {
	app, err := InitApp(context.Background(), []string{"dashctl", "check"})
	require.NoError(t, err)

	assert.Equal(t, "dashctl", app.Name)
	require.Len(t, app.Commands, 2)

	check := app.Commands[0]
	assert.Equal(t, "check", check.Name)
	var checkSubs []string
	for _, sub := range check.Commands {
		checkSubs = append(checkSubs, sub.Name)
	}
	assert.Equal(t, []string{"all", "identity", "permissions", "services", "config"}, checkSubs)

	metrics := app.Commands[1]
	assert.Equal(t, "metrics", metrics.Name)
	var metricsSubs []string
	for _, sub := range metrics.Commands {
		metricsSubs = append(metricsSubs, sub.Name)
	}
	assert.Equal(t, []string{"list", "get", "alarms", "ecs", "ec2", "rds", "export"}, metricsSubs)
}

func TestOutputValidator(t *testing.T) {
	tests := []struct {
		value string
		valid bool
	}{
		{"text", true},
		{"json", true},
		{"yaml", true},
		{"raw", true},
		{"table", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			err := OutputValidator(tt.value)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestAlarmStateValidator(t *testing.T) {
	assert.NoError(t, AlarmStateValidator(""))
	assert.NoError(t, AlarmStateValidator("ALARM"))
	assert.NoError(t, AlarmStateValidator("OK"))
	assert.NoError(t, AlarmStateValidator("INSUFFICIENT_DATA"))
	assert.Error(t, AlarmStateValidator("PANIC"))
}

func TestNewProfileFlag_ConfigSources(t *testing.T) {
	flag := NewProfileFlag("metrics", "/tmp/dashctl.yaml")
	// Env source plus namespaced and global config file sources.
	assert.Len(t, flag.Sources.Chain, 3)
}
