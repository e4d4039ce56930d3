// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package profiles

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		kind    Kind
		content string
		want    []string
	}{
		{
			name: "config file with profile prefix",
			kind: ConfigFile,
			content: `[default]
region = us-east-1

[profile staging]
region = us-west-2
output = json

[profile prod]
region = eu-west-1
`,
			want: []string{"default", "staging", "prod"},
		},
		{
			name: "credentials file without prefix",
			kind: CredentialsFile,
			content: `[default]
aws_access_key_id = AKIAEXAMPLE
aws_secret_access_key = secret

[staging]
aws_access_key_id = AKIAEXAMPLE2
`,
			want: []string{"default", "staging"},
		},
		{
			name:    "empty content",
			kind:    ConfigFile,
			content: "",
			want:    nil,
		},
		{
			name: "no sections",
			kind: CredentialsFile,
			content: `region = us-east-1
output = json
`,
			want: nil,
		},
		{
			name: "whitespace around headers",
			kind: ConfigFile,
			content: "  [profile padded]  \n[ default ]\n",
			want: []string{"padded", "default"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(strings.NewReader(tt.content), tt.kind)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "config")
	err := os.WriteFile(path, []byte("[default]\n[profile ops]\n"), 0o600)
	assert.NoError(t, err)

	names, err := Load(path, ConfigFile)
	assert.NoError(t, err)
	assert.Equal(t, []string{"default", "ops"}, names)

	_, err = Load(filepath.Join(dir, "missing"), ConfigFile)
	assert.Error(t, err)
}

func TestPaths_EnvOverride(t *testing.T) {
	t.Setenv("AWS_CONFIG_FILE", "/tmp/custom-config")
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", "/tmp/custom-credentials")

	assert.Equal(t, "/tmp/custom-config", ConfigPath())
	assert.Equal(t, "/tmp/custom-credentials", CredentialsPath())
}
