// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package profiles enumerates profile names from the AWS shared config and
// credentials files. Only section headers are read; values (and in particular
// credentials) are never parsed or held in memory.
package profiles

import (
	"bufio"
	"io"
	"os"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
)

// Kind identifies which shared file is being parsed. The config file wraps
// non-default profile names in a "profile " prefix; the credentials file does
// not.
type Kind int

const (
	ConfigFile Kind = iota
	CredentialsFile
)

// ConfigPath returns the shared config file path, honoring AWS_CONFIG_FILE.
func ConfigPath() string {
	if p := os.Getenv("AWS_CONFIG_FILE"); p != "" {
		return p
	}
	return awsconfig.DefaultSharedConfigFilename()
}

// CredentialsPath returns the shared credentials file path, honoring
// AWS_SHARED_CREDENTIALS_FILE.
func CredentialsPath() string {
	if p := os.Getenv("AWS_SHARED_CREDENTIALS_FILE"); p != "" {
		return p
	}
	return awsconfig.DefaultSharedCredentialsFilename()
}

// Load reads profile names from the given shared file. A missing file is not
// an error to the caller beyond the os.IsNotExist check it may want to do.
func Load(path string, kind Kind) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f, kind), nil
}

// Parse extracts profile names from shared config/credentials file content.
// Section headers look like "[default]", "[profile staging]" (config file
// only) or "[staging]" (credentials file).
func Parse(r io.Reader, kind Kind) []string {
	var names []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "[") || !strings.HasSuffix(line, "]") {
			continue
		}

		name := strings.TrimSpace(line[1 : len(line)-1])
		if kind == ConfigFile {
			name = strings.TrimPrefix(name, "profile ")
			name = strings.TrimSpace(name)
		}
		if name == "" {
			continue
		}
		names = append(names, name)
	}

	return names
}
