// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output extracts row datasets from AWS CLI JSON documents and emits
// them as tables, JSON, or YAML.
package output
