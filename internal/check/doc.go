// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package check implements the setup verification report: CLI installation,
// caller identity, local configuration, IAM permission probes, and service
// discovery.
package check
