// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command wires the CLI surface: the app, the check and metrics
// command groups, shared flags, and flag validators.
package command
