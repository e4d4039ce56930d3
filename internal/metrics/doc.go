// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package metrics implements the CloudWatch query commands: metric listing,
// single-metric statistics, alarm summaries, per-resource metric sets, and
// bulk export via get-metric-data.
package metrics
