// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package filters narrows report rows with key-operator-target expressions
// from the --filter flag.
//
// Operators:
//
//   - = : exact match (negation: !=)
//   - ^ : prefix match (negation: !^)
//   - ~ : contains (negation: !~)
//   - / : regex match (negation: !/)
//
// Keys name output columns by their title, e.g. "state=ALARM" against the
// alarms table or "metric^CPU" against a list-metrics table. Expressions are
// comma-separated and all must match.
package filters
