// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filters

import (
	"regexp"
	"strings"

	"github.com/dashctl/dashctl/internal/log"
)

// filterRegex parses a filter expression into key, operator, and target
// components. Operators are one of = ^ ~ or /, optionally prefixed with '!'
// for negation. Examples: "state=ALARM", "metric^CPU", "namespace!~Lambda",
// "name/^web-[0-9]+$".
var filterRegex = regexp.MustCompile(`^([^!=^~/]+)(!?[=^~/])(.*)$`)

// Filter is a single parsed --filter expression.
type Filter struct {
	Key     string
	Negate  bool
	Operand string
	Value   string
}

// Build parses a comma-separated filter specification into a slice of
// Filter. Malformed expressions are logged and skipped.
func Build(spec string) []Filter {
	//nolint:prealloc
	var filters []Filter

	if spec == "" {
		return filters
	}

	for _, filterSpec := range strings.Split(spec, ",") {
		filterSpec = strings.TrimSpace(filterSpec)
		if filterSpec == "" {
			continue
		}

		parts := filterRegex.FindStringSubmatch(filterSpec)
		if parts == nil {
			log.Errorf("invalid filter: %s", filterSpec)
			continue
		}

		operand := parts[2]
		negate := strings.HasPrefix(operand, "!")
		operand = strings.TrimPrefix(operand, "!")

		filters = append(filters, Filter{
			Key:     strings.TrimSpace(parts[1]),
			Negate:  negate,
			Operand: operand,
			Value:   parts[3],
		})
	}

	return filters
}

// Apply returns the rows matching every filter in spec. Filter keys name
// columns by their header title; a key that names no column is reported once
// and ignored so a typo doesn't silently empty the report.
func Apply(headers []string, rows [][]string, spec string) [][]string {
	filters := Build(spec)
	if len(filters) == 0 {
		return rows
	}

	// Resolve filter keys to column indexes up front.
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[h] = i
	}

	checks := make([]struct {
		col    int
		filter Filter
	}, 0, len(filters))
	for _, f := range filters {
		col, ok := idx[f.Key]
		if !ok {
			log.Errorf("filter key not found: %s", f.Key)
			continue
		}
		checks = append(checks, struct {
			col    int
			filter Filter
		}{col, f})
	}

	//nolint:prealloc
	var out [][]string
	for _, row := range rows {
		keep := true
		for _, c := range checks {
			if c.col >= len(row) || !match(row[c.col], c.filter) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, row)
		}
	}

	return out
}

// match evaluates one filter against a cell value.
func match(value string, f Filter) bool {
	var result bool
	switch f.Operand {
	case "=":
		result = value == f.Value
	case "^":
		result = strings.HasPrefix(value, f.Value)
	case "~":
		result = strings.Contains(value, f.Value)
	case "/":
		matched, err := regexp.MatchString(f.Value, value)
		if err != nil {
			log.Errorf("invalid regex: %s", f.Value)
			return false
		}
		result = matched
	default:
		log.Errorf("unsupported filtering operand: %s", f.Operand)
		return false
	}

	return result == !f.Negate
}
