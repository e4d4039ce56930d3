// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"os"
	"sort"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v2"

	"github.com/dashctl/dashctl/internal/config"
	"github.com/dashctl/dashctl/internal/filters"
	"github.com/dashctl/dashctl/internal/log"
)

// Column maps one output column onto a gjson path within each element of the
// source document's row array. Transform, when set, post-processes the
// extracted cell (rounding, relative timestamps).
type Column struct {
	Title     string
	Path      string
	Transform func(string) string
}

// Options shape how a dataset is emitted.
type Options struct {
	Format string // text, json, yaml, raw
	Color  bool
	Titles bool
	Filter string
	Tail   int // keep only the last N rows after sorting; 0 keeps all
	SortBy int // column index to sort rows by; -1 preserves document order
}

// Spit extracts rows from a CLI JSON document and renders them per the
// options. parent is the gjson path of the row array ("Metrics",
// "Datapoints", ...); an empty parent treats the whole document as the array.
func Spit(raw string, parent string, cols []Column, opts Options, w io.Writer) {
	if w == nil {
		w = os.Stdout
	}

	// If raw, just dump it and go home.
	if opts.Format == "raw" {
		_, _ = io.WriteString(w, raw)
		return
	}

	doc := gjson.Parse(raw)
	if parent != "" {
		doc = doc.Get(parent)
	}

	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.Title
	}

	//nolint:prealloc
	var rows [][]string
	for _, el := range doc.Array() {
		row := make([]string, len(cols))
		for i, c := range cols {
			cell := el.Get(c.Path).String()
			if c.Transform != nil {
				cell = c.Transform(cell)
			}
			row[i] = cell
		}
		rows = append(rows, row)
	}

	// Filter before sorting and trimming so --filter applies to the full
	// dataset the CLI returned.
	rows = filters.Apply(headers, rows, opts.Filter)

	if opts.SortBy >= 0 {
		SortRows(rows, opts.SortBy)
	}
	if opts.Tail > 0 && len(rows) > opts.Tail {
		rows = rows[len(rows)-opts.Tail:]
	}

	switch opts.Format {
	case "json":
		jsonOutput, err := json.Marshal(toMaps(headers, rows))
		if err != nil {
			log.Errorf("Spit json marshal: %v", err)
		}
		_, _ = w.Write(jsonOutput)
		fmt.Fprintln(w)
	case "yaml":
		yamlOutput, err := yaml.Marshal(toMaps(headers, rows))
		if err != nil {
			log.Errorf("Spit yaml marshal: %v", err)
		}
		_, _ = w.Write(yamlOutput)
	default:
		TableWriter(rows, headers, opts, w)
	}
}

// SortRows orders rows ascending by the given column. Timestamps in the CLI's
// ISO-8601 form sort correctly as plain strings.
func SortRows(rows [][]string, col int) {
	sort.SliceStable(rows, func(i, j int) bool {
		if col >= len(rows[i]) || col >= len(rows[j]) {
			return false
		}
		return rows[i][col] < rows[j][col]
	})
}

// TableWriter renders the rows in tabular form honoring color and title
// options. Output is written to w. If w is nil, os.Stdout is used.
func TableWriter(rows [][]string, headers []string, opts Options, w io.Writer) {
	if w == nil {
		w = os.Stdout
	}

	// We return early if there are no results to display.
	if len(rows) == 0 {
		return
	}

	// We initialize the table styles.
	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left).Bold(true)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	// And then color styles if --color is present.
	if opts.Color {
		headerColor, evenColor, oddColor := getColors("colors")

		headerStyle = headerStyle.Foreground(headerColor)
		evenRowStyle = evenRowStyle.Foreground(evenColor)
		oddRowStyle = oddRowStyle.Foreground(oddColor)
	}

	// Empty cells render as a placeholder so columns stay scannable.
	display := make([][]string, len(rows))
	for i, row := range rows {
		display[i] = make([]string, len(row))
		for j, cell := range row {
			if cell == "" {
				cell = "-"
			}
			display[i][j] = cell
		}
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}

			if col > 0 {
				style = style.PaddingLeft(2)
			}

			return style
		}).
		Headers().
		Rows(display...)

	if opts.Titles {
		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers(headers...).BorderHeader(false)
	}
	fmt.Fprintln(w, t)
}

// toMaps converts rows into keyed maps for the structured output modes.
func toMaps(headers []string, rows [][]string) []map[string]string {
	out := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		m := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(row) {
				m[h] = row[i]
			}
		}
		out = append(out, m)
	}
	return out
}

// getColors returns configured color values for table rendering. Each color is
// selected based on terminal background color and brightness so that we can
// make sure output is reasonably visible for all(?) terminal themes.
func getColors(key string) (header, even, odd color.Color) {
	isDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)

	// Use the explicit color if found in the config and leave it up to the
	// user to choose appropriate colors for their theme. If not found, pick a
	// reasonable default based on terminal background.
	resolveColor := func(key string, light string, dark string) color.Color {
		colorCfg, err := config.GetString(key)
		if err == nil {
			return lipgloss.Color(colorCfg)
		}

		if isDark {
			return lipgloss.Color(dark)
		}
		return lipgloss.Color(light)
	}

	header = resolveColor(key+".title", "#b08800", "#f6be00")
	even = resolveColor(key+".even", "#333333", "#ffffff")
	odd = resolveColor(key+".odd", "#0088a0", "#00c8f0")

	return
}
