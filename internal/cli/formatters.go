package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// OutputFormat selects how a command renders its result.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// OutputResults renders data in the requested format. Text output is the
// caller's job (tables, composed markdown); this fallback only stringifies.
func OutputResults(w io.Writer, format string, data interface{}) error {
	switch OutputFormat(format) {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(data)

	case FormatYAML:
		out, err := yaml.Marshal(data)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(w, string(out))
		return err

	case FormatText:
		_, err := fmt.Fprintf(w, "%v\n", data)
		return err

	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// TableFormatter renders the recipe listing tables on a tabwriter.
type TableFormatter struct {
	writer *tabwriter.Writer
	cols   int
}

// NewTableFormatter creates a table formatter writing to w.
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

// Header writes the column titles and a rule sized to them.
func (t *TableFormatter) Header(columns ...string) {
	t.cols = len(columns)
	fmt.Fprintln(t.writer, strings.Join(columns, "\t"))

	rules := make([]string, len(columns))
	for i, col := range columns {
		rules[i] = strings.Repeat("-", len(col))
	}
	fmt.Fprintln(t.writer, strings.Join(rules, "\t"))
}

// Row writes one recipe line. Missing trailing cells render empty so a
// short row cannot shift the columns after it.
func (t *TableFormatter) Row(values ...string) {
	for len(values) < t.cols {
		values = append(values, "")
	}
	fmt.Fprintln(t.writer, strings.Join(values, "\t"))
}

// Flush writes the buffered table to output.
func (t *TableFormatter) Flush() {
	t.writer.Flush()
}

// FormatTags renders a tag list the way the TUI shows it (#weeknight
// #italian), truncated to maxLen.
func FormatTags(tags []string, maxLen int) string {
	if len(tags) == 0 {
		return ""
	}
	parts := make([]string, len(tags))
	for i, tag := range tags {
		parts[i] = "#" + tag
	}
	return TruncateString(strings.Join(parts, " "), maxLen)
}

// FormatMinutes renders an optional duration in minutes, with a dash for
// recipes that never recorded one.
func FormatMinutes(minutes *int) string {
	if minutes == nil {
		return "-"
	}
	return fmt.Sprintf("%d min", *minutes)
}

// TotalMinutes sums the prep and cook durations; nil when neither is set.
func TotalMinutes(prep, cook *int) *int {
	if prep == nil && cook == nil {
		return nil
	}
	total := 0
	if prep != nil {
		total += *prep
	}
	if cook != nil {
		total += *cook
	}
	return &total
}

// TruncateString shortens a string to at most maxLen runes, marking the
// cut with an ellipsis when there is room for one.
func TruncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 1 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-1]) + "…"
}
