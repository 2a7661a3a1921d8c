package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/mdtlens/mdtlens/internal/aggregator"
)

// Headers is the column order shared by every output mode.
var Headers = []string{"Object", "Field", "Longest", "Shortest", "Length", "Count", "Type Info"}

// WriteConsole renders the report as a bordered fixed-width table.
func WriteConsole(w io.Writer, rows []aggregator.FieldStats) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.Debug)
	fmt.Fprintln(tw, strings.Join(Headers, "\t"))

	sep := make([]string, len(Headers))
	for i, h := range Headers {
		sep[i] = strings.Repeat("-", len(h))
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	for _, r := range rows {
		fmt.Fprintln(tw, strings.Join(cells(r), "\t"))
	}
	return tw.Flush()
}

// WriteMarkdown renders the report as a pipe-delimited Markdown table.
func WriteMarkdown(w io.Writer, rows []aggregator.FieldStats) error {
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(Headers, " | ")); err != nil {
		return err
	}

	sep := make([]string, len(Headers))
	for i := range sep {
		sep[i] = "---"
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}

	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(cells(r), " | ")); err != nil {
			return err
		}
	}
	return nil
}

func cells(r aggregator.FieldStats) []string {
	return []string{
		r.Object,
		r.Field,
		strconv.Itoa(r.Longest),
		strconv.Itoa(r.Shortest),
		lengthCell(r.Length),
		strconv.Itoa(r.Count),
		r.TypeInfo,
	}
}

// lengthCell leaves the Length column empty for unbounded field types
// instead of printing a fake zero bound.
func lengthCell(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}
