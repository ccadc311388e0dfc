package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

type TableOptions struct {
	PerQuery bool
}

func WriteTable(r *Report, w io.Writer, opts TableOptions) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Query Interpretation Evaluation (%s) ===\n\n", r.Meta.Metric)
	writeAggregatedTable(tw, r)
	if opts.PerQuery {
		writePerQueryTable(tw, r)
	}

	return tw.Flush()
}

func writeAggregatedTable(tw *tabwriter.Writer, r *Report) {
	agg := r.Aggregated
	fmt.Fprintf(tw, "Macro-averaged over %d queries (%d missing from results)\n\n", agg.QueryCount, agg.MissingCount)

	header := []string{"Metric", "Precision", "Recall", "F1"}
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	fmt.Fprintln(tw, separator(len(header)))

	row := []string{
		r.Meta.Metric,
		fmtScore(agg.Precision),
		fmtScore(agg.Recall),
		fmtScore(agg.F1),
	}
	fmt.Fprintln(tw, strings.Join(row, "\t"))
	fmt.Fprintln(tw)
}

func writePerQueryTable(tw *tabwriter.Writer, r *Report) {
	fmt.Fprintf(tw, "Per-Query Results\n\n")

	header := []string{"Query", "Precision", "Recall", "F1", "Qrel sets", "Result sets", "Status"}
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	fmt.Fprintln(tw, separator(len(header)))

	for _, e := range r.PerQuery {
		status := "OK"
		if e.Missing {
			status = "MISSING"
		}
		row := []string{
			e.QueryID,
			fmtScore(e.Precision),
			fmtScore(e.Recall),
			fmtScore(e.F1),
			fmt.Sprintf("%d", e.QrelSets),
			fmt.Sprintf("%d", e.ResultSets),
			status,
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintln(tw)
}

func separator(n int) string {
	sep := make([]string, n)
	for i := range sep {
		sep[i] = "---"
	}
	return strings.Join(sep, "\t")
}

func fmtScore(v float64) string {
	return fmt.Sprintf("%.4f", v)
}
