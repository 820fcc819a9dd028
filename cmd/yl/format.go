package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/zulandar/yardline/internal/models"
)

// formatYPU renders yards per reception with one decimal place.
func formatYPU(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}

// writeRecordTable prints records as an aligned table.
func writeRecordTable(out io.Writer, recs []models.Record) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tYDS\tYPC\tREC\tTD")
	for _, r := range recs {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%d\t%d\n",
			r.ID, truncate(r.Name, 32), r.Yardage, formatYPU(r.YardsPerUnit), r.UnitCount, r.ScoreCount)
	}
	w.Flush()
}
