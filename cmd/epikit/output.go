package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/tverem/epikit/branching"
)

// openOutput returns the data sink for --out. Empty path means stdout,
// which must not be closed by the caller.
func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file: %w", err)
	}
	return f, f.Close, nil
}

// renderSweepTable writes the dispersion sweep as an aligned plain-text
// table, mirroring the classroom handout layout.
func renderSweepTable(w io.Writer, r0 float64, rows []branching.TableRow) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "R0 = %g\n", r0)
	fmt.Fprintln(tw, "k\tq_estimate\tq_rounded\textinct\ttrials")
	for _, row := range rows {
		fmt.Fprintf(tw, "%g\t%.6f\t%.3f\t%d\t%d\n",
			row.Dispersion, row.Probability, row.Probability, row.Extinct, row.Trials)
	}
	return tw.Flush()
}

// writeSweepCSV writes the dispersion sweep as CSV.
func writeSweepCSV(w io.Writer, rows []branching.TableRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"k", "q_estimate", "extinct", "trials"}); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			strconv.FormatFloat(row.Dispersion, 'g', -1, 64),
			strconv.FormatFloat(row.Probability, 'f', 6, 64),
			strconv.Itoa(row.Extinct),
			strconv.Itoa(row.Trials),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// writeSeriesCSV writes aligned columns as CSV: one header per column,
// one row per grid point. All columns must share a length.
func writeSeriesCSV(w io.Writer, header []string, cols ...[]float64) error {
	if len(header) != len(cols) {
		return fmt.Errorf("writing series: %d headers for %d columns", len(header), len(cols))
	}
	for _, col := range cols[1:] {
		if len(col) != len(cols[0]) {
			return fmt.Errorf("writing series: ragged columns (%d vs %d)", len(col), len(cols[0]))
		}
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	record := make([]string, len(cols))
	for i := range cols[0] {
		for j, col := range cols {
			record[j] = strconv.FormatFloat(col[i], 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
