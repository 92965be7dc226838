// Package report assembles labeled score tables and writes them out as
// delimited text or numpy binary files.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/kshedden/gonpy"
)

// Row is one labeled table row.
type Row struct {
	// Label is the row identifier, typically a patient ID
	Label string

	// Values holds one score per table column
	Values []float64
}

// Table is a rectangular score table: named columns, labeled rows.
type Table struct {
	// Columns are the column headers, in output order
	Columns []string

	rows []Row
}

// NewTable creates an empty table with the given column headers.
func NewTable(columns []string) *Table {
	return &Table{Columns: columns}
}

// Append adds a labeled row. The number of values must equal the number
// of columns.
func (t *Table) Append(label string, values []float64) error {
	if len(values) != len(t.Columns) {
		return fmt.Errorf("row %s has %d values, table has %d columns", label, len(values), len(t.Columns))
	}
	t.rows = append(t.rows, Row{Label: label, Values: values})
	return nil
}

// Rows returns the appended rows in insertion order.
func (t *Table) Rows() []Row {
	return t.rows
}

// WriteCSV writes the table as comma-delimited text: a header row with
// an empty leading cell for the row-label column, then one line per row.
func (t *Table) WriteCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	header := append([]string{""}, t.Columns...)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, row := range t.rows {
		record := make([]string, 0, len(row.Values)+1)
		record = append(record, row.Label)
		for _, v := range row.Values {
			record = append(record, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("writing row %s: %w", row.Label, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return nil
}

// WriteNpy writes the table values (without labels) as a 2D float64
// numpy array in row-major order, for downstream numpy analysis.
func (t *Table) WriteNpy(path string) error {
	w, err := gonpy.NewFileWriter(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	flat := make([]float64, 0, len(t.rows)*len(t.Columns))
	for _, row := range t.rows {
		flat = append(flat, row.Values...)
	}

	w.Shape = []int{len(t.rows), len(t.Columns)}
	w.Version = 2
	if err := w.WriteFloat64(flat); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
