package panel

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Columns are the table headers, in display order.
var Columns = []string{"First name", "Last name", "ZIP"}

// Table is the display form of the entry list.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Project maps entries to table rows, one row per entry, order kept.
func Project(entries []Entry) Table {
	t := Table{
		Columns: append([]string(nil), Columns...),
		Rows:    make([][]string, 0, len(entries)),
	}
	for _, e := range entries {
		t.Rows = append(t.Rows, []string{e.FirstName, e.LastName, e.ZIP})
	}
	return t
}

// WriteTo renders the table as aligned text columns.
func (t Table) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	tw := tabwriter.NewWriter(cw, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(t.Columns, "\t"))
	rule := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		rule[i] = strings.Repeat("-", len([]rune(c)))
	}
	fmt.Fprintln(tw, strings.Join(rule, "\t"))
	for _, row := range t.Rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	err := tw.Flush()
	return cw.n, err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
