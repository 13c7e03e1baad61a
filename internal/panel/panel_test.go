package panel

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type notice struct {
	level Level
	msg   string
}

func recorder() (*[]notice, Notifier) {
	var got []notice
	return &got, NotifierFunc(func(level Level, msg string) {
		got = append(got, notice{level, msg})
	})
}

func fill(d *Directory, first, last, zip string) {
	d.SetFirstName(first)
	d.SetLastName(last)
	d.SetZipCode(zip)
}

func TestNewCopiesInitial(t *testing.T) {
	d := New(nil, InitialPeople)
	require.Len(t, d.Entries(), 4)

	fill(d, "Katherine", "Johnson", "23666")
	require.True(t, d.Save())
	assert.Len(t, InitialPeople, 4, "initial list must not be modified")
}

func TestSaveSuccess(t *testing.T) {
	notices, n := recorder()
	d := New(n, InitialPeople)

	var tables []Table
	d.Watch(func(tb Table) { tables = append(tables, tb) })

	fill(d, "  Katherine ", "Johnson", " 023666 ")
	require.True(t, d.Save())

	entries := d.Entries()
	require.Len(t, entries, 5)
	assert.Equal(t, Entry{FirstName: "Katherine", LastName: "Johnson", ZIP: "023666"}, entries[4])

	first, last, zip := d.Inputs()
	assert.Empty(t, first)
	assert.Empty(t, last)
	assert.Empty(t, zip)

	assert.Equal(t, []notice{{LevelSuccess, MsgSaved}}, *notices)
	require.Len(t, tables, 1)
	assert.Equal(t, []string{"Katherine", "Johnson", "023666"}, tables[0].Rows[4])
}

func TestSaveRejected(t *testing.T) {
	tests := []struct {
		name             string
		first, last, zip string
		want             string
	}{
		{"all empty", "", "", "", MsgMissingFields},
		{"missing first", "", "Johnson", "23666", MsgMissingFields},
		{"whitespace last", "Katherine", "   ", "23666", MsgMissingFields},
		{"missing zip", "Katherine", "Johnson", "", MsgMissingFields},
		{"zip too short", "Katherine", "Johnson", "12", MsgInvalidZip},
		{"zip too long", "Katherine", "Johnson", "12345678901", MsgInvalidZip},
		{"zip letters", "Katherine", "Johnson", "2366a", MsgInvalidZip},
		{"zip with dash", "Katherine", "Johnson", "23666-1234", MsgInvalidZip},
		{"zip non-ascii digits", "Katherine", "Johnson", "２３６６６", MsgInvalidZip},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notices, n := recorder()
			d := New(n, InitialPeople)
			called := false
			d.Watch(func(Table) { called = true })

			fill(d, tt.first, tt.last, tt.zip)
			assert.False(t, d.Save())

			assert.Equal(t, []notice{{LevelWarning, tt.want}}, *notices)
			assert.Len(t, d.Entries(), 4)
			assert.False(t, called)

			first, last, zip := d.Inputs()
			assert.Equal(t, tt.first, first)
			assert.Equal(t, tt.last, last)
			assert.Equal(t, tt.zip, zip)
		})
	}
}

func TestValidZip(t *testing.T) {
	assert.True(t, ValidZip("123"))
	assert.True(t, ValidZip("0000000000"))
	assert.True(t, ValidZip("02142"))
	assert.False(t, ValidZip(""))
	assert.False(t, ValidZip("12"))
	assert.False(t, ValidZip("00000000000"))
}

func TestProject(t *testing.T) {
	tb := Project(InitialPeople)
	assert.Equal(t, []string{"First name", "Last name", "ZIP"}, tb.Columns)
	require.Len(t, tb.Rows, 4)
	assert.Equal(t, []string{"Ada", "Lovelace", "20500"}, tb.Rows[0])
	assert.Equal(t, []string{"German", "Sheperd", "43147"}, tb.Rows[3])

	empty := Project(nil)
	assert.NotNil(t, empty.Rows)
	assert.Empty(t, empty.Rows)
}

func TestTableWriteTo(t *testing.T) {
	var buf bytes.Buffer
	n, err := Project(InitialPeople[:2]).WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "First name  Last name  ZIP", lines[0])
	assert.Equal(t, "----------  ---------  ---", lines[1])
	assert.Equal(t, "Ada         Lovelace   20500", lines[2])
	assert.Equal(t, "Alan        Turing     02142", lines[3])
}

func TestRun(t *testing.T) {
	var out bytes.Buffer
	d := New(WriterNotifier(&out), InitialPeople)
	in := strings.NewReader("Katherine\nJohnson\n23666\n\nNobody\n1\n")

	require.NoError(t, Run(context.Background(), d, in, &out))

	entries := d.Entries()
	require.Len(t, entries, 5)
	assert.Equal(t, "Katherine", entries[4].FirstName)

	s := out.String()
	assert.Contains(t, s, "[SUCCESS] Saved to directory.")
	assert.Contains(t, s, "[WARNING] Please fill out all fields.")
	assert.Equal(t, 2, strings.Count(s, "First name  Last name"))
	assert.Contains(t, s, "Katherine")
}

func TestRunQuit(t *testing.T) {
	var out bytes.Buffer
	d := New(WriterNotifier(&out), nil)
	in := strings.NewReader("Katherine\n.quit\nJohnson\n23666\n")

	require.NoError(t, Run(context.Background(), d, in, &out))
	assert.Empty(t, d.Entries())
	assert.NotContains(t, out.String(), "[")
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Run(ctx, New(nil, nil), strings.NewReader("a\nb\nc\n"), &bytes.Buffer{})
	assert.ErrorIs(t, err, context.Canceled)
}

var errClosedPipe = errors.New("closed pipe")

// flakyWriter accepts writes until broken is set.
type flakyWriter struct {
	buf    bytes.Buffer
	broken bool
}

func (w *flakyWriter) Write(p []byte) (int, error) {
	if w.broken {
		return 0, errClosedPipe
	}
	return w.buf.Write(p)
}

// breakOnRead breaks the writer as soon as the first line is read.
type breakOnRead struct {
	r io.Reader
	w *flakyWriter
}

func (b *breakOnRead) Read(p []byte) (int, error) {
	b.w.broken = true
	return b.r.Read(p)
}

func TestRunReportsWriteError(t *testing.T) {
	w := &flakyWriter{}
	d := New(WriterNotifier(w), InitialPeople)
	in := &breakOnRead{r: strings.NewReader("Katherine\nJohnson\n23666\nMary\nJackson\n23681\n"), w: w}

	err := Run(context.Background(), d, in, w)
	require.ErrorIs(t, err, errClosedPipe)
	assert.Len(t, d.Entries(), 5, "Run must stop after the failed table write")
	assert.Contains(t, w.buf.String(), "German")
}
