// Package panel is the in-memory form and table behind the directory panel.
//
// A Directory holds three text inputs and an ordered list of entries. Save
// validates the inputs, appends an entry and clears the form. The table is a
// projection of the entries and is pushed to watchers whenever the list
// changes. Nothing here reads from or writes to the people store.
package panel

import (
	"slices"
	"strings"
	"sync"

	"github.com/maloquacious/commdir/internal/people"
)

// Notice texts shown after Save.
const (
	MsgMissingFields = "Please fill out all fields."
	MsgInvalidZip    = "ZIP should be numeric (3–10 digits)."
	MsgSaved         = "Saved to directory."
)

// ZIP length bounds for panel entries. Leading zeros are kept.
const (
	MinZipLen = 3
	MaxZipLen = 10
)

// Entry is one row of the directory.
type Entry struct {
	FirstName string
	LastName  string
	ZIP       string
}

// InitialPeople is the list a new panel starts with.
var InitialPeople = []Entry{
	{FirstName: "Ada", LastName: "Lovelace", ZIP: "20500"},
	{FirstName: "Alan", LastName: "Turing", ZIP: "02142"},
	{FirstName: "Grace", LastName: "Hopper", ZIP: "10001"},
	{FirstName: "German", LastName: "Sheperd", ZIP: "43147"},
}

type Level int

const (
	LevelSuccess Level = iota
	LevelWarning
)

func (l Level) String() string {
	switch l {
	case LevelSuccess:
		return "success"
	case LevelWarning:
		return "warning"
	}
	return "unknown"
}

// Notifier shows a transient message to the user.
type Notifier interface {
	Notify(level Level, msg string)
}

type NotifierFunc func(level Level, msg string)

func (f NotifierFunc) Notify(level Level, msg string) { f(level, msg) }

// Directory is safe for concurrent use. Watchers and the notifier are
// called without the lock held.
type Directory struct {
	mu       sync.Mutex
	first    string
	last     string
	zip      string
	entries  []Entry
	notifier Notifier
	watchers []func(Table)
}

// New returns a Directory holding a copy of initial.
// A nil notifier discards notices.
func New(n Notifier, initial []Entry) *Directory {
	if n == nil {
		n = NotifierFunc(func(Level, string) {})
	}
	return &Directory{
		entries:  append([]Entry(nil), initial...),
		notifier: n,
	}
}

func (d *Directory) SetFirstName(v string) {
	d.mu.Lock()
	d.first = v
	d.mu.Unlock()
}

func (d *Directory) SetLastName(v string) {
	d.mu.Lock()
	d.last = v
	d.mu.Unlock()
}

func (d *Directory) SetZipCode(v string) {
	d.mu.Lock()
	d.zip = v
	d.mu.Unlock()
}

// Inputs returns the current form values as typed.
func (d *Directory) Inputs() (first, last, zip string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.first, d.last, d.zip
}

// Entries returns a copy of the list.
func (d *Directory) Entries() []Entry {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]Entry(nil), d.entries...)
}

func (d *Directory) Table() Table {
	return Project(d.Entries())
}

// Watch registers fn to receive the table after every change to the list.
func (d *Directory) Watch(fn func(Table)) {
	d.mu.Lock()
	d.watchers = append(d.watchers, fn)
	d.mu.Unlock()
}

// Save validates the form and, when it passes, appends an entry and clears
// the inputs. It reports whether an entry was added. On failure the inputs
// and the list are left alone.
func (d *Directory) Save() bool {
	d.mu.Lock()
	e := Entry{
		FirstName: strings.TrimSpace(d.first),
		LastName:  strings.TrimSpace(d.last),
		ZIP:       strings.TrimSpace(d.zip),
	}
	if msg := validate(e); msg != "" {
		d.mu.Unlock()
		d.notifier.Notify(LevelWarning, msg)
		return false
	}
	d.entries = append(d.entries, e)
	d.first, d.last, d.zip = "", "", ""
	table := Project(d.entries)
	watchers := slices.Clone(d.watchers)
	d.mu.Unlock()

	for _, fn := range watchers {
		fn(table)
	}
	d.notifier.Notify(LevelSuccess, MsgSaved)
	return true
}

func validate(e Entry) string {
	if e.FirstName == "" || e.LastName == "" || e.ZIP == "" {
		return MsgMissingFields
	}
	if !ValidZip(e.ZIP) {
		return MsgInvalidZip
	}
	return ""
}

// ValidZip reports whether s is all ASCII digits and MinZipLen to MaxZipLen long.
func ValidZip(s string) bool {
	return len(s) >= MinZipLen && len(s) <= MaxZipLen && people.IsDigits(s)
}
