package sqlite

import (
	"slices"
	"strings"

	"github.com/maloquacious/commdir/internal/people"
)

const peopleTable = "people"

// column describes one column of the people table. The same ordered list
// drives CREATE TABLE, INSERT, SELECT and the schema check.
type column struct {
	name  string
	decl  string
	value func(p *people.Person) any // nil when the store assigns the value
}

var peopleColumns = buildColumns()

func buildColumns() []column {
	cols := []column{
		{name: "id", decl: "INTEGER PRIMARY KEY AUTOINCREMENT"},
		{name: "first_name", decl: "TEXT NOT NULL", value: func(p *people.Person) any { return p.FirstName }},
		{name: "last_name", decl: "TEXT NOT NULL", value: func(p *people.Person) any { return p.LastName }},
		{name: "date_of_birth", decl: "TEXT", value: func(p *people.Person) any { return p.DateOfBirth }},
		{name: "address", decl: "TEXT", value: func(p *people.Person) any { return p.Address }},
		{name: "zip", decl: "TEXT", value: func(p *people.Person) any {
			if p.Zip == nil {
				return nil
			}
			return *p.Zip
		}},
	}
	for _, attr := range people.Attributes {
		cols = append(cols, column{
			name:  attr.Name,
			decl:  "INTEGER",
			value: func(p *people.Person) any { return attr.Field(p).Stored() },
		})
	}
	return cols
}

const tableExistsSQL = `SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='people'`

const dropTableSQL = `DROP TABLE IF EXISTS people`

const tableInfoSQL = `PRAGMA table_info(people)`

const countSQL = `SELECT COUNT(*) FROM people`

var (
	createTableSQL = buildCreateTable(peopleColumns)
	insertSQL      = buildInsert(peopleColumns)
	selectSQL      = buildSelect(peopleColumns)
)

func buildCreateTable(cols []column) string {
	defs := make([]string, len(cols))
	for i, c := range cols {
		defs[i] = "    " + c.name + " " + c.decl
	}
	return "CREATE TABLE " + peopleTable + " (\n" + strings.Join(defs, ",\n") + "\n)"
}

func buildInsert(cols []column) string {
	var names, marks []string
	for _, c := range cols {
		if c.value == nil {
			continue
		}
		names = append(names, c.name)
		marks = append(marks, "?")
	}
	return "INSERT INTO " + peopleTable + " (" + strings.Join(names, ", ") + ") VALUES (" + strings.Join(marks, ", ") + ")"
}

func buildSelect(cols []column) string {
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.name
	}
	return "SELECT " + strings.Join(names, ", ") + " FROM " + peopleTable
}

// insertArgs returns the values for insertSQL in column order.
func insertArgs(p *people.Person) []any {
	args := make([]any, 0, len(peopleColumns))
	for _, c := range peopleColumns {
		if c.value != nil {
			args = append(args, c.value(p))
		}
	}
	return args
}

// expectedColumns returns the schema's column names, sorted.
func expectedColumns() []string {
	names := make([]string, len(peopleColumns))
	for i, c := range peopleColumns {
		names[i] = c.name
	}
	slices.Sort(names)
	return names
}

// sameColumns compares column sets, ignoring order.
func sameColumns(actual []string) bool {
	got := slices.Clone(actual)
	slices.Sort(got)
	return slices.Equal(got, expectedColumns())
}

// tableInfo is one row of PRAGMA table_info.
type tableInfo struct {
	CID     int     `db:"cid"`
	Name    string  `db:"name"`
	Type    string  `db:"type"`
	NotNull int     `db:"notnull"`
	Default *string `db:"dflt_value"`
	PK      int     `db:"pk"`
}

// personRow is a people row as stored. Tri-state columns are declared
// INTEGER but scanned as driver values since SQLite does not enforce the type.
type personRow struct {
	ID                   int64   `db:"id"`
	FirstName            string  `db:"first_name"`
	LastName             string  `db:"last_name"`
	DateOfBirth          *string `db:"date_of_birth"`
	Address              *string `db:"address"`
	Zip                  *string `db:"zip"`
	CriminalHistory      any     `db:"criminal_history"`
	AddictionHistory     any     `db:"addiction_history"`
	AddictionCurrent     any     `db:"addiction_current"`
	Disability           any     `db:"disability"`
	MentalIllnessHistory any     `db:"mental_illness_history"`
	HighSchoolEd         any     `db:"high_school_ed"`
	WorkHistory          any     `db:"work_history"`
	HigherEd             any     `db:"higher_ed"`
	Veteran              any     `db:"veteran"`
	Dependents           any     `db:"dependents"`
}

func (r personRow) person() people.Person {
	return people.Person{
		ID:                   r.ID,
		FirstName:            r.FirstName,
		LastName:             r.LastName,
		DateOfBirth:          deref(r.DateOfBirth),
		Address:              deref(r.Address),
		Zip:                  r.Zip,
		CriminalHistory:      people.FromStored(r.CriminalHistory),
		AddictionHistory:     people.FromStored(r.AddictionHistory),
		AddictionCurrent:     people.FromStored(r.AddictionCurrent),
		Disability:           people.FromStored(r.Disability),
		MentalIllnessHistory: people.FromStored(r.MentalIllnessHistory),
		HighSchoolEd:         people.FromStored(r.HighSchoolEd),
		WorkHistory:          people.FromStored(r.WorkHistory),
		HigherEd:             people.FromStored(r.HigherEd),
		Veteran:              people.FromStored(r.Veteran),
		Dependents:           people.FromStored(r.Dependents),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
