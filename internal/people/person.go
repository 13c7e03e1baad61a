// Package people defines the directory entry and the rules for turning
// loosely typed input into one.
package people

// Person is one directory entry.
type Person struct {
	ID          int64   `json:"id"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	DateOfBirth string  `json:"date_of_birth"`
	Address     string  `json:"address"`
	Zip         *string `json:"zip"`

	CriminalHistory      Tristate `json:"criminal_history"`
	AddictionHistory     Tristate `json:"addiction_history"`
	AddictionCurrent     Tristate `json:"addiction_current"`
	Disability           Tristate `json:"disability"`
	MentalIllnessHistory Tristate `json:"mental_illness_history"`
	HighSchoolEd         Tristate `json:"high_school_ed"`
	WorkHistory          Tristate `json:"work_history"`
	HigherEd             Tristate `json:"higher_ed"`
	Veteran              Tristate `json:"veteran"`
	Dependents           Tristate `json:"dependents"`
}

// Attribute names a tri-state field and locates it on a Person.
type Attribute struct {
	Name  string
	Field func(p *Person) *Tristate
}

// Attributes lists the tri-state fields in column order.
var Attributes = []Attribute{
	{"criminal_history", func(p *Person) *Tristate { return &p.CriminalHistory }},
	{"addiction_history", func(p *Person) *Tristate { return &p.AddictionHistory }},
	{"addiction_current", func(p *Person) *Tristate { return &p.AddictionCurrent }},
	{"disability", func(p *Person) *Tristate { return &p.Disability }},
	{"mental_illness_history", func(p *Person) *Tristate { return &p.MentalIllnessHistory }},
	{"high_school_ed", func(p *Person) *Tristate { return &p.HighSchoolEd }},
	{"work_history", func(p *Person) *Tristate { return &p.WorkHistory }},
	{"higher_ed", func(p *Person) *Tristate { return &p.HigherEd }},
	{"veteran", func(p *Person) *Tristate { return &p.Veteran }},
	{"dependents", func(p *Person) *Tristate { return &p.Dependents }},
}

// RequiredFields must be non-empty after trimming.
var RequiredFields = []string{"first_name", "last_name"}

// ZipCode returns the ZIP or "" when it is not set.
func (p Person) ZipCode() string {
	if p.Zip == nil {
		return ""
	}
	return *p.Zip
}
