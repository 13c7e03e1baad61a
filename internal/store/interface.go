package store

//go:generate mockgen -destination=mocks/mocks.go -package=mocks github.com/maloquacious/commdir/internal/store PeopleStore

import (
	"context"

	"github.com/maloquacious/commdir/internal/people"
)

// StoreState represents the initialization state of the datastore.
type StoreState int

const (
	StateMissing        StoreState = iota // File doesn't exist
	StateUninitialized                    // File exists but no people table
	StateSchemaMismatch                   // People table has the wrong columns
	StateReady                            // People table matches the schema
)

func (s StoreState) String() string {
	switch s {
	case StateMissing:
		return "missing"
	case StateUninitialized:
		return "uninitialized"
	case StateSchemaMismatch:
		return "mismatch"
	case StateReady:
		return "ready"
	}
	return "unknown"
}

// MarshalText lets the state appear by name in JSON.
func (s StoreState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// PeopleStore is what the HTTP layer needs from the datastore.
type PeopleStore interface {
	// ListPeople returns every person ordered by ascending id.
	ListPeople(ctx context.Context) ([]people.Person, error)

	// CreatePerson validates in, stores it and returns it with its new id.
	// Validation failures are *people.ValidationError; storage failures are *Fault.
	CreatePerson(ctx context.Context, in people.Input) (people.Person, error)

	// CountPeople returns the number of stored people.
	CountPeople(ctx context.Context) (int, error)

	// CheckState returns the current state of the datastore
	CheckState(ctx context.Context) (StoreState, error)

	// Ping checks the connection is usable
	Ping(ctx context.Context) error
}

// Store defines the commdir datastore contract.
// Implementations must be safe for concurrent use.
type Store interface {
	PeopleStore

	// Open opens the datastore connection
	Open() error

	// Close closes the datastore connection
	Close() error

	// EnsureSchema creates the people table, or drops and recreates it when
	// its columns differ from the schema. It reports whether rows were lost.
	EnsureSchema(ctx context.Context) (reset bool, err error)

	// SeedIfEmpty inserts the seed people when the table has no rows and
	// returns how many were inserted.
	SeedIfEmpty(ctx context.Context) (int, error)

	// Columns returns the column names of the people table as stored.
	Columns(ctx context.Context) ([]string, error)
}
