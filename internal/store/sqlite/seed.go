package sqlite

import (
	"context"
	"fmt"

	"github.com/maloquacious/commdir/internal/people"
)

// seedPeople are inserted once, when the people table is first found empty.
// Flags follow people.Attributes order.
var seedPeople = []people.Person{
	seed("Ada", "Lovelace", "1815-12-10", "12 St James's Square, London", "20500",
		0, 0, 0, 0, 0, 1, 1, 1, 0, 1),
	seed("Alan", "Turing", "1912-06-23", "Kings Parade, Cambridge", "02142",
		0, 0, 0, 0, 1, 1, 1, 1, 1, 0),
	seed("Grace", "Hopper", "1906-12-09", "11 Wall Street, New York", "10001",
		0, 0, 0, 0, 0, 1, 1, 1, 1, 0),
}

func seed(first, last, dob, address, zip string, flags ...int) people.Person {
	p := people.Person{
		FirstName:   first,
		LastName:    last,
		DateOfBirth: dob,
		Address:     address,
		Zip:         &zip,
	}
	for i, attr := range people.Attributes {
		*attr.Field(&p) = people.Of(flags[i] != 0)
	}
	return p
}

// SeedIfEmpty inserts seedPeople when the people table has no rows.
func (s *SQLiteStore) SeedIfEmpty(ctx context.Context) (int, error) {
	count, err := s.CountPeople(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, newFault("begin seed transaction", err)
	}
	defer tx.Rollback()

	for i := range seedPeople {
		p := seedPeople[i]
		if _, err := tx.ExecContext(ctx, insertSQL, insertArgs(&p)...); err != nil {
			return 0, newFault(fmt.Sprintf("seed %s %s", p.FirstName, p.LastName), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, newFault("commit seed transaction", err)
	}

	s.log.Info("seeded %d people into %s", len(seedPeople), s.dbPath)
	return len(seedPeople), nil
}
