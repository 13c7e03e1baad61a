package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/blockloop/scan/v2"
	_ "modernc.org/sqlite"

	"github.com/maloquacious/commdir/internal/logger"
	"github.com/maloquacious/commdir/internal/people"
	"github.com/maloquacious/commdir/internal/store"
)

var errNotOpened = errors.New("database not opened")

// SQLiteStore implements the Store interface using modernc.org/sqlite.
type SQLiteStore struct {
	dbPath string
	db     *sql.DB
	log    logger.Logger
}

var _ store.Store = (*SQLiteStore)(nil)

// New creates a new SQLiteStore.
func New(dbPath string, log logger.Logger) *SQLiteStore {
	if log == nil {
		log = logger.Default
	}
	return &SQLiteStore{
		dbPath: dbPath,
		log:    log,
	}
}

// Open opens the SQLite database with safe defaults.
// A single connection is kept so writes are serialized in-process.
func (s *SQLiteStore) Open() error {
	if err := store.EnsureDir(s.dbPath); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", s.dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	// Apply safe defaults
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return fmt.Errorf("failed to set pragma %q: %w", pragma, err)
		}
	}

	s.db = db
	s.log.Debug("opened %s", s.dbPath)
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

// Ping checks the connection is usable.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	if s.db == nil {
		return newFault("ping", errNotOpened)
	}
	return newFault("ping", s.db.PingContext(ctx))
}

// EnsureSchema creates the people table when it is missing. When the table
// exists with a different column set it is dropped and recreated, losing
// every row; there is no column-level migration.
func (s *SQLiteStore) EnsureSchema(ctx context.Context) (bool, error) {
	if s.db == nil {
		return false, newFault("ensure schema", errNotOpened)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, newFault("begin schema transaction", err)
	}
	defer tx.Rollback()

	exists, err := tableExists(ctx, tx)
	if err != nil {
		return false, err
	}

	if !exists {
		if _, err := tx.ExecContext(ctx, createTableSQL); err != nil {
			return false, newFault("create people table", err)
		}
		if err := tx.Commit(); err != nil {
			return false, newFault("commit schema transaction", err)
		}
		s.log.Info("created people table in %s", s.dbPath)
		return false, nil
	}

	cols, err := tableColumns(ctx, tx)
	if err != nil {
		return false, err
	}
	if sameColumns(cols) {
		return false, nil
	}

	s.log.Warn("people table columns %v do not match schema, recreating (existing rows are dropped)", cols)
	if _, err := tx.ExecContext(ctx, dropTableSQL); err != nil {
		return false, newFault("drop people table", err)
	}
	if _, err := tx.ExecContext(ctx, createTableSQL); err != nil {
		return false, newFault("create people table", err)
	}
	if err := tx.Commit(); err != nil {
		return false, newFault("commit schema transaction", err)
	}
	return true, nil
}

// CheckState returns the current state of the datastore.
func (s *SQLiteStore) CheckState(ctx context.Context) (store.StoreState, error) {
	if s.db == nil {
		return store.StateMissing, newFault("check state", errNotOpened)
	}

	exists, err := tableExists(ctx, s.db)
	if err != nil {
		return store.StateUninitialized, err
	}
	if !exists {
		return store.StateUninitialized, nil
	}

	cols, err := tableColumns(ctx, s.db)
	if err != nil {
		return store.StateUninitialized, err
	}
	if !sameColumns(cols) {
		return store.StateSchemaMismatch, nil
	}
	return store.StateReady, nil
}

// Columns returns the column names of the people table in table order.
func (s *SQLiteStore) Columns(ctx context.Context) ([]string, error) {
	if s.db == nil {
		return nil, newFault("list columns", errNotOpened)
	}
	return tableColumns(ctx, s.db)
}

// CountPeople returns the number of stored people.
func (s *SQLiteStore) CountPeople(ctx context.Context) (int, error) {
	if s.db == nil {
		return 0, newFault("count people", errNotOpened)
	}
	var count int
	if err := s.db.QueryRowContext(ctx, countSQL).Scan(&count); err != nil {
		return 0, newFault("count people", err)
	}
	return count, nil
}

// ListPeople returns every person ordered by ascending id.
func (s *SQLiteStore) ListPeople(ctx context.Context) ([]people.Person, error) {
	if s.db == nil {
		return nil, newFault("list people", errNotOpened)
	}

	rows, err := s.db.QueryContext(ctx, selectSQL+" ORDER BY id")
	if err != nil {
		return nil, newFault("list people", err)
	}
	defer rows.Close()

	var stored []personRow
	if err := scan.RowsStrict(&stored, rows); err != nil {
		return nil, newFault("scan people", err)
	}

	list := make([]people.Person, 0, len(stored))
	for _, row := range stored {
		list = append(list, row.person())
	}
	return list, nil
}

// CreatePerson sanitizes and validates in, inserts it and reads the row
// back so the result is exactly what a later ListPeople returns.
func (s *SQLiteStore) CreatePerson(ctx context.Context, in people.Input) (people.Person, error) {
	p, err := people.NewPerson(in)
	if err != nil {
		return people.Person{}, err
	}
	if s.db == nil {
		return people.Person{}, newFault("insert person", errNotOpened)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return people.Person{}, newFault("begin insert transaction", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, insertSQL, insertArgs(&p)...)
	if err != nil {
		return people.Person{}, newFault("insert person", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return people.Person{}, newFault("read person id", err)
	}

	rows, err := tx.QueryContext(ctx, selectSQL+" WHERE id = ?", id)
	if err != nil {
		return people.Person{}, newFault("read back person", err)
	}
	var row personRow
	err = scan.RowStrict(&row, rows)
	rows.Close()
	if err != nil {
		return people.Person{}, newFault("scan person", err)
	}

	if err := tx.Commit(); err != nil {
		return people.Person{}, newFault("commit insert transaction", err)
	}

	s.log.Debug("created person %d", id)
	return row.person(), nil
}

// querier is satisfied by *sql.DB and *sql.Tx.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func tableExists(ctx context.Context, q querier) (bool, error) {
	var count int
	if err := q.QueryRowContext(ctx, tableExistsSQL).Scan(&count); err != nil {
		return false, newFault("check people table", err)
	}
	return count > 0, nil
}

func tableColumns(ctx context.Context, q querier) ([]string, error) {
	rows, err := q.QueryContext(ctx, tableInfoSQL)
	if err != nil {
		return nil, newFault("read people columns", err)
	}
	defer rows.Close()

	var infos []tableInfo
	if err := scan.RowsStrict(&infos, rows); err != nil {
		return nil, newFault("scan people columns", err)
	}

	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Name
	}
	return names, nil
}

func newFault(op string, err error) error {
	return store.NewFault(op, err)
}
