package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maloquacious/commdir/internal/store"
	"github.com/maloquacious/commdir/internal/store/sqlite"
)

func (a *app) dbCmd() *cobra.Command {
	dbCmd := &cobra.Command{
		Use:   "db",
		Short: "Database management commands",
	}

	var noSeed bool
	dbCreateCmd := &cobra.Command{
		Use:   "create",
		Short: "Create and initialize the datastore",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDBCreate(cmd.Context(), !noSeed)
		},
	}
	dbCreateCmd.Flags().BoolVar(&noSeed, "no-seed", false, "leave the people table empty")

	dbUpgradeCmd := &cobra.Command{
		Use:   "upgrade",
		Short: "Bring the people table to the current column set (drops rows on mismatch)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDBUpgrade(cmd.Context())
		},
	}
	dbVerifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify the schema and print a JSON summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDBVerify(cmd)
		},
	}

	dbCmd.AddCommand(dbCreateCmd, dbUpgradeCmd, dbVerifyCmd)
	return dbCmd
}

func (a *app) runDBCreate(ctx context.Context, seed bool) error {
	exists, err := store.CheckExists(a.cfg.DBPath)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("database %s already exists; use db upgrade", a.cfg.DBPath)
	}

	st := sqlite.New(a.cfg.DBPath, a.log)
	if err := st.Open(); err != nil {
		return err
	}
	defer st.Close()

	if _, err := st.EnsureSchema(ctx); err != nil {
		return err
	}
	if seed {
		if _, err := st.SeedIfEmpty(ctx); err != nil {
			return err
		}
	}
	a.log.Info("db create: initialized %s", a.cfg.DBPath)
	return nil
}

func (a *app) runDBUpgrade(ctx context.Context) error {
	exists, err := store.CheckExists(a.cfg.DBPath)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("database %s does not exist; use db create", a.cfg.DBPath)
	}

	st := sqlite.New(a.cfg.DBPath, a.log)
	if err := st.Open(); err != nil {
		return err
	}
	defer st.Close()

	reset, err := st.EnsureSchema(ctx)
	if err != nil {
		return err
	}
	if reset {
		a.log.Warn("db upgrade: people table recreated; existing rows were dropped")
	} else {
		a.log.Info("db upgrade: schema is current")
	}
	return nil
}

type verifyReport struct {
	Path    string           `json:"path"`
	State   store.StoreState `json:"state"`
	Columns []string         `json:"columns,omitempty"`
	People  *int             `json:"people,omitempty"`
}

var errNotReady = errors.New("datastore is not ready")

// runDBVerify never creates the database file.
func (a *app) runDBVerify(cmd *cobra.Command) error {
	ctx := cmd.Context()
	report := verifyReport{Path: a.cfg.DBPath, State: store.StateMissing}

	exists, err := store.CheckExists(a.cfg.DBPath)
	if err != nil {
		return err
	}
	if exists {
		st := sqlite.New(a.cfg.DBPath, a.log)
		if err := st.Open(); err != nil {
			return err
		}
		defer st.Close()

		if report.State, err = st.CheckState(ctx); err != nil {
			return err
		}
		if report.State != store.StateUninitialized {
			if report.Columns, err = st.Columns(ctx); err != nil {
				return err
			}
		}
		if report.State == store.StateReady {
			n, err := st.CountPeople(ctx)
			if err != nil {
				return err
			}
			report.People = &n
		}
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return err
	}
	if report.State != store.StateReady {
		return fmt.Errorf("%w: %s", errNotReady, report.State)
	}
	return nil
}
