package main

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maloquacious/commdir/internal/store"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	a := &app{v: viper.New()}
	cmd := a.rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, version.String()+"\n", out)
}

func TestDBVerifyMissing(t *testing.T) {
	db := filepath.Join(t.TempDir(), "people.db")

	out, err := execute(t, "", "db", "verify", "--db", db)
	require.ErrorIs(t, err, errNotReady)

	var report map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "missing", report["state"])

	_, statErr := os.Stat(db)
	assert.True(t, os.IsNotExist(statErr), "verify must not create the database")
}

func TestDBCreateThenVerify(t *testing.T) {
	db := filepath.Join(t.TempDir(), "data", "people.db")

	_, err := execute(t, "", "db", "create", "--db", db)
	require.NoError(t, err)

	out, err := execute(t, "", "db", "verify", "--db", db)
	require.NoError(t, err)

	var report struct {
		State   string   `json:"state"`
		Columns []string `json:"columns"`
		People  int      `json:"people"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "ready", report.State)
	assert.Equal(t, 3, report.People)
	assert.Contains(t, report.Columns, "first_name")
	assert.Contains(t, report.Columns, "dependents")

	_, err = execute(t, "", "db", "create", "--db", db)
	assert.ErrorContains(t, err, "already exists")
}

func TestDBCreateNoSeed(t *testing.T) {
	db := filepath.Join(t.TempDir(), "people.db")

	_, err := execute(t, "", "db", "create", "--no-seed", "--db", db)
	require.NoError(t, err)

	out, err := execute(t, "", "db", "verify", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, `"people": 0`)
}

func TestDBUpgradeResetsMismatch(t *testing.T) {
	db := filepath.Join(t.TempDir(), "people.db")

	_, err := execute(t, "", "db", "upgrade", "--db", db)
	require.ErrorContains(t, err, "does not exist")

	conn, err := sql.Open("sqlite", db)
	require.NoError(t, err)
	_, err = conn.Exec(`CREATE TABLE people (id INTEGER PRIMARY KEY, first_name TEXT, last_name TEXT, zip_code TEXT)`)
	require.NoError(t, err)
	require.NoError(t, conn.Close())

	out, err := execute(t, "", "db", "verify", "--db", db)
	require.ErrorIs(t, err, errNotReady)
	assert.Contains(t, out, store.StateSchemaMismatch.String())

	_, err = execute(t, "", "db", "upgrade", "--db", db)
	require.NoError(t, err)

	_, err = execute(t, "", "db", "verify", "--db", db)
	require.NoError(t, err)
}

func TestPanel(t *testing.T) {
	out, err := execute(t, "Katherine\nJohnson\n23666\n", "panel")
	require.NoError(t, err)
	assert.Contains(t, out, "German")
	assert.Contains(t, out, "Katherine")
	assert.Contains(t, out, "[SUCCESS] Saved to directory.")
}

func TestInvalidConfig(t *testing.T) {
	_, err := execute(t, "", "version", "--log-level", "loud")
	assert.ErrorContains(t, err, "unknown log level")

	cfgFile := filepath.Join(t.TempDir(), "commdir.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("port: 70000\n"), 0o644))
	_, err = execute(t, "", "serve", "--config", cfgFile)
	assert.ErrorContains(t, err, "port 70000 out of range")
}
