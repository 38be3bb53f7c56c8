package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Storage.Backend = "sqlite"
	cfg.Budgets.DefaultLimit = "350.50"
	cfg.Categories.Expense = append(cfg.Categories.Expense, "Rent")
	cfg.Display.Currency = "$"

	path := filepath.Join(t.TempDir(), FileName)
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "sqlite", got.Storage.Backend)
	assert.Equal(t, "data", got.Storage.Path)
	assert.Equal(t, "350.50", got.Budgets.DefaultLimit)
	assert.Equal(t, cfg.Categories.Expense, got.Categories.Expense)
	assert.Equal(t, cfg.Categories.Income, got.Categories.Income)
	assert.Equal(t, "$", got.Display.Currency)
	assert.Equal(t, "info", got.Log.Level)
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "json", cfg.Storage.Backend)
	assert.Equal(t, "data", cfg.Storage.Path)
	assert.Equal(t, "200", cfg.Budgets.DefaultLimit)
	assert.Equal(t, []string{"Food", "Transport", "Books", "Entertainment", "Shopping", "Utilities", "Other"}, cfg.Categories.Expense)
	assert.Equal(t, []string{"Job", "Allowance", "Scholarship", "Other"}, cfg.Categories.Income)
	assert.Equal(t, "text", cfg.Log.Format)
	require.NoError(t, cfg.Validate())

	limit, err := cfg.DefaultLimit()
	require.NoError(t, err)
	assert.Equal(t, "200", limit.String())
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("storage:\n  backend: sqlite\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	assert.Equal(t, "200", cfg.Budgets.DefaultLimit)
	assert.NotEmpty(t, cfg.Categories.Expense)
}

func TestYAMLFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	err := Save(path, Default())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "backend: json")
	assert.Contains(t, contents, "default_limit:")
	assert.Contains(t, contents, "- Food")
	assert.Contains(t, contents, "format: text")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Storage.Backend = "postgres"
	cfg.Budgets.DefaultLimit = "lots"
	cfg.Categories.Income = nil
	cfg.Log.Format = "xml"

	err := cfg.Validate()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "storage backend")
	assert.Contains(t, msg, "default_limit")
	assert.Contains(t, msg, "categories.income")
	assert.Contains(t, msg, "log format")

	cfg = Default()
	cfg.Budgets.DefaultLimit = "-1"
	assert.Error(t, cfg.Validate())
}
