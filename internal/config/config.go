package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/tally-finance/tally/internal/categories"
)

// FileName is the config file name inside the data directory.
const FileName = "tally.yaml"

// Config represents the top-level tally.yaml configuration.
type Config struct {
	Storage    StorageConfig    `yaml:"storage"`
	Budgets    BudgetsConfig    `yaml:"budgets"`
	Categories CategoriesConfig `yaml:"categories"`
	Display    DisplayConfig    `yaml:"display"`
	Log        LogConfig        `yaml:"log"`
}

// StorageConfig selects the persistence backend.
type StorageConfig struct {
	Backend string `yaml:"backend"` // json, sqlite or memory
	Path    string `yaml:"path"`    // relative to the data directory
}

// BudgetsConfig controls the budgets seeded on first run.
type BudgetsConfig struct {
	DefaultLimit string `yaml:"default_limit"`
}

// CategoriesConfig is the category vocabulary offered to the user.
type CategoriesConfig struct {
	Expense []string `yaml:"expense"`
	Income  []string `yaml:"income"`
}

// DisplayConfig affects output formatting only.
type DisplayConfig struct {
	Currency string `yaml:"currency"`
}

// LogConfig controls the logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text or json
}

// Load reads a tally.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new data directory.
func Default() *Config {
	vocab := categories.Default()
	return &Config{
		Storage: StorageConfig{
			Backend: "json",
			Path:    "data",
		},
		Budgets: BudgetsConfig{
			DefaultLimit: "200",
		},
		Categories: CategoriesConfig{
			Expense: vocab.Expense,
			Income:  vocab.Income,
		},
		Display: DisplayConfig{
			Currency: "₹",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// DefaultLimit parses the seeded budget limit.
func (c *Config) DefaultLimit() (decimal.Decimal, error) {
	limit, err := decimal.NewFromString(c.Budgets.DefaultLimit)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing budgets.default_limit %q: %w", c.Budgets.DefaultLimit, err)
	}
	return limit, nil
}

// Vocabulary returns the configured categories.
func (c *Config) Vocabulary() categories.Vocabulary {
	return categories.Vocabulary{
		Expense: c.Categories.Expense,
		Income:  c.Categories.Income,
	}
}

// Validate reports every problem with the configuration at once.
func (c *Config) Validate() error {
	var problems []string

	switch c.Storage.Backend {
	case "json", "sqlite", "memory":
	default:
		problems = append(problems, fmt.Sprintf("invalid storage backend %q: must be one of json, sqlite, memory", c.Storage.Backend))
	}

	if limit, err := c.DefaultLimit(); err != nil {
		problems = append(problems, err.Error())
	} else if limit.IsNegative() {
		problems = append(problems, "budgets.default_limit must not be negative")
	}

	if len(c.Categories.Expense) == 0 {
		problems = append(problems, "categories.expense must not be empty")
	}
	if len(c.Categories.Income) == 0 {
		problems = append(problems, "categories.income must not be empty")
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		problems = append(problems, fmt.Sprintf("invalid log format %q: must be text or json", c.Log.Format))
	}

	if len(problems) > 0 {
		return errors.New("invalid config: " + strings.Join(problems, "; "))
	}
	return nil
}
