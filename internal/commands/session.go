package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tally-finance/tally/internal/categories"
	"github.com/tally-finance/tally/internal/config"
	"github.com/tally-finance/tally/internal/finance"
	"github.com/tally-finance/tally/internal/kv"
	"github.com/tally-finance/tally/internal/logging"
)

// EnvHome names the environment variable that overrides the data directory.
const EnvHome = "TALLY_HOME"

const defaultHomeDir = ".tally"

// session holds everything a command needs: config, logger and the open
// finance store.
type session struct {
	home   string
	cfg    *config.Config
	log    *logrus.Logger
	store  *finance.Store
	closer io.Closer
	now    func() time.Time
}

// resolveHome picks the data directory: flag, then $TALLY_HOME, then ~/.tally.
func resolveHome(flag string) (string, error) {
	dir := flag
	if dir == "" {
		dir = os.Getenv(EnvHome)
	}
	if dir == "" {
		userHome, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("finding home directory: %w", err)
		}
		dir = filepath.Join(userHome, defaultHomeDir)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}
	return abs, nil
}

// loadConfig reads tally.yaml from home. A missing file yields the defaults.
func loadConfig(home string) (*config.Config, error) {
	cfg, err := config.Load(filepath.Join(home, config.FileName))
	if errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openSession loads config, builds the logger and opens the store.
func openSession(cmd *cobra.Command, homeFlag string) (*session, error) {
	home, err := resolveHome(homeFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := loadConfig(home)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	log := logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())

	limit, err := cfg.DefaultLimit()
	if err != nil {
		return nil, err
	}

	dataDir := filepath.Join(home, cfg.Storage.Path)
	store, closer, err := kv.Open(cfg.Storage.Backend, dataDir)
	if err != nil {
		return nil, fmt.Errorf("opening storage: %w", err)
	}
	log.WithFields(logrus.Fields{
		logging.FieldBackend: cfg.Storage.Backend,
		logging.FieldPath:    dataDir,
	}).Debug("storage opened")

	return &session{
		home:   home,
		cfg:    cfg,
		log:    log,
		closer: closer,
		now:    time.Now,
		store: finance.Open(store,
			finance.WithLogger(log),
			finance.WithDefaultBudgets(cfg.Categories.Expense, limit),
		),
	}, nil
}

// Close releases the storage backend.
func (s *session) Close() error {
	if err := s.closer.Close(); err != nil {
		return fmt.Errorf("closing storage: %w", err)
	}
	return nil
}

func (s *session) vocabulary() categories.Vocabulary {
	return s.cfg.Vocabulary()
}

// withSession opens a session, runs fn and closes the session.
func withSession(cmd *cobra.Command, open opener, fn func(s *session) error) (err error) {
	s, err := open(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return fn(s)
}
