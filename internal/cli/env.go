package cli

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/yume-app/yume/internal/config"
	"github.com/yume-app/yume/internal/log"
	"github.com/yume-app/yume/internal/mantra"
	"github.com/yume-app/yume/internal/prefs"
)

const prefsFile = "prefs.db"

// env is what every command needs: the data directory, its configuration,
// the preference store, and the event reporter.
type env struct {
	dir      string
	cfg      *config.Config
	store    *prefs.SQLiteStore
	reporter log.Reporter
	stderr   io.Writer
}

func resolveDir() (string, error) {
	if dataDir != "" {
		return dataDir, nil
	}
	return config.DefaultDir()
}

// openEnv prepares the data directory. A config file that cannot be used
// and an event log that cannot be opened are warnings, not failures.
func openEnv(cmd *cobra.Command) (*env, error) {
	dir, err := resolveDir()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	e := &env{dir: dir, reporter: log.Discard, stderr: cmd.ErrOrStderr()}

	cfg, err := config.Load(dir)
	e.cfg = cfg
	if err != nil {
		e.warn(fmt.Errorf("%w; using defaults", err))
	}

	store, err := prefs.Open(filepath.Join(dir, prefsFile))
	if err != nil {
		return nil, fmt.Errorf("opening preferences: %w", err)
	}
	e.store = store

	if cfg.Events.Enabled {
		logger, err := log.NewLogger(dir)
		if err != nil {
			e.warn(err)
		} else {
			e.reporter = logger
		}
	}
	return e, nil
}

func (e *env) book() *mantra.Book {
	return mantra.Load(e.store, mantra.All(), rand.New(rand.NewSource(time.Now().UnixNano())))
}

func (e *env) warn(err error) {
	if err != nil {
		fmt.Fprintf(e.stderr, "Warning: %v\n", err)
	}
}

// Close releases the preference store.
func (e *env) Close() error {
	return e.store.Close()
}
