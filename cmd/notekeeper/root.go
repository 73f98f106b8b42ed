package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	notekeeper "github.com/Workflow-Manager-admin/note-keeper"
	"github.com/Workflow-Manager-admin/note-keeper/internal/editor"
	"github.com/Workflow-Manager-admin/note-keeper/internal/platform"
)

var (
	apiFlag     string
	timeoutFlag time.Duration
	configFlag  string
	verbose     bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "notekeeper",
	Short: "A terminal client for a minimal notes backend",
	Long: `Notekeeper is the sidebar-and-editor notes page, brought to the terminal.
It talks to a small REST backend, keeps only a transient cache of the list,
and refetches after every write so the backend stays the single source of truth.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiFlag, "api", "", "Backend base URL (overrides env and config file)")
	rootCmd.PersistentFlags().DurationVar(&timeoutFlag, "timeout", 0, "Per-request timeout (e.g. 5s)")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to a notekeeper.yaml (discovered when empty)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}

// loadFileConfig reads the nearest notekeeper.yaml. A missing file is not an
// error; the zero config stands in.
func loadFileConfig(log *slog.Logger) platform.FileConfig {
	path := configFlag
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return platform.FileConfig{}
		}
		path, err = platform.FindConfig(wd)
		if err != nil {
			return platform.FileConfig{}
		}
	}

	cfg, err := platform.LoadConfig(path)
	if err != nil {
		log.Warn("config file unreadable", "path", path, "error", err)
		return platform.FileConfig{}
	}

	log.Debug("config loaded", "path", path)
	return cfg
}

// apiSettings resolves the backend URL and timeout.
// Precedence: flag, then environment, then config file, then default.
func apiSettings() (string, time.Duration, platform.FileConfig) {
	log := slog.Default()
	cfg := loadFileConfig(log)

	base := cfg.API.BaseURL
	if base == "" {
		base = platform.DefaultBaseURL
	}
	base = platform.OrDefault(log, "NOTEKEEPER_API_URL", base)
	if apiFlag != "" {
		base = apiFlag
	}

	timeoutDef := cfg.API.Timeout
	if timeoutDef == "" {
		timeoutDef = "0s"
	}
	timeout := platform.DurationDefault(log, "NOTEKEEPER_TIMEOUT", timeoutDef)
	if timeoutFlag > 0 {
		timeout = timeoutFlag
	}

	return base, timeout, cfg
}

// openSession connects to the backend and primes the list cache.
func openSession(ctx context.Context) *notekeeper.Session {
	base, timeout, cfg := apiSettings()

	opts := []notekeeper.Option{
		notekeeper.WithLogger(slog.Default()),
	}
	if timeout > 0 {
		opts = append(opts, notekeeper.WithTimeout(timeout))
	}
	if cfg.Poll != "" {
		if d, err := time.ParseDuration(cfg.Poll); err == nil {
			opts = append(opts, notekeeper.WithPollInterval(d))
		} else {
			slog.Default().Warn("invalid poll interval in config", "value", cfg.Poll)
		}
	}

	sess, err := notekeeper.Open(base, opts...)
	if err != nil {
		fatal("Failed to connect to backend", err)
	}
	if err := sess.Refresh(ctx); err != nil {
		fatal("Failed to fetch notes", err)
	}

	return sess
}

// editorCommand picks the editor, letting the config file override $EDITOR.
func editorCommand(cfg platform.FileConfig) string {
	if cfg.Editor != "" {
		return cfg.Editor
	}
	return editor.Command()
}

func parseID(arg string) int64 {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		fatal(fmt.Sprintf("Invalid note ID %q", arg), err)
	}
	return id
}
