package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/abhisek/casefile/internal/config"
	"github.com/abhisek/casefile/internal/content"
	"github.com/abhisek/casefile/internal/logging"
	"github.com/abhisek/casefile/internal/store"
)

var rootCmd = &cobra.Command{
	Use:          "casefile",
	Short:        "Detective-themed robotics quiz",
	Long:         "Casefile is a terminal quiz game: study, take graded tests and solve story cases with your detective partner.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CASEFILE_DB)")
	rootCmd.PersistentFlags().String("content", "", "Path to a catalog JSON file (overrides CASEFILE_CONTENT)")
	rootCmd.PersistentFlags().String("lang", "", "Display language: en or vi (overrides CASEFILE_LANG)")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(gradeCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the environment and applies flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if v, _ := cmd.Flags().GetString("db"); v != "" {
		cfg.DB = v
	}
	if v, _ := cmd.Flags().GetString("content"); v != "" {
		cfg.Content = v
	}
	if v, _ := cmd.Flags().GetString("lang"); v != "" {
		cfg.Lang = v
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

// resolveDBPath returns the configured database path, falling back to the
// default data dir.
func resolveDBPath(cfg *config.Config) (string, error) {
	if cfg.DB != "" {
		return cfg.DB, store.EnsureDir(cfg.DB)
	}
	return store.DefaultDBPath()
}

// openStore resolves the database path and opens it.
func openStore(cfg *config.Config) (*store.Store, string, error) {
	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, "", fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, "", fmt.Errorf("open store: %w", err)
	}
	return st, dbPath, nil
}

// newLogger builds the logger. Interactive runs default to a log file next
// to the database; other commands log to stderr.
func newLogger(cfg *config.Config, dbPath string, interactive bool) (zerolog.Logger, func(), error) {
	file := cfg.LogFile
	if file == "" {
		file = logging.Stderr
		if interactive {
			file = filepath.Join(filepath.Dir(dbPath), "casefile.log")
		}
	}
	logger, closer, err := logging.New(logging.Options{File: file, Level: cfg.LogLevel})
	if err != nil {
		return zerolog.Nop(), func() {}, err
	}
	return logger, func() { _ = closer.Close() }, nil
}

// loadContent returns the configured catalog.
func loadContent(cfg *config.Config) (*content.Provider, error) {
	p, err := content.Load(cfg.Content)
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	return p, nil
}
