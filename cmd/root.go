package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/config"
	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/logging"
	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/store"
)

// Set by the root command's PersistentPreRunE before any subcommand runs.
var (
	cfg      config.Config
	logger   = slog.New(slog.DiscardHandler)
	closeLog = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:   "campus",
	Short: "Study and career companion for university students",
	Long: "Campus is a terminal companion for university students: AI career gap " +
		"analysis, an AI study assistant, goals and a focus timer.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeLog()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("db", "", "Path to SQLite database file (overrides CAMPUS_DB env var)")
	pf.String("config", "", "Path to config file (default $XDG_CONFIG_HOME/campus/config.yaml)")
	pf.String("log-file", "", "Path to log file (overrides CAMPUS_LOG_FILE env var)")
	pf.String("log-level", "", "Log level: debug, info, warn or error")
	pf.String("provider", "", "LLM provider: gemini, openai, anthropic, openrouter or mock")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup layers .env, the config file, CAMPUS_* variables and flags, then
// opens the log.
func setup(cmd *cobra.Command, args []string) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	path, _ := cmd.Flags().GetString("config")
	loaded, err := config.Load(path)
	if err != nil {
		return err
	}
	loaded.ApplyEnv(os.Getenv)

	if v, _ := cmd.Flags().GetString("log-file"); v != "" {
		loaded.Log.File = v
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		loaded.Log.Level = v
	}
	if v, _ := cmd.Flags().GetString("provider"); v != "" {
		loaded.ProviderOverride = v
	}
	cfg = loaded

	l, closer, err := logging.Setup(logging.Options{File: cfg.Log.File, Level: cfg.Log.Level})
	if l == nil {
		return fmt.Errorf("logging: %w", err)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Logging disabled:", err)
	}
	logger, closeLog = l, closer
	slog.SetDefault(logger)
	return nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then CAMPUS_DB env var, then the config file, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if os.Getenv("CAMPUS_DB") == "" && cfg.DB != "" {
		return cfg.DB, store.EnsureDir(cfg.DB)
	}
	return store.DefaultDBPath()
}
