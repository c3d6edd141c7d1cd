package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/app"
	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/llm"
	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/store"
)

// runApp opens the store, builds the provider, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	provider, pcfg, err := openProvider(ctx, st)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI features will be unavailable.")
		logger.Warn("llm provider unavailable", "error", err)
		provider = llm.NewOfflineProvider(err)
	}

	return app.Run(ctx, app.Options{
		Provider: provider,
		Logger:   logger,
		Timeout:  pcfg.Timeout,
	})
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// openProvider builds the configured provider with retry and event logging.
// The returned config is set even when err is not nil; a missing key comes
// back as *llm.ErrMissingAPIKey.
func openProvider(ctx context.Context, st *store.Store) (llm.Provider, llm.Config, error) {
	pcfg := cfg.ProviderConfig(os.Getenv)
	provider, err := llm.NewProvider(ctx, pcfg, st.EventRepo(), logger)
	if err != nil {
		return nil, pcfg, err
	}
	logger.Info("llm provider ready", "provider", pcfg.Provider, "model", provider.ModelID())
	return provider, pcfg, nil
}
