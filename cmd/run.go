package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/casefile/internal/app"
	"github.com/abhisek/casefile/internal/game"
)

// runApp opens the store, restores the game state, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	st, dbPath, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	logger, closeLog, err := newLogger(cfg, dbPath, true)
	if err != nil {
		return err
	}
	defer closeLog()

	provider, err := loadContent(cfg)
	if err != nil {
		logger.Error().Err(err).Msg("content load failed")
		return err
	}
	logger.Info().
		Str("format", provider.Format()).
		Int("questions", len(provider.Questions())).
		Int("chapters", len(provider.Chapters())).
		Msg("content loaded")

	gameStore := game.Load(ctx, st.GameStates(cfg.SnapshotKeep), logger)
	defer gameStore.Close()

	return app.Run(app.Options{
		Game:         gameStore,
		Content:      provider,
		Results:      st.Results(),
		Logger:       logger,
		Lang:         cfg.Language(),
		AdvanceDelay: cfg.AdvanceDelay,
	})
}
