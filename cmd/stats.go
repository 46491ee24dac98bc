package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/casefile/internal/game"
	"github.com/abhisek/casefile/internal/i18n"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show detective progress and recent graded tests",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		limit, _ := cmd.Flags().GetInt("limit")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		st, dbPath, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		logger, closeLog, err := newLogger(cfg, dbPath, false)
		if err != nil {
			return err
		}
		defer closeLog()

		provider, err := loadContent(cfg)
		if err != nil {
			return err
		}
		lang := cfg.Language()
		gameStore := game.Load(ctx, st.GameStates(cfg.SnapshotKeep), logger)
		defer gameStore.Close()
		state := gameStore.State()

		out := cmd.OutOrStdout()
		name := "(none)"
		if c, ok := provider.Characters().Find(state.SelectedCharacterID); ok {
			name = c.Name
		}
		fmt.Fprintf(out, "Detective:      %s\n", name)
		fmt.Fprintf(out, "Level:          %d\n", state.CharacterLevel)
		fmt.Fprintf(out, "Perfect runs:   %d", state.PerfectRuns)
		if next := game.NextLevelThreshold(state.CharacterLevel); next > 0 {
			fmt.Fprintf(out, " (next level at %d)", next)
		}
		fmt.Fprintln(out)
		fmt.Fprintf(out, "%-15s %d/%d\n", i18n.T(i18n.KeyCredibility, lang)+":", state.CurrentHP, game.MaxHP)
		fmt.Fprintf(out, "%-15s %.1f%%\n", i18n.T(i18n.KeyCaseProgress, lang)+":", state.CaseProgress)

		results, err := st.Results().Recent(ctx, limit)
		if err != nil {
			return fmt.Errorf("query results: %w", err)
		}
		fmt.Fprintln(out)
		if len(results) == 0 {
			fmt.Fprintln(out, i18n.T(i18n.KeyNoHistory, lang))
			return nil
		}

		fmt.Fprintf(out, "%-16s  %-16s  %-7s  %-4s  %-4s  %-6s  %s\n",
			"Finished", "Detective", "Score", "%", "HP", "Prog", "Lvl")
		fmt.Fprintln(out, strings.Repeat("─", 72))
		for _, r := range results {
			who := r.CharacterID
			if c, ok := provider.Characters().Find(r.CharacterID); ok {
				who = c.Name
			}
			mark := ""
			if r.Perfect {
				mark = " ★"
			}
			fmt.Fprintf(out, "%-16s  %-16s  %-7s  %-4d  %-4d  %-6.1f  %d%s\n",
				r.FinishedAt.Format("2006-01-02 15:04"),
				truncate(who, 16),
				fmt.Sprintf("%d/%d", r.Score, r.Total),
				r.Percent, r.HP, r.Progress, r.Level, mark)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("limit", 10, "Number of recent tests to show")
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
