package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/casefile/internal/quiz"
)

var gradeCmd = &cobra.Command{
	Use:   "grade <answers.json>",
	Short: "Grade an answer sheet without touching game state",
	Long: `Grade an answer sheet keyed by question id, for example:

  {"p1q1": [2], "p2q2": {"0": "single-phase"}, "p3q1": {"0": [0, 1, 2, 3]}}

Questions missing from the sheet count as unanswered.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		provider, err := loadContent(cfg)
		if err != nil {
			return err
		}

		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read answers: %w", err)
		}
		answers, err := provider.ParseAnswers(raw)
		if err != nil {
			return err
		}

		lang := cfg.Language()
		rep := quiz.Score(provider.Questions(), answers, lang)

		out := cmd.OutOrStdout()
		for _, qr := range rep.Questions {
			status := "✓"
			switch {
			case !qr.Answered():
				status = "-"
			case qr.Result.CorrectUnits() < quiz.Units(qr.Question):
				status = "✗"
			}
			fmt.Fprintf(out, "%s  %-8s  %d/%d\n",
				status, qr.Question.Info().ID, qr.Result.CorrectUnits(), quiz.Units(qr.Question))
		}
		fmt.Fprintf(out, "\nScore: %d/%d (%d%%)\n", rep.Score, rep.Total, rep.Percent())
		if rep.Perfect() {
			fmt.Fprintln(out, "Perfect case!")
		}
		return nil
	},
}
