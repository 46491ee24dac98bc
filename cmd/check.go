package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/casefile/internal/content"
)

var checkCmd = &cobra.Command{
	Use:   "check [catalog.json]",
	Short: "Validate a content catalog",
	Long:  "Validate a content catalog and print every authoring error. Without an argument the embedded catalog is checked.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			p   *content.Provider
			err error
		)
		if len(args) == 1 {
			p, err = content.LoadFile(args[0])
		} else {
			p, err = content.Default()
		}

		out := cmd.OutOrStdout()
		if err != nil {
			var joined interface{ Unwrap() []error }
			if errors.As(err, &joined) {
				for _, e := range joined.Unwrap() {
					fmt.Fprintf(out, "✗ %v\n", e)
				}
			} else {
				fmt.Fprintf(out, "✗ %v\n", err)
			}
			return errors.New("catalog is invalid")
		}

		fmt.Fprintf(out, "✓ catalog %s: %d questions, %d chapters, %d characters\n",
			p.Format(), len(p.Questions()), len(p.Chapters()), len(p.Characters()))
		return nil
	},
}
