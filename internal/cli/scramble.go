package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	gocube "github.com/SeamusWaldron/gocube_sim"
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate and play a random scramble",
	Long: `Queue 25 random quarter turns, play them headless and print the moves and
the scrambled sticker net. Use --seed for a reproducible scramble.`,
	Args: cobra.NoArgs,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
}

func runScramble(cmd *cobra.Command, args []string) error {
	log, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	p := newPuzzle(cmd, log)
	moves, err := p.Scramble()
	if err != nil {
		return fmt.Errorf("failed to scramble: %w", err)
	}
	if _, err := drain(p); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Scramble: %s\n\n", gocube.FormatMoves(moves))
	fmt.Fprint(out, p.State().String())
	return nil
}
