package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	gocube "github.com/SeamusWaldron/gocube_sim"
)

var applyCmd = &cobra.Command{
	Use:   "apply <moves>",
	Short: "Play a move sequence and print the resulting cube",
	Long: `Queue a move sequence, play it through the animation scheduler without
a terminal UI and print the sticker net.

Moves use the twelve quarter turns R L U D F B and their primes.

Examples:
  gocube-sim apply "R U R' U'"
  gocube-sim apply R R R R`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	log, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	p := newPuzzle(cmd, log)
	notation := strings.Join(args, " ")
	if err := p.RotateNotation(notation); err != nil {
		return fmt.Errorf("failed to queue moves: %w", err)
	}

	var played []gocube.Move
	p.OnMove(func(m gocube.Move) {
		played = append(played, m)
	})

	ticks, err := drain(p)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Moves: %s\n", gocube.FormatMoves(played))
	fmt.Fprintf(out, "Frames: %d\n\n", ticks)
	fmt.Fprint(out, p.State().String())
	fmt.Fprintf(out, "\nSolved: %v\n", p.IsSolved())
	return nil
}
