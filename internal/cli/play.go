package cli

import (
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_sim/internal/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive cube in the terminal",
	Long: `Start an interactive TUI showing the cube as an unfolded sticker net.

Keyboard and mouse:
  arrows        - Move the cursor over the stickers
  enter / click - Select the piece and face under the cursor
  1-9           - Play the numbered move cue of the selection
  r l u d f b   - Turn a face clockwise (shift for counter-clockwise)
  s             - Scramble
  x             - Reset to solved
  esc           - Clear the selection
  q             - Quit

Logs go to --log-file, if set, since the TUI owns the terminal.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

var fps int

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().IntVar(&fps, "fps", tui.DefaultFPS, "Frames per second")
}

func runPlay(cmd *cobra.Command, args []string) error {
	log, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	p := newPuzzle(cmd, log)
	log.WithField("session", p.Session()).Info("starting terminal session")
	return tui.Run(p, tui.Options{FPS: fps, Logger: log})
}
