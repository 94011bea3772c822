package cli

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_sim/internal/affordance"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show the legal moves and cues for a piece",
	Long: `Select the piece at a position, as if it had been clicked, and print the
moves it can take part in and the cues for the clicked face.

Positions and normals are x,y,z triples with +x right, +y up and +z front.

Examples:
  gocube-sim inspect --piece 1,1,1 --normal 1,0,0
  gocube-sim inspect --piece 0,1,0 --normal 0,1,0 --moves "R U"`,
	Args: cobra.NoArgs,
	RunE: runInspect,
}

var (
	inspectPiece  string
	inspectNormal string
	inspectMoves  string
)

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringVar(&inspectPiece, "piece", "", "Piece position x,y,z (required)")
	inspectCmd.Flags().StringVar(&inspectNormal, "normal", "", "Clicked face normal x,y,z")
	inspectCmd.Flags().StringVar(&inspectMoves, "moves", "", "Moves to play before inspecting")
	_ = inspectCmd.MarkFlagRequired("piece")
}

func runInspect(cmd *cobra.Command, args []string) error {
	log, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	pos, err := parseTriple(inspectPiece)
	if err != nil {
		return fmt.Errorf("invalid --piece: %w", err)
	}

	var normal *mgl64.Vec3
	if inspectNormal != "" {
		n, err := parseTriple(inspectNormal)
		if err != nil {
			return fmt.Errorf("invalid --normal: %w", err)
		}
		v := n.Vec()
		normal = &v
	}

	p := newPuzzle(cmd, log)
	if inspectMoves != "" {
		if err := p.RotateNotation(inspectMoves); err != nil {
			return fmt.Errorf("failed to queue moves: %w", err)
		}
		if _, err := drain(p); err != nil {
			return err
		}
	}

	piece, ok := p.State().PieceAt(pos)
	if !ok {
		return fmt.Errorf("no piece at %s", pos)
	}
	if err := p.Click(piece.ID, normal); err != nil {
		return fmt.Errorf("failed to select piece: %w", err)
	}
	sel, _ := p.Selection()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Piece: %d (%s, home %s) at %s\n", piece.ID, piece.Kind(), piece.Home, sel.Position)
	for _, st := range piece.Stickers() {
		fmt.Fprintf(out, "  sticker %s facing %s\n", st.Color, st.Face())
	}
	fmt.Fprintf(out, "Legal moves: %s\n", strings.Join(sel.Letters(), " "))

	face, ok := sel.Face()
	if !ok {
		fmt.Fprintln(out, "Cues: none (no face normal)")
		return nil
	}
	fmt.Fprintf(out, "Cues on %s:\n", face)
	for i, c := range p.Affordances() {
		kind := "slide"
		if c.Centre {
			kind = "spin"
		}
		fmt.Fprintf(out, "  %d) %-2s %s %-5s at %s dir %s\n", i+1, c.Move.Notation(),
			affordance.ScreenArrow(face, c), kind, formatVec(c.Position), formatVec(c.Direction))
	}
	return nil
}

func formatVec(v mgl64.Vec3) string {
	return fmt.Sprintf("(%.2f,%.2f,%.2f)", v[0], v[1], v[2])
}
