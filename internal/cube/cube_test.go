package cube

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/SeamusWaldron/gocube_sim/internal/geom"
)

func TestNewCubeIsSolved(t *testing.T) {
	c := Solved()
	if !c.IsSolved() {
		t.Error("New cube should be solved")
	}
	for _, p := range c.Pieces() {
		if p.Position != p.Home {
			t.Errorf("piece %d at %s, home %s", p.ID, p.Position, p.Home)
		}
		if IDFor(p.Home) != p.ID {
			t.Errorf("piece %d has home %s", p.ID, p.Home)
		}
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	c := Solved()
	c.Apply(R)
	if c.IsSolved() {
		t.Error("Cube should not be solved after R move")
	}
}

func TestFourQuarterTurnsReturnToStart_AllMoves(t *testing.T) {
	start := Solved()
	start.Apply(R, U, FPrime, L, D, BPrime)

	for _, m := range AllMoves {
		c := start.Clone()
		c.Apply(m, m, m, m)
		if !c.Equal(start) {
			t.Errorf("%s x 4 should return to the starting state", m)
			t.Log(c.String())
		}
	}
}

func TestMoveThenInverse_AllMoves(t *testing.T) {
	start := Solved()
	start.Apply(U, RPrime, B, DPrime)

	for _, m := range AllMoves {
		c := start.Clone()
		c.Apply(m, m.Inverse())
		if !c.Equal(start) {
			t.Errorf("%s %s should return to the starting state", m, m.Inverse())
			t.Log(c.String())
		}
	}
}

func TestSexyMove_6Times_ReturnsToSolved(t *testing.T) {
	// (R U R' U') x 6 = identity
	c := Solved()
	for i := 0; i < 6; i++ {
		c.Apply(SexyMove...)
	}
	if !c.IsSolved() {
		t.Error("Sexy move x 6 should return to solved")
		t.Log(c.String())
	}
}

func TestPositionsStayPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	c := Solved()
	for i := 0; i < 500; i++ {
		c.Apply(AllMoves[rng.Intn(len(AllMoves))])

		seen := make(map[geom.IVec3]bool, PieceCount)
		for _, p := range c.Pieces() {
			if !p.Position.InRange() {
				t.Fatalf("move %d: piece %d out of range at %s", i, p.ID, p.Position)
			}
			if seen[p.Position] {
				t.Fatalf("move %d: two pieces at %s", i, p.Position)
			}
			seen[p.Position] = true
		}
		if len(seen) != PieceCount {
			t.Fatalf("move %d: %d distinct positions", i, len(seen))
		}
	}
}

func TestCentresNeverMove(t *testing.T) {
	for _, m := range AllMoves {
		c := Solved()
		c.Apply(m)
		for _, p := range c.Pieces() {
			if p.Home.NonZero() != 1 {
				continue
			}
			if p.Position != p.Home {
				t.Errorf("%s moved centre %d to %s", m, p.ID, p.Position)
			}
			onOwnAxis := p.Home[m.Axis()] == m.Layer()
			if onOwnAxis == p.Orientation.IsIdentity() {
				t.Errorf("%s: centre %s orientation changed=%v, want %v",
					m, p.Home, !p.Orientation.IsIdentity(), onOwnAxis)
			}
		}
	}
}

func TestCommitMoveOnlyTouchesActive(t *testing.T) {
	c := Solved()
	active := []int{IDFor(geom.V(1, 1, 1))}
	if err := c.CommitMove(R, active); err != nil {
		t.Fatal(err)
	}

	for _, p := range c.Pieces() {
		moved := p.Position != p.Home
		if p.ID == active[0] {
			if p.Position != geom.V(1, 1, -1) {
				t.Errorf("UFR corner should go to UBR under R, got %s", p.Position)
			}
			continue
		}
		if moved || !p.Orientation.IsIdentity() {
			t.Errorf("piece %d should be untouched", p.ID)
		}
	}
}

func TestCommitMoveIsAtomic(t *testing.T) {
	c := Solved()
	before := c.Clone()

	err := c.CommitMove(R, []int{0, 1, 99})
	if !errors.Is(err, ErrUnknownPiece) {
		t.Fatalf("expected ErrUnknownPiece, got %v", err)
	}
	if !c.Equal(before) {
		t.Error("failed commit must not change the state")
	}

	if err := c.CommitMove(R, []int{2, 2}); err == nil {
		t.Error("duplicate ids should be rejected")
	}
	if !c.Equal(before) {
		t.Error("failed commit must not change the state")
	}
}

func TestPiecesInLayer(t *testing.T) {
	c := Solved()
	for _, m := range AllMoves {
		ids := c.PiecesInLayer(m.Axis(), m.Layer())
		if len(ids) != 9 {
			t.Errorf("%s layer has %d pieces", m, len(ids))
		}
		for _, id := range ids {
			p, _ := c.Piece(id)
			if !m.Affects(p.Position) {
				t.Errorf("%s layer contains piece at %s", m, p.Position)
			}
		}
	}

	// After R, the pieces in the U layer change.
	c.Apply(R)
	for _, id := range c.PiecesInLayer(geom.Y, 1) {
		p, _ := c.Piece(id)
		if p.Position[1] != 1 {
			t.Errorf("piece %d at %s reported in U layer", id, p.Position)
		}
	}
}

func TestResetRestoresSolved(t *testing.T) {
	c := Solved()
	c.Apply(R, U, F, L)
	c.Reset()
	if !c.IsSolved() {
		t.Error("Reset should restore the solved state")
	}
	if !c.Equal(Solved()) {
		t.Error("Reset state should equal a new cube")
	}
}

func TestFaceletsAfterR(t *testing.T) {
	c := Solved()
	c.Apply(R)
	f := c.Facelets()

	// R lifts the front-right column onto U.
	for row := 0; row < 3; row++ {
		if got := f[FaceU][row*3+2]; got != Green {
			t.Errorf("U[%d] = %s, want G", row*3+2, got)
		}
		if got := f[FaceU][row*3]; got != White {
			t.Errorf("U[%d] = %s, want W", row*3, got)
		}
	}
	// R face itself stays red.
	for i := 0; i < 9; i++ {
		if f[FaceR][i] != Red {
			t.Errorf("R[%d] = %s, want R", i, f[FaceR][i])
		}
	}
	if t.Failed() {
		t.Log(c.String())
	}
}

func TestFaceletCoordsRoundTrip(t *testing.T) {
	for _, f := range Faces {
		seen := make(map[int]bool)
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				p := FaceletPosition(f, row, col)
				if p[f.Axis()] != f.Layer() {
					t.Errorf("%s (%d,%d) -> %s not on face", f, row, col, p)
				}
				r, c := FaceletCoords(f, p)
				if r != row || c != col {
					t.Errorf("%s (%d,%d) -> %s -> (%d,%d)", f, row, col, p, r, c)
				}
				seen[IDFor(p)] = true
			}
		}
		if len(seen) != 9 {
			t.Errorf("%s maps to %d positions", f, len(seen))
		}
	}
}

func TestStickerCounts(t *testing.T) {
	want := map[Kind]int{KindCore: 0, KindCentre: 1, KindEdge: 2, KindCorner: 3}
	for _, p := range Solved().Pieces() {
		if got := len(p.Stickers()); got != want[p.Kind()] {
			t.Errorf("%s piece %d has %d stickers", p.Kind(), p.ID, got)
		}
	}
}

func TestStickerAt(t *testing.T) {
	c := Solved()
	c.Apply(R)

	p, st, ok := c.StickerAt(FaceU, 1, 2)
	if !ok {
		t.Fatal("expected a sticker at U(1,2)")
	}
	if st.Color != Green {
		t.Errorf("sticker color = %s, want G", st.Color)
	}
	if p.Home != geom.V(1, 0, 1) {
		t.Errorf("sticker belongs to piece from %s, want FR edge", p.Home)
	}
}

func TestMoveGeometry(t *testing.T) {
	tests := []struct {
		move  Move
		axis  geom.Axis
		layer int
		dir   int
	}{
		{R, geom.X, 1, -1},
		{RPrime, geom.X, 1, 1},
		{L, geom.X, -1, 1},
		{U, geom.Y, 1, -1},
		{D, geom.Y, -1, 1},
		{DPrime, geom.Y, -1, -1},
		{F, geom.Z, 1, -1},
		{B, geom.Z, -1, 1},
	}
	for _, tt := range tests {
		if tt.move.Axis() != tt.axis || tt.move.Layer() != tt.layer || tt.move.Direction() != tt.dir {
			t.Errorf("%s: got (%s,%d,%d), want (%s,%d,%d)", tt.move,
				tt.move.Axis(), tt.move.Layer(), tt.move.Direction(),
				tt.axis, tt.layer, tt.dir)
		}
	}
}

func TestUnmappedMovePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for a move outside the alphabet")
		}
	}()
	Move{Face: FaceR, Turn: 2}.Axis()
}

func TestParseMove(t *testing.T) {
	valid := map[string]Move{
		"R": R, "r": R, "R'": RPrime, "U`": UPrime, " f ": F, "b'": BPrime,
	}
	for s, want := range valid {
		got, err := ParseMove(s)
		if err != nil {
			t.Errorf("ParseMove(%q): %v", s, err)
			continue
		}
		if got != want {
			t.Errorf("ParseMove(%q) = %s, want %s", s, got, want)
		}
	}

	for _, s := range []string{"", "X", "R2", "R''", "M"} {
		if _, err := ParseMove(s); !errors.Is(err, ErrInvalidNotation) {
			t.Errorf("ParseMove(%q) error = %v, want ErrInvalidNotation", s, err)
		}
	}
}

func TestParseMovesAndFormat(t *testing.T) {
	moves, err := ParseMoves("R U R' U'")
	if err != nil {
		t.Fatal(err)
	}
	if FormatMoves(moves) != "R U R' U'" {
		t.Errorf("round trip gave %q", FormatMoves(moves))
	}

	if _, err := ParseMoves("R U2 F"); !errors.Is(err, ErrInvalidNotation) {
		t.Errorf("expected ErrInvalidNotation, got %v", err)
	}
	if FormatMoves(nil) != "" {
		t.Error("empty sequence should format as empty string")
	}
}
