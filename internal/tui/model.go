// Package tui is the terminal host for a Puzzle: a bubbletea program that
// drives the frame loop, draws the sticker net and turns key presses and
// mouse clicks into selections and moves.
package tui

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	gocube "github.com/SeamusWaldron/gocube_sim"
	"github.com/SeamusWaldron/gocube_sim/internal/affordance"
	"github.com/SeamusWaldron/gocube_sim/internal/cube"
)

// DefaultFPS is the frame rate used when Options.FPS is not set.
const DefaultFPS = 60

// netTop is the number of screen lines above the net: the title and a blank
// line. Mouse coordinates are translated with it.
const netTop = 2

// Options configures the terminal host.
type Options struct {
	FPS    int
	Logger logrus.FieldLogger
}

// Messages
type frameMsg time.Time

// Model is the bubbletea model of the simulator.
type Model struct {
	puzzle *gocube.Puzzle
	fps    int
	log    logrus.FieldLogger

	// UI
	cursor   cell
	moves    []gocube.Move
	status   string
	err      error
	width    int
	height   int
	quitting bool
}

// New creates a model driving p. It registers the Puzzle's move and solved
// callbacks.
func New(p *gocube.Puzzle, opts Options) *Model {
	m := &Model{
		puzzle: p,
		fps:    opts.FPS,
		log:    opts.Logger,
		cursor: cellFor(cube.FaceF, 1, 1),
	}
	if m.fps <= 0 {
		m.fps = DefaultFPS
	}
	if m.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		m.log = l
	}

	p.OnMove(func(mv gocube.Move) {
		m.moves = append(m.moves, mv)
	})
	p.OnSolved(func() {
		m.status = "Solved!"
		m.log.Info("cube solved")
	})
	return m
}

// Run starts the terminal program and blocks until the user quits.
func Run(p *gocube.Puzzle, opts Options) error {
	m := New(p, opts)
	prog := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func (m *Model) Init() tea.Cmd {
	return m.frame()
}

// frame schedules the next frame.
func (m *Model) frame() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.puzzle.Tick()
		return m, m.frame()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "up":
		m.cursor = m.cursor.step(-1, 0)
	case "down":
		m.cursor = m.cursor.step(1, 0)
	case "left":
		m.cursor = m.cursor.step(0, -1)
	case "right":
		m.cursor = m.cursor.step(0, 1)

	case "enter", " ":
		m.selectCursor()

	case "esc":
		m.puzzle.ClearSelection()
		m.err = nil

	case "s":
		moves, err := m.puzzle.Scramble()
		m.setErr(err)
		if err == nil {
			m.status = "Scramble: " + gocube.FormatMoves(moves)
		}

	case "x":
		m.puzzle.Reset()
		m.moves = nil
		m.err = nil
		m.status = "Reset"

	default:
		if mv, ok := moveForKey(key); ok {
			m.setErr(m.puzzle.Rotate(mv))
			break
		}
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= 9 {
			m.pickCue(n - 1)
		}
	}

	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	c, ok := cellAt(msg.X, msg.Y-netTop)
	if !ok {
		m.puzzle.ClearSelection()
		m.err = nil
		return
	}
	m.cursor = c
	m.selectCursor()
}

// selectCursor clicks the sticker under the cursor.
func (m *Model) selectCursor() {
	f, row, col, ok := m.cursor.facelet()
	if !ok {
		return
	}
	pc, _, ok := m.puzzle.State().StickerAt(f, row, col)
	if !ok {
		return
	}
	n := f.Normal().Vec()
	m.setErr(m.puzzle.Click(pc.ID, &n))
}

// pickCue queues the move of the i-th cue.
func (m *Model) pickCue(i int) {
	cues := m.puzzle.Affordances()
	if i >= len(cues) {
		return
	}
	m.setErr(m.puzzle.Rotate(cues[i].Move))
}

// setErr records the outcome of an input. A click during a turn is ignored
// without a message.
func (m *Model) setErr(err error) {
	if errors.Is(err, gocube.ErrAnimating) {
		m.log.WithError(err).Debug("click ignored")
		return
	}
	m.err = err
	if err != nil {
		m.log.WithError(err).Debug("input rejected")
	}
}

// moveForKey maps r l u d f b to clockwise turns and their shifted letters
// to primes.
func moveForKey(key string) (gocube.Move, bool) {
	if len(key) != 1 {
		return gocube.Move{}, false
	}
	r := rune(key[0])
	if !strings.ContainsRune("rludfbRLUDFB", r) {
		return gocube.Move{}, false
	}
	mv, err := gocube.ParseMove(strings.ToUpper(key))
	if err != nil {
		return gocube.Move{}, false
	}
	if unicode.IsUpper(r) {
		mv = mv.Inverse()
	}
	return mv, true
}

func (m *Model) View() string {
	if m.quitting {
		return "Bye.\n"
	}

	var b strings.Builder

	// Title
	b.WriteString(titleStyle.Render("GoCube Simulator"))
	b.WriteString("\n\n")

	state := m.puzzle.State()
	b.WriteString(m.renderNet(state))
	b.WriteString("\n")

	b.WriteString(panelStyle.Render(m.renderPanel(state)))
	b.WriteString("\n")

	// Recent moves
	if len(m.moves) > 0 {
		b.WriteString("Moves: ")
		start := 0
		if len(m.moves) > 20 {
			start = len(m.moves) - 20
			b.WriteString("... ")
		}
		b.WriteString(moveStyle.Render(gocube.FormatMoves(m.moves[start:])))
		b.WriteString(fmt.Sprintf(" (%d)\n", len(m.moves)))
	}

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(errorText(m.err)))
		b.WriteString("\n")
	case m.status != "":
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("arrows=move  enter/click=select  1-9=cue  r/l/u/d/f/b=turn (shift=prime)  s=scramble  x=reset  esc=clear  q=quit"))
	b.WriteString("\n")

	return b.String()
}

func (m *Model) renderNet(state *gocube.State) string {
	facelets := state.Facelets()
	sel, hasSel := m.puzzle.Selection()

	var b strings.Builder
	for r := 0; r < netRows; r++ {
		for c := 0; c < netCols; c++ {
			here := cell{row: r, col: c}
			f, row, col, ok := here.facelet()
			if !ok {
				b.WriteString(strings.Repeat(" ", cellWidth))
			} else {
				marker := " "
				if hasSel && sel.Position == cube.FaceletPosition(f, row, col) {
					marker = "◆"
					if sel.HasNormal && sel.Normal == f.Normal() {
						marker = "●"
					}
				}
				text := " " + marker + " "
				if here == m.cursor {
					text = "[" + marker + "]"
				}
				b.WriteString(stickerStyle(facelets[f][row*3+col]).Render(text))
			}
			if c%3 == 2 && c != netCols-1 {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderPanel(state *gocube.State) string {
	var lines []string

	if state.IsSolved() {
		lines = append(lines, "Cube: "+solvedStyle.Render("SOLVED"))
	} else {
		lines = append(lines, "Cube: scrambled")
	}

	if a, ok := m.puzzle.Active(); ok {
		lines = append(lines, fmt.Sprintf("Turning %-2s %s  queue %d",
			a.Move.Notation(), progressBar(a.Fraction(), 20), m.puzzle.Pending()))
	} else {
		lines = append(lines, fmt.Sprintf("Idle  queue %d", m.puzzle.Pending()))
	}

	sel, ok := m.puzzle.Selection()
	if !ok {
		lines = append(lines, statusStyle.Render("No piece selected"))
		return strings.Join(lines, "\n")
	}

	where := fmt.Sprintf("Piece %d at %s", sel.PieceID, sel.Position)
	face, hasFace := sel.Face()
	if hasFace {
		where += " on " + face.String()
	}
	lines = append(lines, where)
	lines = append(lines, "Legal: "+moveStyle.Render(strings.Join(sel.Letters(), " ")))

	if hasFace {
		var cues []string
		for i, c := range m.puzzle.Affordances() {
			cues = append(cues, fmt.Sprintf("%d) %s %s", i+1, c.Move.Notation(), affordance.ScreenArrow(face, c)))
		}
		lines = append(lines, "Cues: "+strings.Join(cues, "  "))
	}
	return strings.Join(lines, "\n")
}

func progressBar(frac float64, width int) string {
	filled := int(frac * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]" +
		fmt.Sprintf(" %3.0f%%", frac*100)
}

func errorText(err error) string {
	switch {
	case errors.Is(err, gocube.ErrQueueFull):
		return "Move queue is full."
	default:
		return "Error: " + err.Error()
	}
}
