package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gocube "github.com/SeamusWaldron/gocube_sim"
	"github.com/SeamusWaldron/gocube_sim/internal/geom"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestApplyFourTurns(t *testing.T) {
	out, err := run(t, "apply", "R", "R", "R", "R")
	require.NoError(t, err)
	assert.Contains(t, out, "Moves: R R R R")
	assert.Contains(t, out, "Solved: true")
}

func TestApplySexyMove(t *testing.T) {
	out, err := run(t, "apply", "R U R' U'")
	require.NoError(t, err)
	assert.Contains(t, out, "Solved: false")
}

func TestApplyInvalidNotation(t *testing.T) {
	_, err := run(t, "apply", "R X")
	assert.ErrorIs(t, err, gocube.ErrInvalidNotation)
}

func TestScrambleSeeded(t *testing.T) {
	first, err := run(t, "scramble", "--seed", "5")
	require.NoError(t, err)
	second, err := run(t, "scramble", "--seed", "5")
	require.NoError(t, err)

	assert.Contains(t, first, "Scramble: ")
	assert.Equal(t, first, second)
}

func TestInspectCorner(t *testing.T) {
	out, err := run(t, "inspect", "--piece", "1,1,1", "--normal", "1,0,0", "--moves=")
	require.NoError(t, err)
	assert.Contains(t, out, "Legal moves: R U F")
	assert.Contains(t, out, "Cues on R:")
	assert.Contains(t, out, "1) R ")
}

func TestInspectWithoutNormal(t *testing.T) {
	out, err := run(t, "inspect", "--piece", "1,0,0", "--normal=", "--moves=")
	require.NoError(t, err)
	assert.Contains(t, out, "Legal moves: R")
	assert.Contains(t, out, "Cues: none")
}

func TestInspectAfterMoves(t *testing.T) {
	// U carries the UFR corner to UFL.
	out, err := run(t, "inspect", "--piece", "-1,1,1", "--normal", "0,0,1", "--moves", "U")
	require.NoError(t, err)
	assert.Contains(t, out, "home (1,1,1)")
	assert.Contains(t, out, "Legal moves: L U F")
}

func TestInspectBadPiece(t *testing.T) {
	_, err := run(t, "inspect", "--piece", "2,0,0", "--normal=", "--moves=")
	assert.Error(t, err)

	_, err = run(t, "inspect", "--piece", "1,1", "--normal=", "--moves=")
	assert.Error(t, err)
}

func TestParseTriple(t *testing.T) {
	tests := []struct {
		in      string
		want    geom.IVec3
		wantErr bool
	}{
		{"1,1,1", geom.V(1, 1, 1), false},
		{"-1, 0, 1", geom.V(-1, 0, 1), false},
		{"1,1", geom.IVec3{}, true},
		{"a,b,c", geom.IVec3{}, true},
		{"", geom.IVec3{}, true},
	}
	for _, tt := range tests {
		got, err := parseTriple(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestNewLoggerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.log")
	logFile, logLevel = path, "info"
	defer func() { logFile, logLevel = "", "warn" }()

	log, closeLog, err := newLogger(true)
	require.NoError(t, err)
	log.Info("hello")
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}

func TestNewLoggerBadLevel(t *testing.T) {
	logLevel = "loud"
	defer func() { logLevel = "warn" }()

	_, _, err := newLogger(false)
	assert.Error(t, err)
}
