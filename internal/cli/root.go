// Package cli implements the command-line interface for gocube-sim.
package cli

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	gocube "github.com/SeamusWaldron/gocube_sim"
	"github.com/SeamusWaldron/gocube_sim/internal/geom"
)

const version = "0.1.0"

// maxDrainTicks bounds headless playback. At the default step a move takes
// 13 ticks, so this covers any sequence that fits in the queue.
const maxDrainTicks = 1 << 20

var (
	// Global flags
	logLevel       string
	logFile        string
	step           float64
	burstThreshold int
	burstFactor    float64
	queueLimit     int
	seed           int64
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "gocube-sim",
	Short: "Virtual 3x3x3 cube simulator",
	Long: `gocube-sim - A terminal simulator for a 3x3x3 twisty puzzle.

Select pieces on the sticker net, follow the move cues, scramble and reset.
Headless commands apply move sequences and inspect pieces without a terminal UI.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	flags.StringVar(&logFile, "log-file", "", "Write logs to this file instead of stderr")
	flags.Float64Var(&step, "step", 0, "Radians a turning layer advances per frame (default pi/24)")
	flags.IntVar(&burstThreshold, "burst-threshold", 0, "Queue depth above which turns speed up (default 3)")
	flags.Float64Var(&burstFactor, "burst-factor", 0, "Step multiplier in burst mode (default 3)")
	flags.IntVar(&queueLimit, "queue-limit", 0, "Maximum number of queued moves (default 1024)")
	flags.Int64Var(&seed, "seed", 0, "Random seed for scrambles (default: time based)")
}

// newLogger builds the logger from the global flags. Without --log-file it
// writes to stderr, or nowhere when quiet is set.
func newLogger(quiet bool) (*logrus.Logger, func(), error) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	log.SetLevel(level)

	closer := func() {}
	switch {
	case logFile != "":
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		log.SetOutput(f)
		closer = func() { f.Close() }
	case quiet:
		log.SetOutput(io.Discard)
	default:
		log.SetOutput(os.Stderr)
	}
	return log, closer, nil
}

// newPuzzle builds a Puzzle from the global flags.
func newPuzzle(cmd *cobra.Command, log logrus.FieldLogger) *gocube.Puzzle {
	opts := []gocube.Option{gocube.WithLogger(log)}
	if step > 0 {
		opts = append(opts, gocube.WithStep(step))
	}
	if burstThreshold > 0 || burstFactor > 0 {
		opts = append(opts, gocube.WithBurst(burstThreshold, burstFactor))
	}
	if queueLimit > 0 {
		opts = append(opts, gocube.WithQueueLimit(queueLimit))
	}
	if cmd.Flags().Changed("seed") {
		opts = append(opts, gocube.WithRand(rand.New(rand.NewSource(seed))))
	}
	return gocube.New(opts...)
}

// parseTriple parses "x,y,z" into an integer vector.
func parseTriple(s string) (geom.IVec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return geom.IVec3{}, fmt.Errorf("expected x,y,z, got %q", s)
	}
	var v geom.IVec3
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return geom.IVec3{}, fmt.Errorf("expected x,y,z, got %q: %w", s, err)
		}
		v[i] = n
	}
	return v, nil
}

// drain plays every queued move to completion.
func drain(p *gocube.Puzzle) (int, error) {
	ticks, err := p.Drain(maxDrainTicks)
	if err != nil {
		return ticks, fmt.Errorf("playback did not finish: %w", err)
	}
	return ticks, nil
}
