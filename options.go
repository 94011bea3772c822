package gocube

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/SeamusWaldron/gocube_sim/internal/scheduler"
)

// Option configures Puzzle behavior.
type Option func(*config)

type config struct {
	step           float64
	burstThreshold int
	burstFactor    float64
	queueLimit     int
	rng            *rand.Rand
	logger         logrus.FieldLogger
}

func defaultConfig() *config {
	return &config{
		step:           scheduler.DefaultStep,
		burstThreshold: scheduler.DefaultBurstThreshold,
		burstFactor:    scheduler.DefaultBurstFactor,
		queueLimit:     scheduler.DefaultQueueLimit,
	}
}

// WithStep sets the angle, in radians, a turning layer advances per Tick.
// The default completes a quarter turn in 12 ticks.
func WithStep(radians float64) Option {
	return func(c *config) {
		c.step = radians
	}
}

// WithBurst sets burst mode: while more than threshold moves are waiting, the
// step is multiplied by factor so long sequences play back faster.
func WithBurst(threshold int, factor float64) Option {
	return func(c *config) {
		c.burstThreshold = threshold
		c.burstFactor = factor
	}
}

// WithQueueLimit bounds the number of waiting moves. Rotate and Scramble
// return ErrQueueFull beyond it.
func WithQueueLimit(n int) Option {
	return func(c *config) {
		c.queueLimit = n
	}
}

// WithRand sets the random source used by Scramble. Pass a seeded source for
// reproducible scrambles.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		c.rng = r
	}
}

// WithLogger sets the logger. By default nothing is logged.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) {
		c.logger = l
	}
}
