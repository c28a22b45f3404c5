// SPDX-License-Identifier: MIT
// Package: unispace/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all model knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).

package builder

// Deterministic defaults (named, no magic numbers).
const (
	defaultGridResolution = 9    // interval grid sample count
	defaultBasisDepth     = 6    // uniformity chain length
	defaultBaseRadius     = 1.0  // coarsest metric entourage
	defaultAmplitude      = 0.05 // sinusoidal perturbation amplitude
	maxGridResolution     = 1024 // guard against accidental huge grids
)

// builderConfig aggregates all knobs used by model constructors.
// It is passed by VALUE (immutable to callers).
type builderConfig struct {
	// gridResolution is the number of interval grid samples (≥ 2).
	gridResolution int
	// basisDepth is the uniformity basis chain length (≥ 1).
	basisDepth int
	// baseRadius is the coarsest metric entourage radius (> 0).
	baseRadius float64
	// amplitude scales the sinusoidal probe perturbations (> 0).
	amplitude float64
	// maxProbe, when positive, is forwarded to topoequiv.Model.MaxProbe.
	maxProbe int
	// err records the first invalid option for surfacing at build time.
	err error
}

// Option configures model construction via functional arguments.
type Option func(*builderConfig)

// newBuilderConfig resolves defaults and applies options in order.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		gridResolution: defaultGridResolution,
		basisDepth:     defaultBasisDepth,
		baseRadius:     defaultBaseRadius,
		amplitude:      defaultAmplitude,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithGridResolution sets the interval grid sample count.
// Values below 2 or above the internal guard are rejected at build time.
func WithGridResolution(n int) Option {
	return func(c *builderConfig) {
		if n < 2 || n > maxGridResolution {
			c.err = ErrBadResolution
			return
		}
		c.gridResolution = n
	}
}

// WithBasisDepth sets the uniformity basis chain length.
func WithBasisDepth(d int) Option {
	return func(c *builderConfig) {
		if d < 1 {
			c.err = ErrBadDepth
			return
		}
		c.basisDepth = d
	}
}

// WithBaseRadius sets the coarsest metric entourage radius.
func WithBaseRadius(r float64) Option {
	return func(c *builderConfig) {
		if r <= 0 {
			c.err = ErrBadRadius
			return
		}
		c.baseRadius = r
	}
}

// WithAmplitude sets the sinusoidal perturbation amplitude of the
// interval probe family.
func WithAmplitude(a float64) Option {
	return func(c *builderConfig) {
		if a <= 0 {
			c.err = ErrBadAmplitude
			return
		}
		c.amplitude = a
	}
}

// WithMaxProbe forwards a probe-universe bound to the produced model.
func WithMaxProbe(n int) Option {
	return func(c *builderConfig) { c.maxProbe = n }
}
