// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"math"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// SeriesSpec describes one synthetic variable as a composition of a
// linear trend, a sinusoidal cycle, a smooth simplex-noise drift and
// gaussian jitter, clipped to [Min, Max] when Max > Min.
type SeriesSpec struct {
	Name   string
	Base   float64 // level at the first period
	Trend  float64 // per-period drift
	Cycle  float64 // seasonal amplitude
	Period float64 // cycle length in periods; 0 disables the cycle
	Smooth float64 // amplitude of the slow simplex-noise component
	Noise  float64 // gaussian jitter scale
	Min    float64 // lower clip bound (active when Max > Min)
	Max    float64 // upper clip bound
}

// GenConfig holds synthetic table generation parameters.
type GenConfig struct {
	Rows int   // number of periods to generate
	Seed int64 // seed for both the RNG and the simplex noise
}

// Generate builds a deterministic synthetic Table: one column per spec,
// cfg.Rows rows. The same (cfg, specs) pair always yields the same table.
//
// Stage 1 (Validate): Rows >= 1, at least one spec, non-empty names,
// Period >= 0, Max >= Min when a clip range is set.
// Stage 2 (Synthesize): value(t) = Base + Trend·t + Cycle·sin(2πt/Period)
// + Smooth·(2·simplex(t·0.1, s) − 1) + Noise·N(0,1), clipped.
// Stage 3 (Assemble): delegate final validation to New.
//
// Complexity: O(Rows·len(specs)).
func Generate(cfg GenConfig, specs []SeriesSpec) (*Table, error) {
	if cfg.Rows < 1 {
		return nil, fmt.Errorf("Generate: rows=%d: %w", cfg.Rows, ErrBadSpec)
	}
	if len(specs) == 0 {
		return nil, fmt.Errorf("Generate: no series: %w", ErrBadSpec)
	}
	for s, spec := range specs {
		if spec.Name == "" {
			return nil, fmt.Errorf("Generate: series %d: empty name: %w", s, ErrBadSpec)
		}
		if spec.Period < 0 {
			return nil, fmt.Errorf("Generate: series %q: negative period: %w", spec.Name, ErrBadSpec)
		}
		if spec.Max < spec.Min {
			return nil, fmt.Errorf("Generate: series %q: max < min: %w", spec.Name, ErrBadSpec)
		}
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	noise := opensimplex.NewNormalized(cfg.Seed)

	names := make([]string, len(specs))
	rows := make([][]float64, cfg.Rows)
	for i := range rows {
		rows[i] = make([]float64, len(specs))
	}

	var i, s int
	var v float64
	for s = 0; s < len(specs); s++ {
		spec := specs[s]
		names[s] = spec.Name
		for i = 0; i < cfg.Rows; i++ {
			v = spec.Base + spec.Trend*float64(i)
			if spec.Period > 0 {
				v += spec.Cycle * math.Sin(2*math.Pi*float64(i)/spec.Period)
			}
			if spec.Smooth != 0 {
				// NewNormalized yields [0,1]; recenter to [−1,1].
				v += spec.Smooth * (2*noise.Eval2(float64(i)*0.1, float64(s)) - 1)
			}
			if spec.Noise != 0 {
				v += spec.Noise * rng.NormFloat64()
			}
			if spec.Max > spec.Min {
				v = math.Min(math.Max(v, spec.Min), spec.Max)
			}
			rows[i][s] = v
		}
	}

	t, err := New(names, rows)
	if err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}

	return t, nil
}
