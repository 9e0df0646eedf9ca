package chisel

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Params holds the numeric bounds a carving run is configured with. The
// simulation treats them as opaque inputs; only Validate knows the legal
// ranges.
type Params struct {
	// BallCount is the target active-ball population, in [1, 100]. The
	// driver tops the population back up to this count every frame.
	BallCount int `yaml:"ballCount"`

	// DeviationAngle is the maximum deviation in degrees, in [1, 45],
	// the bounce planner may apply around the perfect reflection when
	// steering a ball toward uncarved cells.
	DeviationAngle float64 `yaml:"deviationAngle"`

	// SpeedMultiplier scales the base ball speed, in [0.1, 5.0].
	SpeedMultiplier float64 `yaml:"speedMultiplier"`

	// Padding is the number of edge rings around the image interior,
	// at least 1 so balls have somewhere to spawn.
	Padding int `yaml:"padding"`

	// BallDiameter is the rendered ball size in grid units.
	BallDiameter float64 `yaml:"ballDiameter"`

	// BounceJitter is the magnitude of the random perturbation added to
	// reflections to break up resonant bounce loops. Zero disables it.
	BounceJitter float64 `yaml:"bounceJitter"`

	// Seed seeds the simulation's random source. Zero picks a random
	// seed; any other value makes the run reproducible.
	Seed uint64 `yaml:"seed"`
}

// DefaultParams returns the tuning used by the demos.
func DefaultParams() Params {
	return Params{
		BallCount:       20,
		DeviationAngle:  30,
		SpeedMultiplier: 1.0,
		Padding:         2,
		BallDiameter:    0.6,
		BounceJitter:    0.02,
	}
}

// Validate checks every field against its legal range.
func (p *Params) Validate() error {
	if p.BallCount < 1 || p.BallCount > 100 {
		return fmt.Errorf("ballCount %d outside [1, 100]", p.BallCount)
	}
	if p.DeviationAngle < 1 || p.DeviationAngle > 45 {
		return fmt.Errorf("deviationAngle %.1f outside [1, 45]", p.DeviationAngle)
	}
	if p.SpeedMultiplier < 0.1 || p.SpeedMultiplier > 5.0 {
		return fmt.Errorf("speedMultiplier %.2f outside [0.1, 5.0]", p.SpeedMultiplier)
	}
	if p.Padding < 1 {
		return fmt.Errorf("padding %d must be at least 1", p.Padding)
	}
	if p.BallDiameter <= 0 {
		return fmt.Errorf("ballDiameter %.2f must be positive", p.BallDiameter)
	}
	if p.BounceJitter < 0 {
		return fmt.Errorf("bounceJitter %.3f must be non-negative", p.BounceJitter)
	}
	return nil
}

// LoadParams reads a YAML params file, fills unset fields from
// DefaultParams, and validates the result.
func LoadParams(path string) (Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Params{}, fmt.Errorf("read params: %w", err)
	}
	p := DefaultParams()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Params{}, fmt.Errorf("parse params: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Params{}, fmt.Errorf("invalid params: %w", err)
	}
	return p, nil
}
