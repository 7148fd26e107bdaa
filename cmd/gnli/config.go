package main

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/optcomlab/gnmodel/nli"
	"github.com/optcomlab/gnmodel/spectrum"
)

// Scenario is the on-disk description of one NLI computation: the span, a
// uniform comb, and the accuracy settings.
type Scenario struct {
	Fiber FiberConfig `yaml:"fiber"`
	Comb  CombConfig  `yaml:"comb"`
	Model ModelConfig `yaml:"model"`
	// Workers sets the number of concurrent evaluation workers (≤1 serial).
	Workers int `yaml:"workers,omitempty"`
}

// FiberConfig describes the compensated span.
type FiberConfig struct {
	Beta2      float64 `yaml:"beta2"`       // ps/THz/km
	SpanLength float64 `yaml:"span_length"` // km
	LossDB     float64 `yaml:"loss_db"`     // dB/km
	Gamma      float64 `yaml:"gamma"`       // 1/W/km
}

// CombConfig describes a uniform WDM comb centred on zero baseband
// frequency.
type CombConfig struct {
	Channels   int     `yaml:"channels"`
	Spacing    float64 `yaml:"spacing"`     // THz
	SymbolRate float64 `yaml:"symbol_rate"` // TBaud
	RollOff    float64 `yaml:"roll_off"`
	Power      float64 `yaml:"power"` // W per channel
}

// ModelConfig mirrors nli.Params. An empty EvalFreqs defaults to the comb's
// central slot(s): 0 for an odd channel count, ±spacing/2 for an even one.
type ModelConfig struct {
	MinFWMEfficiencyDB float64   `yaml:"min_fwm_efficiency_db"`
	MaxGridPoints      int       `yaml:"max_grid_points"`
	MinGridPoints      int       `yaml:"min_grid_points"`
	EvalFreqs          []float64 `yaml:"eval_freqs,omitempty"` // THz
}

// DefaultScenario returns the canonical reference configuration: 95 channels
// at 32 GBd on a 50 GHz grid, 5 % roll-off, 1 mW each, over a 100 km SMF
// span.
func DefaultScenario() Scenario {
	return Scenario{
		Fiber: FiberConfig{Beta2: 21.27, SpanLength: 100, LossDB: 0.2, Gamma: 1.27},
		Comb:  CombConfig{Channels: 95, Spacing: 0.05, SymbolRate: 0.032, RollOff: 0.05, Power: 0.001},
		Model: ModelConfig{MinFWMEfficiencyDB: 30, MaxGridPoints: 500, MinGridPoints: 4},
	}
}

// LoadScenario reads and validates a YAML scenario file.
func LoadScenario(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("read scenario: %w", err)
	}

	s := DefaultScenario()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Scenario{}, fmt.Errorf("parse scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Scenario{}, err
	}

	return s, nil
}

// Validate rejects scenarios the engine could not derive its grids from.
func (s Scenario) Validate() error {
	switch {
	case s.Comb.Channels < 2:
		return errors.New("scenario: comb.channels must be at least 2")
	case s.Comb.Spacing <= 0:
		return errors.New("scenario: comb.spacing must be positive")
	case s.Comb.SymbolRate <= 0:
		return errors.New("scenario: comb.symbol_rate must be positive")
	case s.Comb.RollOff < 0 || s.Comb.RollOff >= 1:
		return errors.New("scenario: comb.roll_off must lie in [0,1)")
	case s.Comb.Power <= 0:
		return errors.New("scenario: comb.power must be positive")
	}

	return nil
}

// Build expands the scenario into engine inputs. Channel centers follow the
// reference layout: an odd comb puts a channel on 0, an even comb straddles
// it.
func (s Scenario) Build() (nli.Fiber, spectrum.Comb, nli.Params) {
	n := s.Comb.Channels
	comb := spectrum.Comb{
		CenterFreq: make([]float64, n),
		SymbolRate: make([]float64, n),
		RollOff:    make([]float64, n),
		Power:      make([]float64, n),
	}
	for i := 0; i < n; i++ {
		if n%2 == 1 {
			comb.CenterFreq[i] = (float64(i) - math.Floor(float64(n)/2)) * s.Comb.Spacing
		} else {
			comb.CenterFreq[i] = (float64(i) - float64(n)/2 + 0.5) * s.Comb.Spacing
		}
		comb.SymbolRate[i] = s.Comb.SymbolRate
		comb.RollOff[i] = s.Comb.RollOff
		comb.Power[i] = s.Comb.Power
	}

	params := nli.Params{
		MinFWMEfficiencyDB: s.Model.MinFWMEfficiencyDB,
		MaxGridPoints:      s.Model.MaxGridPoints,
		MinGridPoints:      s.Model.MinGridPoints,
		EvalFreqs:          s.Model.EvalFreqs,
	}
	if len(params.EvalFreqs) == 0 {
		if n%2 == 1 {
			params.EvalFreqs = []float64{0}
		} else {
			params.EvalFreqs = []float64{-s.Comb.Spacing / 2, s.Comb.Spacing / 2}
		}
	}

	fiber := nli.Fiber{
		Beta2:      s.Fiber.Beta2,
		SpanLength: s.Fiber.SpanLength,
		LossDB:     s.Fiber.LossDB,
		Gamma:      s.Fiber.Gamma,
	}

	return fiber, comb, params
}
