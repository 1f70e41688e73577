// Package scenario loads YAML scenario files for the epikit CLI.
//
// A scenario file groups the parameters of one or more model runs so that
// classroom exercises are reproducible from a single checked-in document:
//
//	sweep:
//	  r0: 3.0
//	  dispersions: [0.1, 0.5, 1.0, 5.0, 10.0]
//	  generations: 20
//	  trials: 100000
//	  seed: 101
//	sis:
//	  susceptible: 0.99
//	  infected: 0.01
//	  beta: 3
//	  gamma: 2
//	  tmax: 25
//	  step: 0.01
//
// Validation here is shallow — presence and shape only. Numeric-domain
// checks (positivity, fraction sums) belong to the model constructors, so
// they are never duplicated and never skipped.
package scenario

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrEmptyScenario indicates a file with no model blocks at all.
	ErrEmptyScenario = errors.New("scenario: file defines no model runs")
	// ErrMissingDispersions indicates a sweep block without dispersion values.
	ErrMissingDispersions = errors.New("scenario: sweep needs at least one dispersion value")
)

// Scenario is the root document. Every block is optional; Validate
// requires at least one.
type Scenario struct {
	Sweep  *Sweep  `yaml:"sweep,omitempty"`
	SIR    *SIR    `yaml:"sir,omitempty"`
	SIRBD  *SIRBD  `yaml:"sirbd,omitempty"`
	SIS    *SIS    `yaml:"sis,omitempty"`
	Groups *Groups `yaml:"groups,omitempty"`
}

// Sweep mirrors branching.SweepConfig. Zero MaxInfected/Seed/Workers fall
// through to the branching package defaults.
type Sweep struct {
	R0          float64   `yaml:"r0"`
	Dispersions []float64 `yaml:"dispersions"`
	Generations int       `yaml:"generations"`
	MaxInfected float64   `yaml:"maxInfected"`
	Trials      int       `yaml:"trials"`
	Seed        uint64    `yaml:"seed"`
	Workers     int       `yaml:"workers"`
}

// SIR parameterizes a closed-population SIR run.
type SIR struct {
	Susceptible float64 `yaml:"susceptible"`
	Infected    float64 `yaml:"infected"`
	Recovered   float64 `yaml:"recovered"`
	Beta        float64 `yaml:"beta"`
	Gamma       float64 `yaml:"gamma"`
	TMax        float64 `yaml:"tmax"`
	Step        float64 `yaml:"step"`
}

// SIRBD parameterizes an SIR run with vital dynamics.
type SIRBD struct {
	Population  float64 `yaml:"population"`
	Susceptible float64 `yaml:"susceptible"`
	Infected    float64 `yaml:"infected"`
	Recovered   float64 `yaml:"recovered"`
	Beta        float64 `yaml:"beta"`
	Gamma       float64 `yaml:"gamma"`
	BirthRate   float64 `yaml:"birthRate"`
	DeathRate   float64 `yaml:"deathRate"`
	TMax        float64 `yaml:"tmax"`
	Step        float64 `yaml:"step"`
}

// SIS parameterizes a normalized SIS run; ErrorSteps, when present,
// requests the error-vs-stepsize sweep instead of a trajectory.
type SIS struct {
	Susceptible float64   `yaml:"susceptible"`
	Infected    float64   `yaml:"infected"`
	Beta        float64   `yaml:"beta"`
	Gamma       float64   `yaml:"gamma"`
	TMax        float64   `yaml:"tmax"`
	Step        float64   `yaml:"step"`
	ErrorSteps  []float64 `yaml:"errorSteps,omitempty"`
}

// Groups parameterizes the four-group heterogeneous-susceptibility run.
type Groups struct {
	Susceptibility [4]float64 `yaml:"susceptibility"`
	ContactRate    float64    `yaml:"contactRate"`
	Gamma          float64    `yaml:"gamma"`
	TMax           float64    `yaml:"tmax"`
	Step           float64    `yaml:"step"`
	Susceptible    float64    `yaml:"susceptible,omitempty"`
	Infected       float64    `yaml:"infected,omitempty"`
	Recovered      float64    `yaml:"recovered,omitempty"`
}

// Load reads and parses a YAML scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parsing scenario file: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate checks document shape: at least one block, and a sweep block
// must carry dispersions.
func (s *Scenario) Validate() error {
	if s.Sweep == nil && s.SIR == nil && s.SIRBD == nil && s.SIS == nil && s.Groups == nil {
		return ErrEmptyScenario
	}
	if s.Sweep != nil && len(s.Sweep.Dispersions) == 0 {
		return ErrMissingDispersions
	}
	return nil
}
