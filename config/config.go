// Package config exposes the engine settings a caller may want to pin in a
// file: the root finder tolerances, the Monte Carlo seed and the report
// conventions. Files are YAML or TOML, chosen by extension.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/etnz/finmath"
	"gopkg.in/yaml.v3"
)

// Solver configures the internal rate of return search.
type Solver struct {
	MaxIterations int     `yaml:"max_iterations" toml:"max_iterations"`
	Tolerance     float64 `yaml:"tolerance" toml:"tolerance"`
	Guess         float64 `yaml:"guess" toml:"guess"`
}

// Simulation configures Monte Carlo runs.
type Simulation struct {
	Seed               uint64  `yaml:"seed" toml:"seed"`
	Simulations        int     `yaml:"simulations" toml:"simulations"`
	RateFloor          float64 `yaml:"rate_floor" toml:"rate_floor"`
	DiscountRateMean   float64 `yaml:"discount_rate_mean" toml:"discount_rate_mean"`
	RateVolatility     float64 `yaml:"rate_volatility" toml:"rate_volatility"`
	CashFlowVolatility float64 `yaml:"cash_flow_volatility" toml:"cash_flow_volatility"`
}

// Report configures how results are presented.
type Report struct {
	Currency  string `yaml:"currency" toml:"currency"`
	Frequency int    `yaml:"frequency" toml:"frequency"` // compounding periods per year
	Bins      int    `yaml:"bins" toml:"bins"`           // histogram bins, 0 for automatic
}

// Config collects every configuration leaf.
type Config struct {
	Solver     Solver     `yaml:"solver" toml:"solver"`
	Simulation Simulation `yaml:"simulation" toml:"simulation"`
	Report     Report     `yaml:"report" toml:"report"`
}

// Default returns the engine defaults.
func Default() *Config {
	return &Config{
		Solver: Solver{
			MaxIterations: finmath.DefaultMaxIterations,
			Tolerance:     finmath.DefaultTolerance,
			Guess:         finmath.DefaultGuess,
		},
		Simulation: Simulation{
			Seed:               finmath.DefaultSeed,
			Simulations:        finmath.DefaultSimulations,
			RateFloor:          finmath.DefaultRateFloor,
			DiscountRateMean:   0.10,
			RateVolatility:     0.02,
			CashFlowVolatility: 0.15,
		},
		Report: Report{
			Currency:  "USD",
			Frequency: 1,
		},
	}
}

// Format is a configuration file format.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// DetectFormat determines the format from the file extension, YAML unless
// the extension is .toml.
func DetectFormat(path string) Format {
	if strings.ToLower(filepath.Ext(path)) == ".toml" {
		return FormatTOML
	}
	return FormatYAML
}

// Load reads a configuration file. Settings absent from the file keep their
// Default value.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data, DetectFormat(path))
	if err != nil {
		return nil, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a configuration document layered over Default.
func Parse(data []byte, format Format) (*Config, error) {
	cfg := Default()
	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format %v", format)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save persists a Config to disk in the format matching the path extension.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config")
	}
	var buf bytes.Buffer
	switch DetectFormat(path) {
	case FormatTOML:
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return fmt.Errorf("marshal toml: %w", err)
		}
	default:
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("marshal yaml: %w", err)
		}
		buf.Write(data)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Validate reports settings the engine would reject.
func (c *Config) Validate() error {
	switch {
	case c.Solver.MaxIterations < 0:
		return fmt.Errorf("solver.max_iterations must not be negative, got %d", c.Solver.MaxIterations)
	case c.Solver.Tolerance < 0:
		return fmt.Errorf("solver.tolerance must not be negative, got %g", c.Solver.Tolerance)
	case c.Simulation.Simulations <= 0:
		return fmt.Errorf("simulation.simulations must be positive, got %d", c.Simulation.Simulations)
	case c.Simulation.RateVolatility < 0 || c.Simulation.CashFlowVolatility < 0:
		return fmt.Errorf("simulation volatilities must not be negative")
	case c.Report.Frequency <= 0:
		return fmt.Errorf("report.frequency must be positive, got %d", c.Report.Frequency)
	}
	return nil
}

// SolverOptions returns the root finder options.
func (c *Config) SolverOptions() finmath.SolverOptions {
	return finmath.SolverOptions{
		MaxIterations: c.Solver.MaxIterations,
		Tolerance:     c.Solver.Tolerance,
		Guess:         c.Solver.Guess,
	}
}

// RiskModel returns the Monte Carlo model, seed included.
func (c *Config) RiskModel() finmath.RiskModel {
	s := c.Simulation
	return finmath.RiskModel{
		DiscountRateMean:   s.DiscountRateMean,
		RateVolatility:     s.RateVolatility,
		CashFlowVolatility: s.CashFlowVolatility,
		RateFloor:          s.RateFloor,
		Simulations:        s.Simulations,
		Seed:               s.Seed,
	}
}
