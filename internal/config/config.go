// Package config holds the immutable conversion options passed into
// each pipeline stage at construction time.
package config

import "fmt"

// Conversion modes.
const (
	ModeRaw   = "raw"   // one point set per triangle, no sharing
	ModeDedup = "dedup" // deduplicated point table, single object
	ModeSplit = "split" // deduplicated and split into disjoint surfaces
)

// Options holds all conversion settings.
type Options struct {
	Precision   int    `yaml:"precision"`    // significant digits for canonical point encoding
	Indent      string `yaml:"indent"`       // output indent unit
	ScadVersion string `yaml:"scad_version"` // "current" or "2014.03"
	Mode        string `yaml:"mode"`
	Analyze     bool   `yaml:"analyze"` // run the manifold integrity checks
	OutputDir   string `yaml:"output_dir"`
	Force       bool   `yaml:"force"` // overwrite existing output files

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns Options with conventional values.
func Default() *Options {
	return &Options{
		Precision:   9,
		Indent:      "\t",
		ScadVersion: "current",
		Mode:        ModeDedup,
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks option values that cannot be verified lazily.
func (o *Options) Validate() error {
	switch o.Mode {
	case ModeRaw, ModeDedup, ModeSplit:
	default:
		return fmt.Errorf("unknown conversion mode %q", o.Mode)
	}
	switch o.ScadVersion {
	case "current", "2014.03":
	default:
		return fmt.Errorf("unknown OpenSCAD compatibility version %q", o.ScadVersion)
	}
	if o.Precision < 1 || o.Precision > 17 {
		return fmt.Errorf("precision %d out of range 1..17", o.Precision)
	}
	return nil
}
