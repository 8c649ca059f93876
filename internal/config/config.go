// Package config loads the effective run configuration by layering, in
// increasing priority: built-in defaults, an optional .hotspot.yaml file,
// environment variables (HOTSPOT_*), and command-line flags.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/hotspot-dev/hotspot/internal/model"
)

// Config is the host-facing configuration surface from spec section 6's
// CLI table, before it is split into discover.FilterConfig /
// model.RefactoringThresholds / engine.Config for the core.
type Config struct {
	Target string `mapstructure:"target"`

	MinLines int `mapstructure:"min_lines"`
	MaxLines int `mapstructure:"max_lines"`

	Languages        []string `mapstructure:"languages"`
	Exclude          []string `mapstructure:"exclude"`
	IncludeHidden    bool     `mapstructure:"include_hidden"`
	MaxFileSizeMB    float64  `mapstructure:"max_file_size_mb"`
	RespectGitignore bool     `mapstructure:"respect_gitignore"`

	Sort  string `mapstructure:"sort"`
	Limit int    `mapstructure:"limit"`

	MaxComplexityScore  float64 `mapstructure:"max_complexity_score"`
	MaxCC               int     `mapstructure:"max_cc"`
	MaxLOC              int     `mapstructure:"max_loc"`
	MaxFunctionsPerFile int     `mapstructure:"max_functions_per_file"`

	OnlyChangedSince string `mapstructure:"only_changed_since"`

	CI              bool `mapstructure:"ci"`
	CIMaxCandidates int  `mapstructure:"ci_max_candidates"`

	Format  string `mapstructure:"format"` // table, json, files, summary
	Verbose bool   `mapstructure:"verbose"`
	Quiet   bool   `mapstructure:"quiet"`
	NoColor bool   `mapstructure:"no_color"`
	Workers int    `mapstructure:"workers"`
}

// Load reads .hotspot.yaml (if present) and environment variables into a
// fresh *viper.Viper with defaults preset, ready for cobra flags to bind on
// top of it.
func Load(configPath string) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("hotspot")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if configPath == "" {
		configPath = ".hotspot.yaml"
	}
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return v, nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", configPath, err)
	}

	return v, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("target", ".")
	v.SetDefault("min_lines", 0)
	v.SetDefault("max_lines", 0)
	v.SetDefault("include_hidden", false)
	v.SetDefault("max_file_size_mb", 10.0)
	v.SetDefault("respect_gitignore", true)
	v.SetDefault("sort", "complexity")
	v.SetDefault("limit", 0)

	defaults := model.DefaultThresholds()
	v.SetDefault("max_complexity_score", defaults.MaxComplexityScore)
	v.SetDefault("max_cc", defaults.MaxCyclomaticComplexity)
	v.SetDefault("max_loc", defaults.MaxLinesOfCode)
	v.SetDefault("max_functions_per_file", defaults.MaxFunctions)

	v.SetDefault("ci", false)
	v.SetDefault("ci_max_candidates", 0)
	v.SetDefault("format", "table")
	v.SetDefault("workers", 0)
}

// Thresholds converts the loaded config into the engine's threshold type.
func (c Config) Thresholds() model.RefactoringThresholds {
	return model.RefactoringThresholds{
		MaxComplexityScore:      c.MaxComplexityScore,
		MaxCyclomaticComplexity: c.MaxCC,
		MaxLinesOfCode:          c.MaxLOC,
		MaxFunctions:            c.MaxFunctionsPerFile,
	}
}

// Validate rejects contradictory or out-of-range settings per spec section
// 7's "fatal configuration errors" category.
func (c Config) Validate() error {
	if c.Verbose && c.Quiet {
		return fmt.Errorf("--verbose and --quiet are mutually exclusive")
	}
	if c.MaxLines > 0 && c.MinLines > c.MaxLines {
		return fmt.Errorf("min_lines (%d) cannot exceed max_lines (%d)", c.MinLines, c.MaxLines)
	}
	if c.MaxFileSizeMB <= 0 {
		return fmt.Errorf("max_file_size_mb must be positive, got %v", c.MaxFileSizeMB)
	}
	switch c.Sort {
	case "lines", "functions", "methods", "classes", "complexity", "cyclomatic", "nesting", "path":
	default:
		return fmt.Errorf("unknown --sort value %q", c.Sort)
	}
	switch c.Format {
	case "table", "json", "files", "summary":
	default:
		return fmt.Errorf("unknown --format value %q", c.Format)
	}
	if c.OnlyChangedSince != "" && c.Target == "" {
		return fmt.Errorf("--only-changed-since requires a target path")
	}
	return nil
}
