// Package config defines the application configuration: engine options,
// diagram style defaults and output settings. Values come from an optional
// YAML file, GENEVENN_* environment variables and command-line flags, in
// that order of increasing precedence.
package config

import (
	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/venn"
)

// EngineConfig holds the overlap-engine options surfaced to users.
type EngineConfig struct {
	CaseSensitive  bool   `mapstructure:"case_sensitive"`
	MinSets        int    `mapstructure:"min_sets"`
	MaxSets        int    `mapstructure:"max_sets"`
	AllowEmptySets bool   `mapstructure:"allow_empty_sets"`
	LayoutPolicy   string `mapstructure:"layout_policy"` // "exact" | "approximate" | "reject"
}

// StyleConfig holds the default cosmetic parameters. Colors cycle when a
// diagram has more sets than entries.
type StyleConfig struct {
	Colors      []string `mapstructure:"colors"` // hex, one per set
	Alpha       float64  `mapstructure:"alpha"`
	LabelHeight float64  `mapstructure:"label_height"`
	Width       int      `mapstructure:"width"`
	Height      int      `mapstructure:"height"`
}

// OutputConfig holds export settings.
type OutputConfig struct {
	DirName          string `mapstructure:"dir_name"`
	CombinedWorkbook bool   `mapstructure:"combined_workbook"`
}

// Config is the root configuration.
type Config struct {
	LogLevel string       `mapstructure:"log_level"`
	Engine   EngineConfig `mapstructure:"engine"`
	Style    StyleConfig  `mapstructure:"style"`
	Output   OutputConfig `mapstructure:"output"`
}

// Default returns the built-in configuration. The style values follow the
// established two-set palette; the layout policy defaults to the schematic
// fallback for more than three sets.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Engine: EngineConfig{
			CaseSensitive:  false,
			MinSets:        2,
			MaxSets:        venn.MaxLayoutSets,
			AllowEmptySets: true,
			LayoutPolicy:   string(venn.LayoutApproximate),
		},
		Style: StyleConfig{
			Colors:      []string{"#f4c27a", "#a6d49f", "#9fc2d4", "#d49fb8", "#c2d49f", "#b89fd4"},
			Alpha:       0.45,
			LabelHeight: 1.12,
			Width:       900,
			Height:      750,
		},
		Output: OutputConfig{
			DirName:          "Venn_Outputs",
			CombinedWorkbook: true,
		},
	}
}

// Validate checks every option and returns a venn.ConfigurationError for
// the first offending value.
func (c *Config) Validate() error {
	if c.Engine.MinSets < 2 {
		return venn.NewConfigurationError("engine.min_sets", c.Engine.MinSets, "must be at least 2")
	}
	if c.Engine.MaxSets < c.Engine.MinSets {
		return venn.NewConfigurationError("engine.max_sets", c.Engine.MaxSets, "must not be below min_sets")
	}
	if c.Engine.MaxSets > venn.MaxLayoutSets {
		return venn.NewConfigurationError("engine.max_sets", c.Engine.MaxSets, "no layout template beyond six sets")
	}
	if _, err := venn.ParseLayoutPolicy(c.Engine.LayoutPolicy); err != nil {
		return err
	}
	if c.Style.Alpha < 0 || c.Style.Alpha > 1 {
		return venn.NewConfigurationError("style.alpha", c.Style.Alpha, "must be between 0 and 1")
	}
	if c.Style.LabelHeight < 0.9 || c.Style.LabelHeight > 1.6 {
		return venn.NewConfigurationError("style.label_height", c.Style.LabelHeight, "must be between 0.9 and 1.6")
	}
	if c.Style.Width < 100 || c.Style.Height < 100 {
		return venn.NewConfigurationError("style.width", c.Style.Width, "canvas must be at least 100x100")
	}
	if len(c.Style.Colors) == 0 {
		return venn.NewConfigurationError("style.colors", c.Style.Colors, "at least one color is required")
	}
	if c.Output.DirName == "" {
		return venn.NewConfigurationError("output.dir_name", c.Output.DirName, "must not be empty")
	}
	return nil
}

// EngineOptions maps the configuration onto engine options
func (c *Config) EngineOptions() venn.Options {
	return venn.Options{
		MinSets:        c.Engine.MinSets,
		MaxSets:        c.Engine.MaxSets,
		AllowEmptySets: c.Engine.AllowEmptySets,
	}
}

// Policy returns the validated layout policy
func (c *Config) Policy() venn.LayoutPolicy {
	policy, err := venn.ParseLayoutPolicy(c.Engine.LayoutPolicy)
	if err != nil {
		return venn.LayoutApproximate
	}
	return policy
}
