package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Loader reads configuration through viper and can watch the file for
// changes while the GUI is running.
type Loader struct {
	viper *viper.Viper
}

// NewLoader prepares a viper instance with defaults, the optional config
// file and GENEVENN_* environment overrides. An empty path searches the
// working directory and $HOME for genevenn.yaml.
func NewLoader(path string) *Loader {
	v := viper.New()

	defaults := Default()
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("engine.case_sensitive", defaults.Engine.CaseSensitive)
	v.SetDefault("engine.min_sets", defaults.Engine.MinSets)
	v.SetDefault("engine.max_sets", defaults.Engine.MaxSets)
	v.SetDefault("engine.allow_empty_sets", defaults.Engine.AllowEmptySets)
	v.SetDefault("engine.layout_policy", defaults.Engine.LayoutPolicy)
	v.SetDefault("style.colors", defaults.Style.Colors)
	v.SetDefault("style.alpha", defaults.Style.Alpha)
	v.SetDefault("style.label_height", defaults.Style.LabelHeight)
	v.SetDefault("style.width", defaults.Style.Width)
	v.SetDefault("style.height", defaults.Style.Height)
	v.SetDefault("output.dir_name", defaults.Output.DirName)
	v.SetDefault("output.combined_workbook", defaults.Output.CombinedWorkbook)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("genevenn")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}

	v.SetEnvPrefix("GENEVENN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Loader{viper: v}
}

// Load reads and validates the configuration. A missing config file is not
// an error; the defaults and environment stand in.
func (l *Loader) Load() (*Config, error) {
	if err := l.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := l.viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Watch re-reads the file on change and hands the new configuration to
// onChange. Invalid edits are reported through onError and the previous
// configuration stays active.
func (l *Loader) Watch(onChange func(*Config), onError func(error)) {
	l.viper.OnConfigChange(func(fsnotify.Event) {
		cfg := &Config{}
		if err := l.viper.Unmarshal(cfg); err != nil {
			onError(fmt.Errorf("failed to decode config: %w", err))
			return
		}
		if err := cfg.Validate(); err != nil {
			onError(err)
			return
		}
		onChange(cfg)
	})
	l.viper.WatchConfig()
}

// Viper exposes the underlying viper for flag binding in cmd
func (l *Loader) Viper() *viper.Viper {
	return l.viper
}
