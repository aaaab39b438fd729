package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	ioutils "github.com/TerminTURK/AlbumCollectionManager/internal/io"
	"github.com/spf13/viper"
)

const (
	envPrefix  = "ALBUMCAT"
	configName = "albumcat"

	minConcurrency = 1
	maxConcurrency = 32
	minHistory     = 5
	maxHistory     = 500
)

// Settings holds all configuration options.
type Settings struct {
	// Logging
	LogFile       string `mapstructure:"log_file"`
	LogMaxSizeMB  int    `mapstructure:"log_max_size_mb"`
	LogMaxBackups int    `mapstructure:"log_max_backups"`
	LogMaxAgeDays int    `mapstructure:"log_max_age_days"`
	Debug         bool   `mapstructure:"debug"`

	// Output
	StyledOutput bool `mapstructure:"styled_output"`
	HistorySize  int  `mapstructure:"history_size"` // lines kept by the TUI

	// Tag import
	ImportConcurrency int `mapstructure:"import_concurrency"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	homeDir, _ := os.UserHomeDir()
	return &Settings{
		LogFile:       filepath.Join(homeDir, ".albumcat", "albumcat.log"),
		LogMaxSizeMB:  10,
		LogMaxBackups: 3,
		LogMaxAgeDays: 28,
		Debug:         false,

		StyledOutput: false,
		HistorySize:  100,

		ImportConcurrency: 4,
	}
}

// Load reads settings from a config file.
//
// With an explicit path the file format follows its extension (toml,
// yaml or json). With an empty path, albumcat.* is searched for in
// $HOME/.config/albumcat and the working directory. A missing file is
// not an error: defaults are used. ALBUMCAT_* environment variables
// override file values, e.g. ALBUMCAT_DEBUG=true.
func Load(path string) (*Settings, error) {
	v := viper.New()
	for key, value := range DefaultSettings().values() {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath("$HOME/.config/albumcat")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	settings.Validate()

	return &settings, nil
}

// Save writes settings to a config file. The format follows the file
// extension.
func (s *Settings) Save(path string) error {
	if err := ioutils.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}

	v := viper.New()
	for key, value := range s.values() {
		v.Set(key, value)
	}
	return v.WriteConfigAs(path)
}

// Validate clamps numeric settings into their supported ranges.
func (s *Settings) Validate() {
	s.ImportConcurrency = clamp(s.ImportConcurrency, minConcurrency, maxConcurrency)
	s.HistorySize = clamp(s.HistorySize, minHistory, maxHistory)
}

func (s *Settings) values() map[string]any {
	return map[string]any{
		"log_file":           s.LogFile,
		"log_max_size_mb":    s.LogMaxSizeMB,
		"log_max_backups":    s.LogMaxBackups,
		"log_max_age_days":   s.LogMaxAgeDays,
		"debug":              s.Debug,
		"styled_output":      s.StyledOutput,
		"history_size":       s.HistorySize,
		"import_concurrency": s.ImportConcurrency,
	}
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
