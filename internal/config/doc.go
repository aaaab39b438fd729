// Package config provides configuration management for the album
// collection manager.
//
// This package handles:
//   - Loading settings from TOML, YAML or JSON files through viper
//   - Default configuration values
//   - ALBUMCAT_* environment overrides
//
// # Default Settings
//
//	settings := config.DefaultSettings()
//	// Logs to ~/.albumcat/albumcat.log
//	// Plain (unstyled) listings
//	// Tag import reads 4 files at a time
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/albumcat.toml")
//	if err != nil {
//	    // The file exists but could not be parsed
//	}
//
// # Saving Settings
//
//	settings.StyledOutput = true
//	err := settings.Save("/path/to/albumcat.toml")
package config
