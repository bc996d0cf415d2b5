// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Practice PracticeConfig `toml:"practice"`
	Speech   SpeechConfig   `toml:"speech"`
	Proxy    ProxyConfig    `toml:"proxy"`
}

// PracticeConfig maps practice-related settings.
type PracticeConfig struct {
	Questions  *int     `toml:"questions"`
	Voice      *string  `toml:"voice"`
	Bank       *string  `toml:"bank"`
	FocusWeak  *bool    `toml:"focus-weak"`
	WeakTop    *int     `toml:"weak-top"`
	WeakFactor *float64 `toml:"weak-factor"`
	WeakWindow *int     `toml:"weak-window"`
}

// SpeechConfig maps speech-synthesis settings. The subscription key is never
// read from the file; it comes from AZURE_SPEECH_KEY.
type SpeechConfig struct {
	Region *string  `toml:"region"`
	Voice  *string  `toml:"voice"`
	Rate   *float64 `toml:"rate"`
}

// ProxyConfig maps chat proxy settings. The gateway key comes from AI_API_KEY.
type ProxyConfig struct {
	Addr    *string `toml:"addr"`
	BaseURL *string `toml:"base-url"`
	Model   *string `toml:"model"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
