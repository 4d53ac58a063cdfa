// Package config loads tool settings from an optional config file.
package config

import (
	"github.com/spf13/viper"
)

// Config carries the settings shared by the CLI and the server. Flags
// override whatever the file says.
type Config struct {
	Addr        string `mapstructure:"addr"`
	BoardSize   int    `mapstructure:"board_size"`
	AIDepth     int    `mapstructure:"ai_depth"`
	AIAlgorithm string `mapstructure:"ai_algorithm"`
	AIHeuristic string `mapstructure:"ai_heuristic"`
	Debug       bool   `mapstructure:"debug"`
}

// Default returns the settings used when no config file is given.
func Default() Config {
	return Config{
		Addr:        ":8080",
		BoardSize:   8,
		AIDepth:     3,
		AIAlgorithm: "minimax",
		AIHeuristic: "default",
	}
}

// Setup reads cfgPath and overlays it on the defaults.
func Setup(cfgPath string) (Config, error) {
	cfg := Default()
	if cfgPath == "" {
		return cfg, nil
	}
	viper.SetConfigFile(cfgPath)
	if err := viper.ReadInConfig(); err != nil {
		return cfg, err
	}
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
