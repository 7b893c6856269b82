package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Settings holds the server-level configuration. Values come from
// defaults, an optional config file and COMBAT_-prefixed environment
// variables, in increasing precedence.
type Settings struct {
	ServerAddress string `mapstructure:"server_address"`
	DatabasePath  string `mapstructure:"database_path"`
	LogLevel      string `mapstructure:"log_level"`
	CatalogPath   string `mapstructure:"catalog_path"`
	RandomSeed    int64  `mapstructure:"random_seed"`
}

// Load reads settings from the given file path. An empty path uses
// defaults and environment variables only.
func Load(path string) (*Settings, error) {
	v := viper.New()
	v.SetDefault("server_address", ":8080")
	v.SetDefault("database_path", "combat.db")
	v.SetDefault("log_level", "info")
	v.SetDefault("catalog_path", "")
	v.SetDefault("random_seed", 0)

	v.SetEnvPrefix("COMBAT")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	return &s, nil
}
