// Package config loads CLI configuration from a JSON file with sensible
// defaults for every key, so running without a config file works.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Load reads configuration from scxconvert.cfg.json in configDir and sets
// default values. A missing config file is not an error; defaults apply.
func Load(configDir string) error {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("compressionLevel", -1)
	viper.SetDefault("defaultTarget", "")
	viper.SetDefault("catalog.path", "./scenarios.db")

	viper.SetConfigName("scxconvert.cfg.json")
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}
