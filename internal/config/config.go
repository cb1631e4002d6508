/*
Package config
File: config.go
Description:
    Server settings via viper: listen address, content file path, log level
    and the seated players. Defaults cover a local two-player table; an
    optional 'orrery.cfg.json' next to the binary overrides them.
*/

package config

import (
	"errors"

	"github.com/spf13/viper"
)

// Load sets defaults and reads the optional config file from configDir.
// A missing file is fine; a malformed one is not.
func Load(configDir string) error {
	viper.SetDefault("listen", ":8081")
	viper.SetDefault("contentFile", "orrery.yaml")
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("players", []string{"Player 1", "Player 2"})
	viper.SetDefault("seed", 0)

	viper.SetConfigName("orrery.cfg.json")
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	return nil
}

// Listen returns the HTTP listen address.
func Listen() string { return viper.GetString("listen") }

// ContentFile returns the path of the yaml content file.
func ContentFile() string { return viper.GetString("contentFile") }

// LogLevel returns the zerolog level name.
func LogLevel() string { return viper.GetString("logLevel") }

// Players returns the seated player names in turn order.
func Players() []string { return viper.GetStringSlice("players") }

// Seed returns the deck-shuffle seed; 0 means "use the clock".
func Seed() int64 { return viper.GetInt64("seed") }
