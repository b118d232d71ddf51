// Package config loads qrgen's CLI configuration via spf13/viper, layering
// a config file and environment variables (QRGEN_ prefix) over built-in
// defaults. No command-line flags are bound to these settings.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/qrforge/qrforge/qrecc"
)

// Config holds qrgen's resolved settings.
type Config struct {
	Level      qrecc.Level
	MinVersion int
	MaxVersion int
	BoostECL   bool
	Border     int
}

// Defaults returns the configuration used when no file or environment
// variable overrides a setting.
func Defaults() Config {
	return Config{
		Level:      qrecc.Low,
		MinVersion: 1,
		MaxVersion: 40,
		BoostECL:   true,
		Border:     4,
	}
}

// Load configures v to read qrgen.{yaml,json,toml} from the current
// directory and $HOME/.qrgen, then from environment variables prefixed
// QRGEN_, and returns the resolved Config. A missing config file is not an
// error; settings that neither source provides fall back to the values of
// Defaults, which Load registers as v's defaults.
func Load(v *viper.Viper) (Config, error) {
	v.SetConfigName("qrgen")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.qrgen")
	v.SetEnvPrefix("QRGEN")
	v.AutomaticEnv()

	d := Defaults()
	v.SetDefault("level", levelName(d.Level))
	v.SetDefault("min_version", d.MinVersion)
	v.SetDefault("max_version", d.MaxVersion)
	v.SetDefault("boost_ecl", d.BoostECL)
	v.SetDefault("border", d.Border)

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return Config{}, fmt.Errorf("config: %w", err)
		}
	}

	level, err := parseLevel(v.GetString("level"))
	if err != nil {
		return Config{}, err
	}

	return Config{
		Level:      level,
		MinVersion: v.GetInt("min_version"),
		MaxVersion: v.GetInt("max_version"),
		BoostECL:   v.GetBool("boost_ecl"),
		Border:     v.GetInt("border"),
	}, nil
}

func levelName(l qrecc.Level) string {
	return l.String()
}

func parseLevel(s string) (qrecc.Level, error) {
	switch strings.ToUpper(s) {
	case "L", "LOW":
		return qrecc.Low, nil
	case "M", "MEDIUM":
		return qrecc.Medium, nil
	case "Q", "QUARTILE":
		return qrecc.Quartile, nil
	case "H", "HIGH":
		return qrecc.High, nil
	default:
		return 0, fmt.Errorf("config: unrecognized error correction level %q", s)
	}
}
