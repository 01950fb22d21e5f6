package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Settings is the runtime configuration of the window and its ambient services.
// Tunables that shape the animation itself live in the constant block.
type Settings struct {
	Width           int         `mapstructure:"width"`
	Height          int         `mapstructure:"height"`
	Content         string      `mapstructure:"content"`
	Mute            bool        `mapstructure:"mute"`
	Seed            int64       `mapstructure:"seed"`
	PauseWhenHidden bool        `mapstructure:"pause_when_hidden"`
	Log             LogSettings `mapstructure:"log"`
}

type LogSettings struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SetDefaults registers the built-in values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("width", WindowWidth)
	v.SetDefault("height", WindowHeight)
	v.SetDefault("content", "")
	v.SetDefault("mute", false)
	v.SetDefault("seed", 0)
	v.SetDefault("pause_when_hidden", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// Load reads settings from file (or ./pagemotion.yaml when file is empty),
// PAGEMOTION_* environment variables and whatever flags were bound to v.
// A missing default settings file is not an error.
func Load(v *viper.Viper, file string) (Settings, error) {
	SetDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("pagemotion")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("PAGEMOTION")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("read settings: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate rejects window sizes that cannot host a page.
func (s Settings) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", s.Width, s.Height)
	}
	return nil
}
