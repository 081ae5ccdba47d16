package app

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"clipcrypt/internal/clipboard"
)

// EnvPrefix prefixes every environment variable read into Config.
const EnvPrefix = "CLIPCRYPT"

// Config keys, shared by flags, environment and config files.
const (
	KeyClipboard = "clipboard"
	KeyLogLevel  = "log_level"
	KeyNoColor   = "no_color"
)

// Config holds runtime options for building the app.
type Config struct {
	Clipboard string `mapstructure:"clipboard"` // auto, system, osc52 or none
	LogLevel  string `mapstructure:"log_level"` // zerolog level name
	NoColor   bool   `mapstructure:"no_color"`
}

// NewViper returns a viper instance carrying the defaults and reading
// CLIPCRYPT_* environment variables.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyClipboard, string(clipboard.ModeAuto))
	v.SetDefault(KeyLogLevel, zerolog.WarnLevel.String())
	v.SetDefault(KeyNoColor, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadConfig reads file (if set) into v and returns the validated Config.
// Precedence follows viper: flags, environment, file, defaults.
func LoadConfig(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects unknown clipboard modes and log levels.
func (c Config) Validate() error {
	if _, err := clipboard.ParseMode(c.Clipboard); err != nil {
		return err
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}
