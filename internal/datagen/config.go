package datagen

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Config drives one generation run.
type Config struct {
	Count       int       `mapstructure:"count"`
	OutputFile  string    `mapstructure:"output-file"`
	Seed        int64     `mapstructure:"seed"`
	StartDate   time.Time `mapstructure:"start-date"`
	WindowDays  int       `mapstructure:"window-days"`
	PostgresDSN string    `mapstructure:"postgres-dsn"`
}

// LoadConfig decodes the bound viper state into a Config. Flags, environment
// variables, and an optional config file all feed the same keys.
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	viper.AutomaticEnv()

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeHookFunc("2006-01-02"),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	if config.Count <= 0 {
		return nil, fmt.Errorf("count must be a positive integer")
	}
	if config.WindowDays <= 0 {
		config.WindowDays = 42
	}
	if config.StartDate.IsZero() {
		config.StartDate = time.Date(2024, 10, 31, 0, 0, 0, 0, time.UTC)
	}
	return &config, nil
}
