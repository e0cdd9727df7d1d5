// internal/config/config.go
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port int `mapstructure:"port"`
	} `mapstructure:"server"`
	Database struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"database"`
	Simulation struct {
		IntervalSeconds int `mapstructure:"interval_seconds"`
	} `mapstructure:"simulation"`
	History struct {
		DefaultWindowHours int `mapstructure:"default_window_hours"`
	} `mapstructure:"history"`
}

// TickInterval returns the generation cycle period.
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.Simulation.IntervalSeconds) * time.Second
}

// Load reads config.yaml from path, falling back to defaults for anything
// missing. Environment variables override file values.
func Load(path string) (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// No file is fine; defaults apply.
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("database.path", "readings.db")
	viper.SetDefault("simulation.interval_seconds", 3)
	viper.SetDefault("history.default_window_hours", 24)
}
