package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config is everything a running pibtd daemon needs that isn't carried
// in a single request: which map backs the engine, the deterministic
// seed it starts from, the free-cell token the map loader expects, and
// where the HTTP/WS server listens.
type Config struct {
	MapPath     string `mapstructure:"map_path"`
	FreeToken   string `mapstructure:"free_token"`
	Seed        int64  `mapstructure:"seed"`
	ListenAddr  string `mapstructure:"listen_addr"`
	MetricsPath string `mapstructure:"metrics_path"`
}

// defaults are the values Load falls back to for any field that neither
// the file nor the environment sets: a usable daemon without requiring
// every field to be spelled out. MapPath has no default.
func defaults() Config {
	return Config{
		FreeToken:   ".",
		Seed:        1,
		ListenAddr:  ":8080",
		MetricsPath: "/metrics",
	}
}

// Load reads path (YAML) with viper, falling back to defaults() for
// any field the file omits, and lets GRIDPIBT_-prefixed environment
// variables override either. path may be empty, in which case only
// environment variables and defaults apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	cfg := defaults()
	v.SetDefault("map_path", cfg.MapPath)
	v.SetDefault("free_token", cfg.FreeToken)
	v.SetDefault("seed", cfg.Seed)
	v.SetDefault("listen_addr", cfg.ListenAddr)
	v.SetDefault("metrics_path", cfg.MetricsPath)

	v.SetEnvPrefix("gridpibt")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.MapPath == "" {
		return nil, ErrMissingMapPath
	}
	return &cfg, nil
}
