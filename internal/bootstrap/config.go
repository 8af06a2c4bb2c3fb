// Package bootstrap loads server configuration.
package bootstrap

import (
	"github.com/spf13/viper"
)

type Config struct {
	ServerPort  string `mapstructure:"SERVER_PORT"`
	DataDir     string `mapstructure:"DATA_DIR"`
	IsLocalCors bool   `mapstructure:"LOCAL_CORS"`
}

// Setup reads the config file at cfgPath. Missing keys fall back to
// defaults, a missing file is an error.
func Setup(cfgPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(cfgPath)
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		// Defaults always unmarshal into Config.
		panic(err)
	}
	return &cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("DATA_DIR", "")
	v.SetDefault("LOCAL_CORS", false)
}
