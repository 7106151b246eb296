package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Input      InputConfig      `mapstructure:"input"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Classifier ClassifierConfig `mapstructure:"classifier"`
}

type InputConfig struct {
	// Path to the message-array JSON file; empty means read stdin
	Path string `mapstructure:"path"`
}

type LoggingConfig struct {
	Development bool `mapstructure:"development"`
}

type ClassifierConfig struct {
	SampleLimit int `mapstructure:"sample_limit"`
}

func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("input.path", "")
	v.SetDefault("logging.development", false)
	v.SetDefault("classifier.sample_limit", 3)

	// Enable environment variable support
	v.AutomaticEnv()

	// Read the config file
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	// Check for TRIAGE_INPUT environment variable
	if input := v.GetString("TRIAGE_INPUT"); input != "" {
		config.Input.Path = input
	}

	return &config, nil
}
