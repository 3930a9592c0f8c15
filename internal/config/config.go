package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type AppConfig struct {
	API     *APIConfig     `mapstructure:"api"`
	Session *SessionConfig `mapstructure:"session"`
}

type APIConfig struct {
	// BaseURL is where the betting API lives, e.g. http://localhost:5000.
	BaseURL     string        `mapstructure:"base_url"`
	Timeout     time.Duration `mapstructure:"timeout"`
	Environment string        `mapstructure:"environment"`
}

type SessionConfig struct {
	// Path is the sqlite file holding the persisted session token.
	Path string `mapstructure:"path"`
}

// Load reads the YAML config at the given path. Every key can be overridden
// from the environment, e.g. API_BASE_URL.
func Load(configPath string) (*AppConfig, error) {
	viper.SetConfigFile(configPath)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("viper.ReadInConfig -> %w", err)
	}

	conf := &AppConfig{}
	if err := viper.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("viper.Unmarshal -> %w", err)
	}

	if conf.API == nil {
		return nil, fmt.Errorf("config %q has no api section", configPath)
	}

	if conf.API.Timeout == 0 {
		conf.API.Timeout = 10 * time.Second
	}

	if conf.Session == nil {
		conf.Session = &SessionConfig{Path: "team-betting.db"}
	}

	return conf, nil
}
