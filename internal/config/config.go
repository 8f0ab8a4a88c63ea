package config

import (
	"fmt"
	"time"

	"github.com/smsassistent/client-go/pkg/smsassistent"
	"github.com/spf13/viper"
)

type Config struct {
	API      API                 `mapstructure:"api"`
	HTTP     HTTP                `mapstructure:"http"`
	Provider smsassistent.Config `mapstructure:"provider"`
}

type API struct {
	Port string `mapstructure:"port"`
}

type HTTP struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

func Load() (cfg *Config, err error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath("./config")

	err = viper.ReadInConfig()
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
