package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Port           int    `mapstructure:"PORT"`
	RemoteAPIURL   string `mapstructure:"REMOTE_API_URL"`
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RequestTimeout int    `mapstructure:"REQUEST_TIMEOUT_SECONDS"`
	DrawerSeconds  int    `mapstructure:"DRAWER_SECONDS"`
	OptimisticCart bool   `mapstructure:"OPTIMISTIC_CART"`
	LogLevel       string `mapstructure:"LOG_LEVEL"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	viper.SetDefault("PORT", 8080)
	viper.SetDefault("REMOTE_API_URL", "http://localhost:5000/api")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REQUEST_TIMEOUT_SECONDS", 10)
	viper.SetDefault("DRAWER_SECONDS", 5)
	viper.SetDefault("OPTIMISTIC_CART", true)
	viper.SetDefault("LOG_LEVEL", "info")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
