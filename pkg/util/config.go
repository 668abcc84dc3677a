package util

import (
	"fmt"

	"github.com/spf13/viper"
)

func setConfigDefaults() {
	viper.SetDefault("API_PORT", 6060)
	viper.SetDefault("API_TIMEOUT", "30s")
	viper.SetDefault("NETWORK_FILE", "./data/campsite.yaml")
	viper.SetDefault("SEARCH_RADIUS", 0.05)             // km
	viper.SetDefault("LEAF_BOUNDING_BOX_RADIUS", 0.005) // km
	viper.SetDefault("ROUTE_CACHE_SIZE", 1024)
	viper.SetDefault("RATE_LIMIT_RPS", 20)
	viper.SetDefault("RATE_LIMIT_BURST", 40)
	viper.SetDefault("HTTP_SERVER_READ_TIMEOUT", "10s")
	viper.SetDefault("HTTP_SERVER_WRITE_TIMEOUT", "10s")
	viper.SetDefault("HTTP_SERVER_IDLE_TIMEOUT", "60s")
	viper.SetDefault("HTTP_SERVER_READ_HEADER_TIMEOUT", "5s")
}

// ReadConfig. read config.yaml from configDir, missing file is not an error (defaults + env are used).
func ReadConfig(configDir string) error {
	setConfigDefaults()
	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configDir)

	err := viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}
