package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Name        string `yaml:"name"`
		Port        string `yaml:"port"`
		Environment string `yaml:"environment"`
	} `yaml:"app"`
	CORS struct {
		Origins string `yaml:"origins"`
	} `yaml:"cors"`
}

var AppConfig *Config

// InitConfig populates AppConfig once, before the listener binds. Request
// handlers read the snapshot and never touch viper or the environment.
func InitConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")

	viper.SetDefault("app.name", "ticket-booking-service")
	viper.SetDefault("app.port", "8080")
	viper.SetDefault("app.environment", "production")
	viper.SetDefault("cors.origins", "")

	viper.BindEnv("app.port", "PORT")
	viper.BindEnv("app.environment", "APP_ENV")
	viper.BindEnv("cors.origins", "CORS_ORIGINS")

	// The config file is optional; env vars and defaults cover everything.
	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			log.Fatalf("Failed to read config file: %v", err)
		}
	}

	AppConfig = &Config{}
	AppConfig.App.Name = viper.GetString("app.name")
	AppConfig.App.Port = viper.GetString("app.port")
	AppConfig.App.Environment = viper.GetString("app.environment")
	AppConfig.CORS.Origins = viper.GetString("cors.origins")
}
