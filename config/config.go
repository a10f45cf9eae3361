package config

import (
	"log"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Name string
		Port string
	}
	Database struct {
		Dsn          string
		MaxIdleConns int
		MaxOpenConns int
	}
	Redis struct {
		Addr     string
		DB       int
		Password string
	}
	RabbitMQ struct {
		Url   string
		Queue string
	}
	JWT struct {
		Secret     string
		TTLSeconds int
	}
}

var AppConfig *Config

func InitConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath("./config")

	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("Error reading config file: %v", err)
	}

	AppConfig = &Config{}

	if err := viper.Unmarshal(AppConfig); err != nil {
		log.Fatalf("Unable to decode into struct: %v", err)
	}

	AppConfig.JWT.Secret = getEnvOrDefault("ARTICLEHUB_JWT_SECRET", AppConfig.JWT.Secret)
	if AppConfig.JWT.Secret == "" {
		log.Fatal("jwt secret is not configured")
	}
	if AppConfig.JWT.TTLSeconds <= 0 {
		AppConfig.JWT.TTLSeconds = 3600
	}

	initDB()
	initRedis()
	initRabbit()
}

// getEnvOrDefault returns the env var value or the given fallback.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
