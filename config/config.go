package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Port                   string
	MongoURI               string
	MongoDatabase          string
	ReallocationCollection string
	DispatchCollection     string
	ScheduleCollection     string
	DatabaseDSN            string
	JWTSecret              string
	OperatorPasswordHash   string
	FetchTimeout           string
	LogLevel               string
}

func Load() *Config {
	viper.AutomaticEnv()

	return &Config{
		Port:                   getEnv("PORT", "8080"),
		MongoURI:               getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:          getEnv("MONGO_DATABASE", "fleet"),
		ReallocationCollection: getEnv("REALLOCATION_COLLECTION", "reallocations"),
		DispatchCollection:     getEnv("DISPATCH_COLLECTION", "dispatches"),
		ScheduleCollection:     getEnv("SCHEDULE_COLLECTION", "schedules"),
		// Empty DSN disables load auditing.
		DatabaseDSN:          getEnv("DATABASE_DSN", ""),
		JWTSecret:            getEnv("JWT_SECRET", ""),
		OperatorPasswordHash: getEnv("OPERATOR_PASSWORD_HASH", ""),
		FetchTimeout:         getEnv("FETCH_TIMEOUT", "15s"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := viper.GetString(key); value != "" {
		return value
	}
	return defaultValue
}
