package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	CompanyName    string
	CompanyAddress string
	CompanyEmail   string
	CompanyPhone   string

	DefaultModifierPercent float64
	GroupingThreshold      int
}

func Load() Config {
	_ = godotenv.Load()

	return Config{
		CompanyName:    getEnv("COMPANY_NAME", "Kitchen Survey Co"),
		CompanyAddress: getEnv("COMPANY_ADDRESS", ""),
		CompanyEmail:   getEnv("COMPANY_EMAIL", ""),
		CompanyPhone:   getEnv("COMPANY_PHONE", ""),

		DefaultModifierPercent: getEnvFloat("DEFAULT_MODIFIER_PERCENT", 0),
		GroupingThreshold:      getEnvInt("GROUPING_THRESHOLD", 5),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := strings.TrimSpace(getEnv(key, ""))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvFloat(key string, fallback float64) float64 {
	value := strings.TrimSpace(getEnv(key, ""))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}
