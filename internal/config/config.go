package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// LoadEnv loads variables from a .env file if present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found: %v", err)
	}
}

// GetEnv returns an environment variable or a default value.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetIntEnv returns an int environment variable or a default value.
func GetIntEnv(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// GetDurationEnv returns a duration environment variable or a default value.
func GetDurationEnv(key string, defaultVal time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}

// IsProduction checks if the app runs in production mode.
func IsProduction() bool {
	return GetEnv("ENV", "development") == "production"
}

// ProviderConfig holds the endpoint and credentials for the bank-details
// lookup provider. Resolved once at startup and injected into the gateway;
// nothing reads the environment past that point.
type ProviderConfig struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	ModuleSecret string
	Purpose      string
	Timeout      time.Duration
}

// LoadProviderConfig reads the provider settings from the environment.
func LoadProviderConfig() ProviderConfig {
	return ProviderConfig{
		BaseURL:      GetEnv("PROVIDER_BASE_URL", "https://in.staging.decentro.tech/v2/financial_services/mobile_to_vpa/advance"),
		ClientID:     GetEnv("PROVIDER_CLIENT_ID", ""),
		ClientSecret: GetEnv("PROVIDER_CLIENT_SECRET", ""),
		ModuleSecret: GetEnv("PROVIDER_MODULE_SECRET", ""),
		Purpose:      GetEnv("PROVIDER_PURPOSE", "Fetch user VPA from mobile number"),
		Timeout:      GetDurationEnv("PROVIDER_TIMEOUT", 10*time.Second),
	}
}
