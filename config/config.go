package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	JWTKey    string
	SaltRound int

	EmailSender    string
	SendgridApiKey string

	GatewayMode          string // MOCK or HTTP
	GatewayURL           string // charge endpoint for the HTTP gateway
	GatewayApiKey        string
	GatewayDelayMs       int    // simulated processing delay for the mock gateway
	GatewayDeclinePrefix string // card prefix the mock gateway declines
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		EmailSender:    getEnv("EMAIL_SENDER", "no-reply@learnsphere.io"),
		SendgridApiKey: getEnv("SENDGRID_API_KEY", ""),

		GatewayMode:          getEnv("PAYMENT_GATEWAY_MODE", "MOCK"),
		GatewayURL:           getEnv("PAYMENT_GATEWAY_URL", "https://api.sandbox.credpay.io/v1/charge"),
		GatewayApiKey:        getEnv("PAYMENT_GATEWAY_API_KEY", ""),
		GatewayDelayMs:       getEnvInt("PAYMENT_GATEWAY_DELAY_MS", 1000),
		GatewayDeclinePrefix: getEnv("PAYMENT_GATEWAY_DECLINE_PREFIX", "4000"),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.GatewayMode == "HTTP" && AppConfig.GatewayApiKey == "" {
		log.Println("Warning: PAYMENT_GATEWAY_API_KEY is empty while gateway mode is HTTP.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
