package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	PostgresURL       string
	OpenAIAPIKey      string
	OpenAIBaseURL     string
	OpenAITextModel   string
	OpenAIVisionModel string
	VapiAPIKey        string
	VapiBaseURL       string
	VapiPhoneNumberID string
	VapiModel         string
	VapiVoiceProvider string
	VapiVoiceID       string
	MarketplaceDomain string
	FetchMode         string
	ChromeBin         string
	ListingCharBudget int
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("config: no .env file found, using system env vars")
	}
	return Config{
		Port:              getEnv("PORT", "8080"),
		PostgresURL:       getEnv("POSTGRES_URL", ""),
		OpenAIAPIKey:      getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:     getEnv("OPENAI_BASE_URL", ""),
		OpenAITextModel:   getEnv("OPENAI_TEXT_MODEL", "gpt-4"),
		OpenAIVisionModel: getEnv("OPENAI_VISION_MODEL", "gpt-4.1-mini"),
		VapiAPIKey:        getEnv("VAPI_API_KEY", ""),
		VapiBaseURL:       getEnv("VAPI_BASE_URL", "https://api.vapi.ai"),
		VapiPhoneNumberID: getEnv("VAPI_PHONE_NUMBER_ID", ""),
		VapiModel:         getEnv("VAPI_MODEL", "gpt-4.1-mini"),
		VapiVoiceProvider: getEnv("VAPI_VOICE_PROVIDER", "11labs"),
		VapiVoiceID:       getEnv("VAPI_VOICE_ID", "burt"),
		MarketplaceDomain: getEnv("MARKETPLACE_DOMAIN", "craigslist.org"),
		FetchMode:         getEnv("FETCH_MODE", "http"),
		ChromeBin:         getEnv("CHROME_BIN", ""),
		ListingCharBudget: getEnvInt("LISTING_CHAR_BUDGET", 8000),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err == nil {
			return parsed
		}
	}
	return fallback
}
