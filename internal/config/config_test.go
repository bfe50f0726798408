package config

import (
	"os"
	"testing"
)

var allEnvKeys = []string{
	"PORT",
	"POSTGRES_URL",
	"OPENAI_API_KEY",
	"OPENAI_BASE_URL",
	"OPENAI_TEXT_MODEL",
	"OPENAI_VISION_MODEL",
	"VAPI_API_KEY",
	"VAPI_BASE_URL",
	"VAPI_PHONE_NUMBER_ID",
	"VAPI_MODEL",
	"VAPI_VOICE_PROVIDER",
	"VAPI_VOICE_ID",
	"MARKETPLACE_DOMAIN",
	"FETCH_MODE",
	"CHROME_BIN",
	"LISTING_CHAR_BUDGET",
}

func unsetAllEnv(keys []string) {
	for _, key := range keys {
		_ = os.Unsetenv(key)
	}
}

func TestLoad_AllDefaults(t *testing.T) {
	unsetAllEnv(allEnvKeys)

	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("Port = %q, want %q", cfg.Port, "8080")
	}
	if cfg.PostgresURL != "" {
		t.Fatalf("PostgresURL = %q, want empty", cfg.PostgresURL)
	}
	if cfg.OpenAITextModel != "gpt-4" {
		t.Fatalf("OpenAITextModel = %q, want %q", cfg.OpenAITextModel, "gpt-4")
	}
	if cfg.OpenAIVisionModel != "gpt-4.1-mini" {
		t.Fatalf("OpenAIVisionModel = %q, want %q", cfg.OpenAIVisionModel, "gpt-4.1-mini")
	}
	if cfg.VapiBaseURL != "https://api.vapi.ai" {
		t.Fatalf("VapiBaseURL = %q, want %q", cfg.VapiBaseURL, "https://api.vapi.ai")
	}
	if cfg.VapiModel != "gpt-4.1-mini" {
		t.Fatalf("VapiModel = %q, want %q", cfg.VapiModel, "gpt-4.1-mini")
	}
	if cfg.VapiVoiceProvider != "11labs" {
		t.Fatalf("VapiVoiceProvider = %q, want %q", cfg.VapiVoiceProvider, "11labs")
	}
	if cfg.VapiVoiceID != "burt" {
		t.Fatalf("VapiVoiceID = %q, want %q", cfg.VapiVoiceID, "burt")
	}
	if cfg.MarketplaceDomain != "craigslist.org" {
		t.Fatalf("MarketplaceDomain = %q, want %q", cfg.MarketplaceDomain, "craigslist.org")
	}
	if cfg.FetchMode != "http" {
		t.Fatalf("FetchMode = %q, want %q", cfg.FetchMode, "http")
	}
	if cfg.ListingCharBudget != 8000 {
		t.Fatalf("ListingCharBudget = %d, want %d", cfg.ListingCharBudget, 8000)
	}
}

func TestLoad_Overrides(t *testing.T) {
	unsetAllEnv(allEnvKeys)
	t.Setenv("PORT", "9090")
	t.Setenv("POSTGRES_URL", "postgres://haggle:haggle@db:5432/haggle")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("VAPI_API_KEY", "vapi-test")
	t.Setenv("VAPI_PHONE_NUMBER_ID", "pn-123")
	t.Setenv("MARKETPLACE_DOMAIN", "kijiji.ca")
	t.Setenv("FETCH_MODE", "browser")
	t.Setenv("LISTING_CHAR_BUDGET", "4000")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Fatalf("Port = %q, want %q", cfg.Port, "9090")
	}
	if cfg.PostgresURL != "postgres://haggle:haggle@db:5432/haggle" {
		t.Fatalf("PostgresURL = %q", cfg.PostgresURL)
	}
	if cfg.OpenAIAPIKey != "sk-test" {
		t.Fatalf("OpenAIAPIKey = %q, want %q", cfg.OpenAIAPIKey, "sk-test")
	}
	if cfg.VapiAPIKey != "vapi-test" {
		t.Fatalf("VapiAPIKey = %q, want %q", cfg.VapiAPIKey, "vapi-test")
	}
	if cfg.VapiPhoneNumberID != "pn-123" {
		t.Fatalf("VapiPhoneNumberID = %q, want %q", cfg.VapiPhoneNumberID, "pn-123")
	}
	if cfg.MarketplaceDomain != "kijiji.ca" {
		t.Fatalf("MarketplaceDomain = %q, want %q", cfg.MarketplaceDomain, "kijiji.ca")
	}
	if cfg.FetchMode != "browser" {
		t.Fatalf("FetchMode = %q, want %q", cfg.FetchMode, "browser")
	}
	if cfg.ListingCharBudget != 4000 {
		t.Fatalf("ListingCharBudget = %d, want %d", cfg.ListingCharBudget, 4000)
	}
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	unsetAllEnv(allEnvKeys)
	t.Setenv("LISTING_CHAR_BUDGET", "not-a-number")

	cfg := Load()
	if cfg.ListingCharBudget != 8000 {
		t.Fatalf("ListingCharBudget = %d, want fallback %d", cfg.ListingCharBudget, 8000)
	}
}
