package app

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "LOG_MODE", "OPENROUTER_API_KEY", "OPENROUTER_BASE_URL",
		"LLM_MODEL", "LLM_TEMPERATURE", "LLM_MAX_TOKENS", "LLM_MAX_RETRIES",
		"LLM_RETRY_DELAY_MS", "LLM_TIMEOUT_SECONDS", "EXERCISES_FILE",
		"PRODUCTS_FILE", "EXERCISE_MATCH_TOLERANCE", "PRODUCT_MATCH_TOLERANCE",
		"PRODUCT_SYNTHESIS_SEED", "EXERCISE_IMAGE_BASE_URL", "SHOP_BASE_URL",
		"CORS_ALLOW_ORIGINS", "CORS_ALLOW_CREDENTIALS",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	if cfg.Port != "3000" {
		t.Fatalf("port: want=3000 got=%q", cfg.Port)
	}
	if cfg.LLMBaseURL != "https://openrouter.ai/api/v1" {
		t.Fatalf("base url: got=%q", cfg.LLMBaseURL)
	}
	if cfg.LLMModel != "deepseek/deepseek-r1" {
		t.Fatalf("model: got=%q", cfg.LLMModel)
	}
	if cfg.LLMTemperature != 0.3 {
		t.Fatalf("temperature: got=%v", cfg.LLMTemperature)
	}
	if cfg.LLMMaxTokens != 1500 || cfg.LLMMaxRetries != 3 {
		t.Fatalf("llm limits: tokens=%d retries=%d", cfg.LLMMaxTokens, cfg.LLMMaxRetries)
	}
	if cfg.LLMRetryDelay != time.Second {
		t.Fatalf("retry delay: got=%s", cfg.LLMRetryDelay)
	}
	if cfg.ExerciseTolerance != 5 || cfg.ProductTolerance != 10 {
		t.Fatalf("tolerances: %d/%d", cfg.ExerciseTolerance, cfg.ProductTolerance)
	}
	if len(cfg.AllowOrigins) != 0 {
		t.Fatalf("origins: got=%v", cfg.AllowOrigins)
	}
	if !cfg.AllowCredentials {
		t.Fatal("allow credentials should default to true")
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("LLM_MODEL", "openai/gpt-4o-mini")
	t.Setenv("LLM_RETRY_DELAY_MS", "250")
	t.Setenv("EXERCISE_MATCH_TOLERANCE", "2")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example.com, https://b.example.com,")
	t.Setenv("CORS_ALLOW_CREDENTIALS", "false")

	cfg := LoadConfig()

	if cfg.Port != "8080" {
		t.Fatalf("port: got=%q", cfg.Port)
	}
	if cfg.LLMModel != "openai/gpt-4o-mini" {
		t.Fatalf("model: got=%q", cfg.LLMModel)
	}
	if cfg.LLMRetryDelay != 250*time.Millisecond {
		t.Fatalf("retry delay: got=%s", cfg.LLMRetryDelay)
	}
	if cfg.ExerciseTolerance != 2 {
		t.Fatalf("tolerance: got=%d", cfg.ExerciseTolerance)
	}
	want := []string{"https://a.example.com", "https://b.example.com"}
	if len(cfg.AllowOrigins) != 2 || cfg.AllowOrigins[0] != want[0] || cfg.AllowOrigins[1] != want[1] {
		t.Fatalf("origins: got=%v", cfg.AllowOrigins)
	}
	if cfg.AllowCredentials {
		t.Fatal("allow credentials should follow CORS_ALLOW_CREDENTIALS")
	}
}
