package app

import (
	"strings"
	"time"

	"github.com/posturelab/coach-backend/internal/platform/envutil"
)

// Version is stamped at build time via -ldflags.
var Version = "1.0.0"

type Config struct {
	Port             string
	LogMode          string
	AllowOrigins     []string
	AllowCredentials bool

	// OpenRouter-compatible completion API
	LLMAPIKey      string
	LLMBaseURL     string
	LLMModel       string
	LLMTemperature float64
	LLMMaxTokens   int
	LLMMaxRetries  int
	LLMRetryDelay  time.Duration
	LLMTimeout     time.Duration

	// Catalog files and name resolution
	ExercisesFile     string
	ProductsFile      string
	ExerciseTolerance int
	ProductTolerance  int
	SynthesisSeed     int64

	// Link rendering
	ImageBaseURL string
	ShopBaseURL  string
}

func LoadConfig() Config {
	cfg := Config{
		Port:             envutil.String("PORT", "3000"),
		LogMode:          envutil.String("LOG_MODE", "development"),
		AllowCredentials: envutil.Bool("CORS_ALLOW_CREDENTIALS", true),

		LLMAPIKey:      envutil.String("OPENROUTER_API_KEY", ""),
		LLMBaseURL:     envutil.String("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
		LLMModel:       envutil.String("LLM_MODEL", "deepseek/deepseek-r1"),
		LLMTemperature: envutil.Float("LLM_TEMPERATURE", 0.3),
		LLMMaxTokens:   envutil.Int("LLM_MAX_TOKENS", 1500),
		LLMMaxRetries:  envutil.Int("LLM_MAX_RETRIES", 3),
		LLMRetryDelay:  time.Duration(envutil.Int("LLM_RETRY_DELAY_MS", 1000)) * time.Millisecond,
		LLMTimeout:     time.Duration(envutil.Int("LLM_TIMEOUT_SECONDS", 60)) * time.Second,

		ExercisesFile:     envutil.String("EXERCISES_FILE", "./data/exercises/exercises.json"),
		ProductsFile:      envutil.String("PRODUCTS_FILE", "./data/products/products.json"),
		ExerciseTolerance: envutil.Int("EXERCISE_MATCH_TOLERANCE", 5),
		ProductTolerance:  envutil.Int("PRODUCT_MATCH_TOLERANCE", 10),
		SynthesisSeed:     envutil.Int64("PRODUCT_SYNTHESIS_SEED", 42),

		ImageBaseURL: envutil.String("EXERCISE_IMAGE_BASE_URL", "https://raw.githubusercontent.com/yuhonas/free-exercise-db/main/exercises/"),
		ShopBaseURL:  envutil.String("SHOP_BASE_URL", "https://www.decathlon.fr/"),
	}

	if origins := envutil.String("CORS_ALLOW_ORIGINS", ""); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowOrigins = append(cfg.AllowOrigins, o)
			}
		}
	}
	return cfg
}
