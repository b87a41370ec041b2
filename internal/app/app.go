package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/posturelab/coach-backend/internal/catalog"
	apphttp "github.com/posturelab/coach-backend/internal/http"
	httpH "github.com/posturelab/coach-backend/internal/http/handlers"
	"github.com/posturelab/coach-backend/internal/llm"
	"github.com/posturelab/coach-backend/internal/platform/logger"
	"github.com/posturelab/coach-backend/internal/services"
)

type App struct {
	Log       *logger.Logger
	Cfg       Config
	Router    *gin.Engine
	Exercises *catalog.ExerciseStore
	Products  *catalog.ProductStore
}

func New(log *logger.Logger) (*App, error) {
	log.Info("Loading configuration...")
	cfg := LoadConfig()

	if cfg.LogMode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// the two catalog files are independent, load them concurrently
	var (
		exercises *catalog.ExerciseStore
		products  *catalog.ProductStore
	)
	var g errgroup.Group
	g.Go(func() error {
		var err error
		exercises, err = catalog.LoadExercises(cfg.ExercisesFile)
		return err
	})
	g.Go(func() error {
		var err error
		products, err = catalog.LoadProducts(cfg.ProductsFile, cfg.SynthesisSeed)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load catalogs: %w", err)
	}
	log.Info("Catalogs loaded",
		"exercises", exercises.Len(),
		"products", products.Len(),
	)

	client, err := llm.NewClient(log, llm.Config{
		BaseURL:     cfg.LLMBaseURL,
		APIKey:      cfg.LLMAPIKey,
		Model:       cfg.LLMModel,
		Temperature: cfg.LLMTemperature,
		MaxTokens:   cfg.LLMMaxTokens,
		MaxRetries:  cfg.LLMMaxRetries,
		RetryDelay:  cfg.LLMRetryDelay,
		Timeout:     cfg.LLMTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("init LLM client: %w", err)
	}

	recSvc := services.NewRecommendationService(log, client, exercises, products, services.RecommendationConfig{
		ExerciseTolerance: cfg.ExerciseTolerance,
		ProductTolerance:  cfg.ProductTolerance,
		ImageBaseURL:      cfg.ImageBaseURL,
		ShopBaseURL:       cfg.ShopBaseURL,
	})

	router := apphttp.NewRouter(apphttp.RouterConfig{
		Log:              log,
		AllowOrigins:     cfg.AllowOrigins,
		AllowCredentials: cfg.AllowCredentials,
		ExerciseHandler:  httpH.NewExerciseHandler(log, recSvc, exercises, cfg.ImageBaseURL),
		ProductHandler:   httpH.NewProductHandler(log, recSvc, products, cfg.ShopBaseURL),
		HealthHandler:    httpH.NewHealthHandler(exercises, products, Version),
		APIInfoHandler:   httpH.NewAPIInfoHandler(exercises, products, Version),
	})

	return &App{
		Log:       log,
		Cfg:       cfg,
		Router:    router,
		Exercises: exercises,
		Products:  products,
	}, nil
}

func (a *App) Run() error {
	if a == nil || a.Router == nil {
		return fmt.Errorf("app not initialized")
	}
	a.Log.Info("Server listening", "port", a.Cfg.Port)
	return a.Router.Run(":" + a.Cfg.Port)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
