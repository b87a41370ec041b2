package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	httpH "github.com/posturelab/coach-backend/internal/http/handlers"
	httpMW "github.com/posturelab/coach-backend/internal/http/middleware"
	"github.com/posturelab/coach-backend/internal/http/response"
	"github.com/posturelab/coach-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log              *logger.Logger
	AllowOrigins     []string
	AllowCredentials bool

	ExerciseHandler *httpH.ExerciseHandler
	ProductHandler  *httpH.ProductHandler
	HealthHandler   *httpH.HealthHandler
	APIInfoHandler  *httpH.APIInfoHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpMW.AttachRequestContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS(cfg.AllowOrigins, cfg.AllowCredentials))

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/api")
	})

	r.NoRoute(func(c *gin.Context) {
		response.RespondError(c, http.StatusNotFound, "NOT_FOUND",
			fmt.Errorf("route %s %s not found", c.Request.Method, c.Request.URL.Path),
			gin.H{
				"api":       "/api",
				"health":    "/api/health",
				"exercises": "/api/exercises",
				"products":  "/api/products",
			})
	})

	api := r.Group("/api")
	{
		if cfg.APIInfoHandler != nil {
			api.GET("", cfg.APIInfoHandler.Info)
		}

		if cfg.HealthHandler != nil {
			api.GET("/health", cfg.HealthHandler.Check)
			api.GET("/health/detailed", cfg.HealthHandler.Detailed)
		}

		if cfg.ExerciseHandler != nil {
			api.POST("/exercises/recommend", cfg.ExerciseHandler.Recommend)
			api.GET("/exercises", cfg.ExerciseHandler.List)
			api.GET("/exercises/:name", cfg.ExerciseHandler.Get)
		}

		if cfg.ProductHandler != nil {
			api.POST("/products/recommend", cfg.ProductHandler.Recommend)
			api.GET("/products", cfg.ProductHandler.List)
			api.GET("/products/:label", cfg.ProductHandler.Get)
		}
	}

	return r
}
