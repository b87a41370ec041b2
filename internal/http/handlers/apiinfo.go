package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/posturelab/coach-backend/internal/catalog"
	"github.com/posturelab/coach-backend/internal/http/response"
)

type APIInfoHandler struct {
	exercises *catalog.ExerciseStore
	products  *catalog.ProductStore
	version   string
}

func NewAPIInfoHandler(exercises *catalog.ExerciseStore, products *catalog.ProductStore, version string) *APIInfoHandler {
	return &APIInfoHandler{exercises: exercises, products: products, version: version}
}

// GET /api
func (h *APIInfoHandler) Info(c *gin.Context) {
	response.RespondOK(c, gin.H{
		"name":        "Posture Coach API",
		"version":     h.version,
		"description": "Backend API for sports posture coaching with LLM-powered recommendations",
		"endpoints": gin.H{
			"health": gin.H{
				"GET /api/health":          "Basic health check",
				"GET /api/health/detailed": "Detailed server status",
			},
			"exercises": gin.H{
				"POST /api/exercises/recommend": "Get personalized exercise recommendations",
				"GET /api/exercises":            "List all exercises (with filters)",
				"GET /api/exercises/:name":      "Get single exercise by name",
			},
			"products": gin.H{
				"POST /api/products/recommend": "Get product recommendations for exercises",
				"GET /api/products":            "List all products (with search)",
				"GET /api/products/:label":     "Get single product by label",
			},
		},
		"documentation": gin.H{
			"exercises": gin.H{
				"totalAvailable": h.exercises.Len(),
				"recommendationInput": gin.H{
					"fitnessLevel":  "beginner | intermediate | expert",
					"goals":         "Array of fitness goals",
					"painAreas":     "Array of pain areas",
					"equipment":     "Array of equipment types",
					"activityLevel": "Current activity level",
					"availableTime": "Minutes available per session",
				},
			},
			"products": gin.H{
				"totalAvailable": h.products.Len(),
				"recommendationInput": gin.H{
					"exercises": "Array of exercise names to get products for",
				},
			},
		},
	})
}
