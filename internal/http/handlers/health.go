package handlers

import (
	"runtime"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/posturelab/coach-backend/internal/catalog"
	"github.com/posturelab/coach-backend/internal/http/response"
)

type HealthHandler struct {
	exercises *catalog.ExerciseStore
	products  *catalog.ProductStore
	startedAt time.Time
	version   string
}

func NewHealthHandler(exercises *catalog.ExerciseStore, products *catalog.ProductStore, version string) *HealthHandler {
	return &HealthHandler{
		exercises: exercises,
		products:  products,
		startedAt: time.Now(),
		version:   version,
	}
}

// GET /api/health
func (h *HealthHandler) Check(c *gin.Context) {
	response.RespondOK(c, gin.H{
		"status":          "ok",
		"timestamp":       time.Now().UTC().Format(time.RFC3339),
		"uptime":          time.Since(h.startedAt).Seconds(),
		"exercisesLoaded": h.exercises.Len(),
		"productsLoaded":  h.products.Len(),
		"dataInitialized": h.exercises.Len() > 0 && h.products.Len() > 0,
	})
}

// GET /api/health/detailed
func (h *HealthHandler) Detailed(c *gin.Context) {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	uptime := time.Since(h.startedAt)
	response.RespondOK(c, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"server": gin.H{
			"uptime":          uptime.Seconds(),
			"uptimeFormatted": uptime.Round(time.Second).String(),
			"goVersion":       runtime.Version(),
			"platform":        runtime.GOOS,
			"arch":            runtime.GOARCH,
			"version":         h.version,
		},
		"memory": gin.H{
			"heapAlloc":  mem.HeapAlloc,
			"heapSys":    mem.HeapSys,
			"sys":        mem.Sys,
			"numGC":      mem.NumGC,
			"goroutines": runtime.NumGoroutine(),
		},
		"data": gin.H{
			"initialized":     h.exercises.Len() > 0 && h.products.Len() > 0,
			"exercisesLoaded": h.exercises.Len(),
			"productsLoaded":  h.products.Len(),
		},
	})
}
