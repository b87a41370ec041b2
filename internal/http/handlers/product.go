package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/posturelab/coach-backend/internal/catalog"
	"github.com/posturelab/coach-backend/internal/domain"
	"github.com/posturelab/coach-backend/internal/http/response"
	"github.com/posturelab/coach-backend/internal/platform/logger"
	"github.com/posturelab/coach-backend/internal/services"
)

type ProductHandler struct {
	log         *logger.Logger
	svc         *services.RecommendationService
	store       *catalog.ProductStore
	shopBaseURL string
}

func NewProductHandler(log *logger.Logger, svc *services.RecommendationService, store *catalog.ProductStore, shopBaseURL string) *ProductHandler {
	return &ProductHandler{
		log:         log.With("handler", "ProductHandler"),
		svc:         svc,
		store:       store,
		shopBaseURL: shopBaseURL,
	}
}

// POST /api/products/recommend
// body: { "exercises": ["name", ...] } — exerciseIds and exerciseNames are
// accepted as aliases.
func (h *ProductHandler) Recommend(c *gin.Context) {
	var req struct {
		ExerciseIDs   []string `json:"exerciseIds"`
		ExerciseNames []string `json:"exerciseNames"`
		Exercises     []string `json:"exercises"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR",
			fmt.Errorf("invalid request body"), err.Error())
		return
	}

	names := req.ExerciseIDs
	if len(names) == 0 {
		names = req.ExerciseNames
	}
	if len(names) == 0 {
		names = req.Exercises
	}
	if len(names) == 0 {
		response.RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR",
			fmt.Errorf("invalid request body"),
			[]string{"exerciseIds (or exerciseNames/exercises) is required and must contain at least one exercise"})
		return
	}

	rec, err := h.svc.RecommendProducts(c.Request.Context(), names)
	if err != nil {
		h.log.Error("product recommendation failed", "error", err.Error())
		response.RespondFailure(c, err)
		return
	}

	response.RespondOK(c, gin.H{
		"success":  true,
		"products": rec.Products,
		"meta": gin.H{
			"requested":    rec.Meta.Requested,
			"resolved":     rec.Meta.Resolved,
			"resolution":   rec.Meta.Resolution,
			"unresolved":   rec.Meta.Unresolved,
			"forExercises": rec.ForExercises,
		},
	})
}

// GET /api/products
func (h *ProductHandler) List(c *gin.Context) {
	limit := intQuery(c, "limit", 50)
	offset := intQuery(c, "offset", 0)
	search := c.Query("search")

	entries, filtered := h.store.Search(search, limit, offset)
	views := make([]domain.ProductView, 0, len(entries))
	for _, p := range entries {
		views = append(views, domain.NewProductView(p, h.shopBaseURL))
	}

	response.RespondOK(c, gin.H{
		"success":  true,
		"products": views,
		"meta": gin.H{
			"total":    h.store.Len(),
			"filtered": filtered,
			"returned": len(views),
			"limit":    limit,
			"offset":   offset,
		},
	})
}

// GET /api/products/:label
func (h *ProductHandler) Get(c *gin.Context) {
	label := c.Param("label")

	product, ok := h.store.Get(label)
	if !ok {
		response.RespondError(c, http.StatusNotFound, "PRODUCT_NOT_FOUND",
			fmt.Errorf("product %q not found", label), nil)
		return
	}

	response.RespondOK(c, gin.H{
		"success": true,
		"product": domain.NewProductView(product, h.shopBaseURL),
	})
}
