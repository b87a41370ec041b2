package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/posturelab/coach-backend/internal/catalog"
	"github.com/posturelab/coach-backend/internal/domain"
	"github.com/posturelab/coach-backend/internal/http/response"
	"github.com/posturelab/coach-backend/internal/platform/logger"
	"github.com/posturelab/coach-backend/internal/services"
)

type ExerciseHandler struct {
	log          *logger.Logger
	svc          *services.RecommendationService
	store        *catalog.ExerciseStore
	imageBaseURL string
}

func NewExerciseHandler(log *logger.Logger, svc *services.RecommendationService, store *catalog.ExerciseStore, imageBaseURL string) *ExerciseHandler {
	return &ExerciseHandler{
		log:          log.With("handler", "ExerciseHandler"),
		svc:          svc,
		store:        store,
		imageBaseURL: imageBaseURL,
	}
}

// POST /api/exercises/recommend
// The questionnaire may arrive either bare or wrapped in a "questionnaire"
// object; clients have shipped both shapes.
func (h *ExerciseHandler) Recommend(c *gin.Context) {
	var req struct {
		Questionnaire *domain.QuestionnaireAnswers `json:"questionnaire"`
		domain.QuestionnaireAnswers
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR",
			fmt.Errorf("invalid request body"), err.Error())
		return
	}

	answers := req.QuestionnaireAnswers
	if req.Questionnaire != nil {
		answers = *req.Questionnaire
	}
	profile := domain.ProfileFromQuestionnaire(answers)

	rec, err := h.svc.RecommendExercises(c.Request.Context(), profile)
	if err != nil {
		h.log.Error("exercise recommendation failed", "error", err.Error())
		response.RespondFailure(c, err)
		return
	}

	response.RespondOK(c, gin.H{
		"success":   true,
		"exercises": rec.Exercises,
		"meta": gin.H{
			"requested":   rec.Meta.Requested,
			"resolved":    rec.Meta.Resolved,
			"resolution":  rec.Meta.Resolution,
			"unresolved":  rec.Meta.Unresolved,
			"userProfile": rec.Profile,
		},
	})
}

// GET /api/exercises
func (h *ExerciseHandler) List(c *gin.Context) {
	limit := intQuery(c, "limit", 50)
	offset := intQuery(c, "offset", 0)

	filter := catalog.ExerciseFilter{
		Level:     c.Query("level"),
		Equipment: c.Query("equipment"),
		Category:  c.Query("category"),
		Muscle:    c.Query("muscle"),
	}

	entries, filtered := h.store.List(filter, limit, offset)
	views := make([]domain.ExerciseView, 0, len(entries))
	for _, e := range entries {
		views = append(views, domain.NewExerciseView(e, h.imageBaseURL))
	}

	response.RespondOK(c, gin.H{
		"success":   true,
		"exercises": views,
		"meta": gin.H{
			"total":    h.store.Len(),
			"filtered": filtered,
			"returned": len(views),
			"limit":    limit,
			"offset":   offset,
		},
	})
}

// GET /api/exercises/:name
func (h *ExerciseHandler) Get(c *gin.Context) {
	name := c.Param("name")

	exercise, ok := h.store.Get(name)
	if !ok {
		response.RespondError(c, http.StatusNotFound, "EXERCISE_NOT_FOUND",
			fmt.Errorf("exercise %q not found", name), nil)
		return
	}

	response.RespondOK(c, gin.H{
		"success":  true,
		"exercise": domain.NewExerciseView(exercise, h.imageBaseURL),
	})
}

func intQuery(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
