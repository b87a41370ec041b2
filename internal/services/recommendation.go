package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/posturelab/coach-backend/internal/catalog"
	"github.com/posturelab/coach-backend/internal/domain"
	"github.com/posturelab/coach-backend/internal/llm"
	"github.com/posturelab/coach-backend/internal/matching"
	"github.com/posturelab/coach-backend/internal/platform/apierr"
	"github.com/posturelab/coach-backend/internal/platform/logger"
	"github.com/posturelab/coach-backend/internal/prompts"
)

// RecommendationMeta reports how the model's free-text picks mapped back
// onto the catalogs.
type RecommendationMeta struct {
	Requested  int                       `json:"requested"`
	Resolved   int                       `json:"resolved"`
	Resolution []domain.ResolutionRecord `json:"resolution"`
	Unresolved []string                  `json:"unresolved,omitempty"`
}

type ExerciseRecommendation struct {
	Exercises []domain.ExerciseView
	Profile   domain.UserProfile
	Meta      RecommendationMeta
}

type ProductRecommendation struct {
	Products     []domain.ProductView
	ForExercises []string
	Meta         RecommendationMeta
}

// RecommendationConfig tunes name resolution and link rendering.
type RecommendationConfig struct {
	ExerciseTolerance int
	ProductTolerance  int
	ImageBaseURL      string
	ShopBaseURL       string
}

type RecommendationService struct {
	log       *logger.Logger
	llm       llm.Client
	exercises *catalog.ExerciseStore
	products  *catalog.ProductStore
	cfg       RecommendationConfig
}

func NewRecommendationService(
	log *logger.Logger,
	client llm.Client,
	exercises *catalog.ExerciseStore,
	products *catalog.ProductStore,
	cfg RecommendationConfig,
) *RecommendationService {
	return &RecommendationService{
		log:       log.With("service", "RecommendationService"),
		llm:       client,
		exercises: exercises,
		products:  products,
		cfg:       cfg,
	}
}

// RecommendExercises asks the model to pick exercises for the profile and
// resolves its answer back to catalog entries.
func (s *RecommendationService) RecommendExercises(ctx context.Context, profile domain.UserProfile) (*ExerciseRecommendation, error) {
	names := s.exercises.Names()
	if len(names) == 0 {
		return nil, apierr.New(http.StatusInternalServerError, "DATA_NOT_LOADED",
			fmt.Errorf("exercise catalog is empty"))
	}

	selected, err := s.selectNames(ctx,
		prompts.ExerciseSelection(profile, names),
		"selected_exercises", prompts.MaxExercises)
	if err != nil {
		return nil, err
	}

	res := matching.Resolve(selected, names, s.cfg.ExerciseTolerance)
	if len(res.Unresolved) > 0 {
		s.log.Warn("some exercises could not be resolved", "unresolved", res.Unresolved)
	}
	if len(res.Resolved) == 0 {
		return nil, apierr.New(http.StatusInternalServerError, "NO_EXERCISES_RESOLVED",
			fmt.Errorf("none of the model's exercise picks matched the catalog")).
			WithDetails(map[string]any{"requested": selected, "notFound": res.Unresolved})
	}

	views := make([]domain.ExerciseView, 0, len(res.Resolved))
	for _, ex := range s.exercises.GetMany(res.Resolved) {
		views = append(views, domain.NewExerciseView(ex, s.cfg.ImageBaseURL))
	}

	return &ExerciseRecommendation{
		Exercises: views,
		Profile:   profile,
		Meta: RecommendationMeta{
			Requested:  len(selected),
			Resolved:   len(res.Resolved),
			Resolution: res.Records,
			Unresolved: res.Unresolved,
		},
	}, nil
}

// RecommendProducts asks the model for products matching the named
// exercises. The names must already be canonical catalog entries.
func (s *RecommendationService) RecommendProducts(ctx context.Context, exerciseNames []string) (*ProductRecommendation, error) {
	exercises := s.exercises.GetMany(exerciseNames)
	if len(exercises) == 0 {
		return nil, apierr.New(http.StatusBadRequest, "NO_EXERCISES_FOUND",
			fmt.Errorf("none of the provided exercise names could be found")).
			WithDetails(map[string]any{"requested": exerciseNames})
	}

	labels := s.products.Labels()
	if len(labels) == 0 {
		return nil, apierr.New(http.StatusInternalServerError, "DATA_NOT_LOADED",
			fmt.Errorf("product catalog is empty"))
	}

	selected, err := s.selectNames(ctx,
		prompts.ProductSelection(exercises, labels),
		"selected_products", prompts.MaxProducts)
	if err != nil {
		return nil, err
	}

	res := matching.Resolve(selected, labels, s.cfg.ProductTolerance)
	if len(res.Unresolved) > 0 {
		s.log.Warn("some products could not be resolved", "unresolved", res.Unresolved)
	}
	if len(res.Resolved) == 0 {
		return nil, apierr.New(http.StatusInternalServerError, "NO_PRODUCTS_RESOLVED",
			fmt.Errorf("none of the model's product picks matched the catalog")).
			WithDetails(map[string]any{"requested": selected, "notFound": res.Unresolved})
	}

	forNames := make([]string, 0, len(exercises))
	for _, ex := range exercises {
		forNames = append(forNames, ex.Name)
	}

	views := make([]domain.ProductView, 0, len(res.Resolved))
	for _, p := range s.products.GetMany(res.Resolved) {
		views = append(views, domain.NewProductView(p, s.cfg.ShopBaseURL))
	}

	return &ProductRecommendation{
		Products:     views,
		ForExercises: forNames,
		Meta: RecommendationMeta{
			Requested:  len(selected),
			Resolved:   len(res.Resolved),
			Resolution: res.Records,
			Unresolved: res.Unresolved,
		},
	}, nil
}

// selectNames runs one completion and pulls the named string array out of
// the reply, truncated to max. A reply under max is tolerated so a partial
// recommendation still reaches the user.
func (s *RecommendationService) selectNames(ctx context.Context, messages []llm.Message, field string, max int) ([]string, error) {
	obj, err := s.llm.Complete(ctx, messages)
	if err != nil {
		return nil, err
	}

	names, ok := stringSlice(obj[field])
	if !ok {
		return nil, &llm.Error{Kind: llm.KindInvalidResponse, Msg: fmt.Sprintf("reply missing %s array", field)}
	}

	if len(names) > max {
		names = names[:max]
	}
	if len(names) < max {
		s.log.Warn("model returned fewer picks than requested",
			"field", field, "got", len(names), "want", max)
	}
	return names, nil
}

func stringSlice(v any) ([]string, bool) {
	raw, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		s, ok := item.(string)
		if !ok {
			continue
		}
		out = append(out, s)
	}
	return out, true
}
