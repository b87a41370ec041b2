package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/posturelab/coach-backend/internal/llm"
	"github.com/posturelab/coach-backend/internal/platform/apierr"
)

// ErrorEnvelope is the shape every failed request returns.
type ErrorEnvelope struct {
	Error   bool   `json:"error"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func RespondError(c *gin.Context, status int, code string, err error, details any) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error:   true,
		Code:    code,
		Message: msg,
		Details: details,
	})
}

// RespondFailure maps known error types to their HTTP shape. Service-layer
// *apierr.Error carries its own status and code; gateway *llm.Error is a
// provider failure and surfaces as 503.
func RespondFailure(c *gin.Context, err error) {
	var aerr *apierr.Error
	if errors.As(err, &aerr) {
		RespondError(c, aerr.Status, aerr.Code, aerr, aerr.Details)
		return
	}

	var lerr *llm.Error
	if errors.As(err, &lerr) {
		RespondError(c, http.StatusServiceUnavailable, llmErrorCode(lerr.Kind), lerr, nil)
		return
	}

	RespondError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err, nil)
}

func llmErrorCode(kind llm.ErrorKind) string {
	switch kind {
	case llm.KindTimeout:
		return "LLM_TIMEOUT"
	case llm.KindRateLimit:
		return "LLM_RATE_LIMIT"
	case llm.KindInvalidResponse:
		return "LLM_INVALID_RESPONSE"
	case llm.KindRetriesExhausted:
		return "LLM_RETRY_EXHAUSTED"
	default:
		return "LLM_HTTP_ERROR"
	}
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}
