package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/posturelab/coach-backend/internal/pkg/httpx"
	"github.com/posturelab/coach-backend/internal/platform/logger"
)

// Client completes a chat exchange and returns the JSON object the model
// was asked to produce.
type Client interface {
	Complete(ctx context.Context, messages []Message) (map[string]any, error)
}

// Config carries everything the chat client needs; the app layer fills it
// from the environment.
type Config struct {
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
	MaxRetries  int // total attempt count, not extra attempts after the first
	RetryDelay  time.Duration
	Timeout     time.Duration
}

type chatClient struct {
	log        *logger.Logger
	cfg        Config
	httpClient *http.Client
}

func NewClient(log *logger.Logger, cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("missing LLM API key")
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("missing LLM base URL")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	return &chatClient{
		log:        log.With("service", "LLMClient"),
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

type httpError struct {
	StatusCode int
	Body       string
}

func (e *httpError) Error() string {
	return fmt.Sprintf("llm http %d: %s", e.StatusCode, e.Body)
}

func (e *httpError) HTTPStatusCode() int { return e.StatusCode }

var errEmptyChoices = errors.New("llm reply carried no message content")

type chatRequest struct {
	Model          string    `json:"model"`
	Messages       []Message `json:"messages"`
	Temperature    float64   `json:"temperature"`
	MaxTokens      int       `json:"max_tokens"`
	ResponseFormat *respFmt  `json:"response_format,omitempty"`
}

type respFmt struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *chatClient) Complete(ctx context.Context, messages []Message) (map[string]any, error) {
	backoff := c.cfg.RetryDelay
	if backoff <= 0 {
		backoff = time.Second
	}
	maxAttempts := c.cfg.MaxRetries
	if maxAttempts <= 0 {
		maxAttempts = 1
	}

	var lastErr error
	var lastStatus int

	for attempt := 0; attempt < maxAttempts; attempt++ {
		if ctx.Err() != nil {
			return nil, newError(KindTimeout, "context done before request", ctx.Err())
		}

		content, resp, err := c.completeOnce(ctx, messages)
		if err == nil {
			obj, perr := ExtractJSON(content)
			if perr != nil {
				// an unusable body will not get better on retry
				return nil, newError(KindInvalidResponse, "no JSON object in model reply",
					fmt.Errorf("%w; content: %s", perr, content))
			}
			return obj, nil
		}

		if errors.Is(err, errEmptyChoices) {
			return nil, newError(KindInvalidResponse, "model reply had no content", err)
		}
		// a dead caller context is final; a transport timeout is retried
		if ctx.Err() != nil {
			return nil, newError(KindTimeout, "context done", ctx.Err())
		}

		// only throttling and transport timeouts get another attempt; any
		// other upstream status fails with its code and body intact
		var herr *httpError
		if errors.As(err, &herr) {
			if herr.StatusCode != http.StatusTooManyRequests {
				return nil, newError(KindHTTPError, "request failed", err)
			}
		} else if !httpx.IsRetryableError(err) {
			return nil, newError(KindHTTPError, "request failed", err)
		}

		lastErr = err
		lastStatus = 0
		if herr != nil {
			lastStatus = herr.StatusCode
		}

		if attempt == maxAttempts-1 {
			break
		}

		sleepFor := backoff
		if resp != nil {
			sleepFor = httpx.RetryAfterDuration(resp, backoff, 10*time.Second)
		}
		sleepFor = httpx.JitterSleep(sleepFor)

		c.log.Warn("LLM request retrying",
			"attempt", attempt+1,
			"max_attempts", maxAttempts,
			"status", lastStatus,
			"sleep", sleepFor.String(),
			"error", err.Error(),
		)

		select {
		case <-time.After(sleepFor):
		case <-ctx.Done():
			return nil, newError(KindTimeout, "context done during backoff", ctx.Err())
		}
		backoff *= 2
	}

	if lastStatus == http.StatusTooManyRequests {
		return nil, newError(KindRateLimit, "rate limited after retries", lastErr)
	}
	var netErr net.Error
	if errors.Is(lastErr, context.DeadlineExceeded) || (errors.As(lastErr, &netErr) && netErr.Timeout()) {
		return nil, newError(KindTimeout, fmt.Sprintf("timed out after %d attempts", maxAttempts), lastErr)
	}
	return nil, newError(KindRetriesExhausted, fmt.Sprintf("gave up after %d attempts", maxAttempts), lastErr)
}

func (c *chatClient) completeOnce(ctx context.Context, messages []Message) (string, *http.Response, error) {
	body := chatRequest{
		Model:          c.cfg.Model,
		Messages:       messages,
		Temperature:    c.cfg.Temperature,
		MaxTokens:      c.cfg.MaxTokens,
		ResponseFormat: &respFmt{Type: "json_object"},
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return "", nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/chat/completions", &buf)
	if err != nil {
		return "", nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", nil, err
	}

	raw, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return "", resp, readErr
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", resp, &httpError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var parsed chatResponse
	if uErr := json.Unmarshal(raw, &parsed); uErr != nil {
		return "", resp, fmt.Errorf("llm decode error: %w", uErr)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", resp, errEmptyChoices
	}
	return parsed.Choices[0].Message.Content, resp, nil
}
