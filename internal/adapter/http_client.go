package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/healthtrack-app/healthtrack/models"
)

// HTTPClientConfig configures the server adapter.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter builds a ServerAdapter for the given base URL.
func NewHTTPServerAdapter(cfg HTTPClientConfig) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli}
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	h.mu.RLock()
	token := h.token
	h.mu.RUnlock()

	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token)
}

func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/auth/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var body struct {
		models.User
		Token string `json:"token"`
	}
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return models.User{}, fmt.Errorf("decode login response: %w", err)
	}
	if body.Token == "" {
		return models.User{}, fmt.Errorf("login response without token: %w", ErrServerFailure)
	}

	h.SetToken(body.Token)
	return body.User, nil
}

func (h *httpServerAdapter) Predict(ctx context.Context, input models.PredictionInput) (models.PredictionResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(input).
		Post("/api/predictions")
	if err != nil {
		return models.PredictionResponse{}, fmt.Errorf("predict request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PredictionResponse{}, err
	}

	var result models.PredictionResponse
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.PredictionResponse{}, fmt.Errorf("decode predict response: %w", err)
	}

	return result, nil
}

func (h *httpServerAdapter) Narrative(ctx context.Context) (models.NarrativeResponse, error) {
	resp, err := h.authedRequest(ctx).Post("/api/predictions/narrative")
	if err != nil {
		return models.NarrativeResponse{}, fmt.Errorf("narrative request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.NarrativeResponse{}, err
	}

	var result models.NarrativeResponse
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.NarrativeResponse{}, fmt.Errorf("decode narrative response: %w", err)
	}

	return result, nil
}

func (h *httpServerAdapter) History(ctx context.Context) ([]models.PredictionRecord, error) {
	resp, err := h.authedRequest(ctx).Get("/api/dashboard")
	if err != nil {
		return nil, fmt.Errorf("history request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var records []models.PredictionRecord
	if err = json.Unmarshal(resp.Body(), &records); err != nil {
		return nil, fmt.Errorf("decode history response: %w", err)
	}

	return records, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (models.VersionResponse, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version/")
	if err != nil {
		return models.VersionResponse{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VersionResponse{}, err
	}

	var version models.VersionResponse
	if err = json.Unmarshal(resp.Body(), &version); err != nil {
		return models.VersionResponse{}, fmt.Errorf("decode version response: %w", err)
	}

	return version, nil
}

// mapHTTPError translates a non-success response into a sentinel error the
// command-line tool can present.
func mapHTTPError(resp *resty.Response) error {
	switch {
	case resp.StatusCode() < 300:
		return nil
	case resp.StatusCode() == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, strings.TrimSpace(string(resp.Body())))
	case resp.StatusCode() == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, strings.TrimSpace(string(resp.Body())))
	case resp.StatusCode() == http.StatusConflict:
		return ErrNoPredictionYet
	default:
		return fmt.Errorf("%w: status %d", ErrServerFailure, resp.StatusCode())
	}
}
