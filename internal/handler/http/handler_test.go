package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthtrack-app/healthtrack/internal/features"
	"github.com/healthtrack-app/healthtrack/internal/logger"
	"github.com/healthtrack-app/healthtrack/internal/service"
	"github.com/healthtrack-app/healthtrack/internal/store"
	"github.com/healthtrack-app/healthtrack/models"
)

// ─────────────────────────────────────────────
// Stub services
// ─────────────────────────────────────────────

type stubAuthService struct {
	loginFn    func(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error)
	validateFn func(ctx context.Context, tokenString string) (models.Token, error)
}

func (s *stubAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error) {
	if s.loginFn != nil {
		return s.loginFn(ctx, req)
	}
	return models.User{}, models.Token{}, nil
}

func (s *stubAuthService) ValidateToken(ctx context.Context, tokenString string) (models.Token, error) {
	if s.validateFn != nil {
		return s.validateFn(ctx, tokenString)
	}
	return models.Token{UserID: "smith1"}, nil
}

type stubPredictionService struct {
	predictFn func(ctx context.Context, userID string, input models.PredictionInput) (models.PredictionResponse, error)
}

func (s *stubPredictionService) Predict(ctx context.Context, userID string, input models.PredictionInput) (models.PredictionResponse, error) {
	if s.predictFn != nil {
		return s.predictFn(ctx, userID, input)
	}
	return models.PredictionResponse{}, nil
}

type stubNarrativeService struct {
	narrateFn func(ctx context.Context, userID string) (models.NarrativeResponse, error)
}

func (s *stubNarrativeService) Narrate(ctx context.Context, userID string) (models.NarrativeResponse, error) {
	if s.narrateFn != nil {
		return s.narrateFn(ctx, userID)
	}
	return models.NarrativeResponse{}, nil
}

type stubDashboardService struct {
	historyFn func(ctx context.Context, userID string) ([]models.PredictionRecord, error)
	usersFn   func(ctx context.Context) ([]models.DashboardUser, error)
	emailFn   func(ctx context.Context, userID, email string) error
}

func (s *stubDashboardService) History(ctx context.Context, userID string) ([]models.PredictionRecord, error) {
	if s.historyFn != nil {
		return s.historyFn(ctx, userID)
	}
	return nil, nil
}

func (s *stubDashboardService) Users(ctx context.Context) ([]models.DashboardUser, error) {
	if s.usersFn != nil {
		return s.usersFn(ctx)
	}
	return nil, nil
}

func (s *stubDashboardService) EmailReport(ctx context.Context, userID, email string) error {
	if s.emailFn != nil {
		return s.emailFn(ctx, userID, email)
	}
	return nil
}

type stubAppInfoService struct {
	version string
}

func (s *stubAppInfoService) Version(_ context.Context) models.VersionResponse {
	return models.VersionResponse{Version: s.version}
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestRouter(t *testing.T, services *service.Services) http.Handler {
	t.Helper()

	if services.AuthService == nil {
		services.AuthService = &stubAuthService{}
	}
	if services.PredictionService == nil {
		services.PredictionService = &stubPredictionService{}
	}
	if services.NarrativeService == nil {
		services.NarrativeService = &stubNarrativeService{}
	}
	if services.DashboardService == nil {
		services.DashboardService = &stubDashboardService{}
	}
	if services.AppInfoService == nil {
		services.AppInfoService = &stubAppInfoService{version: "N/A"}
	}

	return NewHandler(services, logger.Nop()).Init()
}

func doRequest(t *testing.T, router http.Handler, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestLogin(t *testing.T) {
	router := newTestRouter(t, &service.Services{
		AuthService: &stubAuthService{
			loginFn: func(_ context.Context, req models.LoginRequest) (models.User, models.Token, error) {
				assert.Equal(t, "John Smith", req.Name)
				assert.Equal(t, "john@example.com", req.Email)
				return models.User{Name: req.Name, Email: req.Email, UniqueID: "smith1"},
					models.Token{SignedString: "signed-token", UserID: "smith1"}, nil
			},
		},
	})

	rec := doRequest(t, router, http.MethodPost, "/api/auth/login", "",
		models.LoginRequest{Name: "John Smith", Email: "john@example.com"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer signed-token", rec.Header().Get("Authorization"))

	var resp struct {
		models.User
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "smith1", resp.UniqueID)
	assert.Equal(t, "signed-token", resp.Token)
}

func TestLogin_InvalidJSON(t *testing.T) {
	router := newTestRouter(t, &service.Services{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("{broken"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_AmbiguousIdentification(t *testing.T) {
	router := newTestRouter(t, &service.Services{
		AuthService: &stubAuthService{
			loginFn: func(_ context.Context, _ models.LoginRequest) (models.User, models.Token, error) {
				return models.User{}, models.Token{}, service.ErrInvalidDataProvided
			},
		},
	})

	rec := doRequest(t, router, http.MethodPost, "/api/auth/login", "", models.LoginRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_UnknownUniqueID(t *testing.T) {
	router := newTestRouter(t, &service.Services{
		AuthService: &stubAuthService{
			loginFn: func(_ context.Context, _ models.LoginRequest) (models.User, models.Token, error) {
				return models.User{}, models.Token{}, store.ErrNoUserWasFound
			},
		},
	})

	rec := doRequest(t, router, http.MethodPost, "/api/auth/login", "",
		models.LoginRequest{UniqueID: "ghost1"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown unique_id")
}

// ─────────────────────────────────────────────
// Authorization middleware
// ─────────────────────────────────────────────

func TestProtectedRoutes_RequireToken(t *testing.T) {
	router := newTestRouter(t, &service.Services{})

	targets := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/predictions"},
		{http.MethodPost, "/api/predictions/narrative"},
		{http.MethodGet, "/api/dashboard"},
		{http.MethodGet, "/api/dashboard/users"},
		{http.MethodPost, "/api/dashboard/email"},
	}

	for _, target := range targets {
		rec := doRequest(t, router, target.method, target.path, "", nil)
		assert.Equalf(t, http.StatusUnauthorized, rec.Code, "%s %s without a token", target.method, target.path)
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	router := newTestRouter(t, &service.Services{
		AuthService: &stubAuthService{
			validateFn: func(_ context.Context, _ string) (models.Token, error) {
				return models.Token{}, service.ErrTokenIsExpired
			},
		},
	})

	rec := doRequest(t, router, http.MethodGet, "/api/dashboard", "stale-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), service.ErrTokenIsExpired.Error())
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	token, err := getTokenFromAuthHeader("Bearer abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	_, err = getTokenFromAuthHeader("Bearer")
	require.ErrorIs(t, err, ErrInvalidAuthorizationHeader)

	_, err = getTokenFromAuthHeader("Bearer ")
	require.ErrorIs(t, err, ErrEmptyToken)
}

// ─────────────────────────────────────────────
// Predictions
// ─────────────────────────────────────────────

func TestPredict(t *testing.T) {
	router := newTestRouter(t, &service.Services{
		PredictionService: &stubPredictionService{
			predictFn: func(_ context.Context, userID string, _ models.PredictionInput) (models.PredictionResponse, error) {
				assert.Equal(t, "smith1", userID)
				return models.PredictionResponse{
					Prediction:  models.PredictionPresent,
					Probability: 0.71,
					Summary:     "The model predicts: Diabetes Present with 71.00% probability",
				}, nil
			},
		},
	})

	rec := doRequest(t, router, http.MethodPost, "/api/predictions", "valid-token", models.PredictionInput{})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.PredictionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.PredictionPresent, resp.Prediction)
	assert.InDelta(t, 0.71, resp.Probability, 1e-12)
}

func TestPredict_ValidationErrorIsEchoed(t *testing.T) {
	router := newTestRouter(t, &service.Services{
		PredictionService: &stubPredictionService{
			predictFn: func(_ context.Context, _ string, _ models.PredictionInput) (models.PredictionResponse, error) {
				return models.PredictionResponse{}, features.ErrValidation
			},
		},
	})

	rec := doRequest(t, router, http.MethodPost, "/api/predictions", "valid-token", models.PredictionInput{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), features.ErrValidation.Error())
}

func TestNarrative_WithoutPrediction(t *testing.T) {
	router := newTestRouter(t, &service.Services{
		NarrativeService: &stubNarrativeService{
			narrateFn: func(_ context.Context, _ string) (models.NarrativeResponse, error) {
				return models.NarrativeResponse{}, service.ErrNoPredictionYet
			},
		},
	})

	rec := doRequest(t, router, http.MethodPost, "/api/predictions/narrative", "valid-token", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

// ─────────────────────────────────────────────
// Dashboard
// ─────────────────────────────────────────────

func TestHistory(t *testing.T) {
	router := newTestRouter(t, &service.Services{
		DashboardService: &stubDashboardService{
			historyFn: func(_ context.Context, userID string) ([]models.PredictionRecord, error) {
				assert.Equal(t, "smith1", userID)
				return []models.PredictionRecord{
					{UserID: "smith1", Date: "2026-08-30", Prediction: models.PredictionPresent, Probability: 0.71},
				}, nil
			},
		},
	})

	rec := doRequest(t, router, http.MethodGet, "/api/dashboard", "valid-token", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var records []models.PredictionRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "2026-08-30", records[0].Date)
}

func TestEmailReport(t *testing.T) {
	router := newTestRouter(t, &service.Services{
		DashboardService: &stubDashboardService{
			emailFn: func(_ context.Context, userID, email string) error {
				assert.Equal(t, "smith1", userID)
				assert.Equal(t, "john@example.com", email)
				return nil
			},
		},
	})

	rec := doRequest(t, router, http.MethodPost, "/api/dashboard/email", "valid-token",
		models.EmailReportRequest{Email: "john@example.com"})

	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestEmailReport_NoHistory(t *testing.T) {
	router := newTestRouter(t, &service.Services{
		DashboardService: &stubDashboardService{
			emailFn: func(_ context.Context, _, _ string) error {
				return service.ErrNoHistory
			},
		},
	})

	rec := doRequest(t, router, http.MethodPost, "/api/dashboard/email", "valid-token",
		models.EmailReportRequest{Email: "john@example.com"})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// Public endpoints
// ─────────────────────────────────────────────

func TestGetServerVersion(t *testing.T) {
	router := newTestRouter(t, &service.Services{
		AppInfoService: &stubAppInfoService{version: "1.2.3"},
	})

	rec := doRequest(t, router, http.MethodGet, "/api/version/", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.VersionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "1.2.3", resp.Version)
}

func TestDemoProfiles(t *testing.T) {
	router := newTestRouter(t, &service.Services{})

	rec := doRequest(t, router, http.MethodGet, "/api/profiles", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var profiles []DemoProfile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profiles))
	require.Len(t, profiles, 3)
	for _, p := range profiles {
		assert.NotEmpty(t, p.Title)
		assert.NotNil(t, p.Input.GenHlth)
	}
}

func TestMetricsEndpointIsPublic(t *testing.T) {
	router := newTestRouter(t, &service.Services{})

	rec := doRequest(t, router, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
