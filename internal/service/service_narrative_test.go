package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/healthtrack-app/healthtrack/internal/llm"
	"github.com/healthtrack-app/healthtrack/internal/logger"
	"github.com/healthtrack-app/healthtrack/internal/mock"
	"github.com/healthtrack-app/healthtrack/internal/session"
	"github.com/healthtrack-app/healthtrack/models"
)

type narrativeFixture struct {
	svc       NarrativeService
	completer *mock.MockChatCompleter
	explainer *mock.MockExplainer
	sessions  *session.Store
}

func newNarrativeFixture(t *testing.T) narrativeFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	completer := mock.NewMockChatCompleter(ctrl)
	explainer := mock.NewMockExplainer(ctrl)
	sessions := session.NewStore()

	return narrativeFixture{
		svc:       NewNarrativeService(completer, explainer, sessions, logger.Nop()),
		completer: completer,
		explainer: explainer,
		sessions:  sessions,
	}
}

func explainedSession(sessions *session.Store, userID string) []models.FeatureContribution {
	rec := models.PredictionRecord{
		UserID:      userID,
		Prediction:  models.PredictionPresent,
		Probability: 0.71,
		Features:    models.FeatureVector{HighBP: 1, BMI: 35.9, PhysActivity: 0},
	}
	contributions := []models.FeatureContribution{
		{Feature: "BMI", Description: "Body Mass Index", Value: 0.12},
		{Feature: "HighBP", Description: "High blood pressure", Value: 0.08},
		{Feature: "PhysActivity", Description: "Physical activity in the past 30 days", Value: -0.05},
	}
	sessions.SetPredicted(userID, rec, "summary")
	sessions.SetExplained(userID, contributions)
	return contributions
}

func TestNarrativeService_Narrate_RequiresPrediction(t *testing.T) {
	f := newNarrativeFixture(t)

	_, err := f.svc.Narrate(context.Background(), "smith1")
	require.ErrorIs(t, err, ErrNoPredictionYet)
}

func TestNarrativeService_Narrate_UsesCachedAttribution(t *testing.T) {
	f := newNarrativeFixture(t)
	explainedSession(f.sessions, "smith1")

	// no Explain expectation: the cached attribution must be reused
	f.completer.EXPECT().
		Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("stay active and watch your weight", nil)

	response, err := f.svc.Narrate(context.Background(), "smith1")
	require.NoError(t, err)
	assert.Equal(t, "stay active and watch your weight", response.Narrative)
}

func TestNarrativeService_Narrate_PromptSpeaksHuman(t *testing.T) {
	f := newNarrativeFixture(t)
	explainedSession(f.sessions, "smith1")

	var system, user string
	f.completer.EXPECT().
		Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, systemPrompt, userPrompt string) (string, error) {
			system, user = systemPrompt, userPrompt
			return "ok", nil
		})

	_, err := f.svc.Narrate(context.Background(), "smith1")
	require.NoError(t, err)

	assert.Contains(t, system, "lifestyle advisor")

	// factors are described in plain language and grouped by direction
	assert.Contains(t, user, "Diabetes Present")
	assert.Contains(t, user, "Factors pushing the risk estimate up:")
	assert.Contains(t, user, "Body Mass Index")
	assert.Contains(t, user, "High blood pressure")
	assert.Contains(t, user, "Factors pushing the risk estimate down:")
	assert.Contains(t, user, "Physical activity in the past 30 days")
	assert.False(t, strings.Contains(user, "PhysActivity"), "prompts must never leak internal field names")
}

func TestNarrativeService_Narrate_ExplainsOnceWhenNotCached(t *testing.T) {
	f := newNarrativeFixture(t)

	rec := models.PredictionRecord{
		UserID:      "smith1",
		Prediction:  models.PredictionAbsent,
		Probability: 0.84,
		Features:    models.FeatureVector{BMI: 23.5},
	}
	f.sessions.SetPredicted("smith1", rec, "summary")

	contributions := []models.FeatureContribution{
		{Feature: "BMI", Description: "Body Mass Index", Value: -0.1},
	}
	f.explainer.EXPECT().Explain(rec.Features).Return(contributions, nil)
	f.completer.EXPECT().
		Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("keep it up", nil).
		Times(2)

	_, err := f.svc.Narrate(context.Background(), "smith1")
	require.NoError(t, err)

	// second call must serve the now-cached attribution
	_, err = f.svc.Narrate(context.Background(), "smith1")
	require.NoError(t, err)

	sess, ok := f.sessions.Get("smith1")
	require.True(t, ok)
	assert.Equal(t, session.StateExplained, sess.State)
	assert.Equal(t, contributions, sess.Contributions)
}

func TestNarrativeService_Narrate_BackendFailure(t *testing.T) {
	f := newNarrativeFixture(t)
	explainedSession(f.sessions, "smith1")

	f.completer.EXPECT().
		Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", llm.ErrNarrativeService)

	_, err := f.svc.Narrate(context.Background(), "smith1")
	require.ErrorIs(t, err, llm.ErrNarrativeService)
}

func TestNarrativeService_Narrate_AttributionFailure(t *testing.T) {
	f := newNarrativeFixture(t)
	f.sessions.SetPredicted("smith1", models.PredictionRecord{UserID: "smith1"}, "summary")

	f.explainer.EXPECT().Explain(gomock.Any()).Return(nil, assert.AnError)

	_, err := f.svc.Narrate(context.Background(), "smith1")
	require.ErrorIs(t, err, assert.AnError)
}
