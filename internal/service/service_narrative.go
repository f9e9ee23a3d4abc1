// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/healthtrack-app/healthtrack/internal/llm"
	"github.com/healthtrack-app/healthtrack/internal/logger"
	"github.com/healthtrack-app/healthtrack/internal/metrics"
	"github.com/healthtrack-app/healthtrack/internal/session"
	"github.com/healthtrack-app/healthtrack/models"
)

// systemPrompt frames the completion model as a cautious lifestyle advisor.
const systemPrompt = "You are a health lifestyle advisor. You explain diabetes risk factors " +
	"to laypeople in plain, encouraging language. You give practical lifestyle advice only; " +
	"you never diagnose and you always recommend consulting a medical professional."

// narrativeService verbalises the session's cached attribution through the
// chat-completion backend. It never recomputes Shapley values itself: a
// session without a cached attribution falls back to the explainer once and
// caches the result.
type narrativeService struct {
	completer llm.ChatCompleter
	explainer Explainer
	sessions  *session.Store
	logger    *logger.Logger
}

// NewNarrativeService wires the narrative generator.
func NewNarrativeService(completer llm.ChatCompleter, explainer Explainer, sessions *session.Store, logger *logger.Logger) NarrativeService {
	return &narrativeService{
		completer: completer,
		explainer: explainer,
		sessions:  sessions,
		logger:    logger,
	}
}

// Narrate produces lifestyle advice for the session's current prediction.
//
// Returns ErrNoPredictionYet when the user has not run a prediction this
// session, or a wrapped llm.ErrNarrativeService when the completion backend
// fails. Backend failures are never retried.
func (n *narrativeService) Narrate(ctx context.Context, userID string) (models.NarrativeResponse, error) {
	log := logger.FromContext(ctx)
	started := time.Now()

	sess, ok := n.sessions.Get(userID)
	if !ok || sess.State == session.StateNotPredicted {
		return models.NarrativeResponse{}, ErrNoPredictionYet
	}

	contributions := sess.Contributions
	if sess.State != session.StateExplained {
		var err error
		contributions, err = n.explainer.Explain(sess.Record.Features)
		if err != nil {
			log.Err(err).Str("unique_id", userID).Msg("attribution failed for narrative")
			metrics.RecordNarrativeRequest("error")
			return models.NarrativeResponse{}, err
		}
		n.sessions.SetExplained(userID, contributions)
	}

	prompt := buildNarrativePrompt(sess.Record, contributions)

	narrative, err := n.completer.Complete(ctx, systemPrompt, prompt)
	if err != nil {
		log.Err(err).Str("unique_id", userID).Msg("narrative generation failed")
		metrics.RecordNarrativeRequest("error")
		return models.NarrativeResponse{}, err
	}

	metrics.RecordNarrativeRequest("ok")
	metrics.RecordNarrativeLatency(time.Since(started).Seconds())

	return models.NarrativeResponse{Narrative: narrative}, nil
}

// buildNarrativePrompt renders the attribution into the user prompt. Factors
// are split into risk-increasing and risk-decreasing groups and described by
// their human-readable descriptions, never by internal field names.
func buildNarrativePrompt(rec models.PredictionRecord, contributions []models.FeatureContribution) string {
	var increasing, decreasing []string
	for _, c := range contributions {
		line := fmt.Sprintf("- %s (impact %.4f)", c.Description, c.Value)
		if c.Value > 0 {
			increasing = append(increasing, line)
		} else if c.Value < 0 {
			decreasing = append(decreasing, line)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "A diabetes risk model assessed a person and predicted: %s (%.2f%% probability).\n\n",
		rec.Prediction, rec.Probability*100)

	b.WriteString("Factors pushing the risk estimate up:\n")
	if len(increasing) == 0 {
		b.WriteString("- none\n")
	} else {
		b.WriteString(strings.Join(increasing, "\n"))
		b.WriteString("\n")
	}

	b.WriteString("\nFactors pushing the risk estimate down:\n")
	if len(decreasing) == 0 {
		b.WriteString("- none\n")
	} else {
		b.WriteString(strings.Join(decreasing, "\n"))
		b.WriteString("\n")
	}

	b.WriteString("\nWrite a short, friendly narrative (3-5 paragraphs) explaining what these factors mean " +
		"for this person and what realistic lifestyle changes could improve their risk profile. " +
		"Do not mention the numeric impact values directly.")

	return b.String()
}
