package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(ClientConfig{
		BaseURL:   srv.URL,
		APIKey:    "test-key",
		ModelName: "test-model",
	})
}

func TestClient_Complete(t *testing.T) {
	var gotPath, gotAuth string
	var gotReq completionRequest

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"eat more vegetables"}}]}`))
	})

	narrative, err := client.Complete(context.Background(), "system prompt", "user prompt")
	require.NoError(t, err)

	assert.Equal(t, "eat more vegetables", narrative)
	assert.Equal(t, "/v1/chat/completions", gotPath)
	assert.Equal(t, "Bearer test-key", gotAuth)

	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "test-model", gotReq.Model)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Equal(t, "system prompt", gotReq.Messages[0].Content)
	assert.Equal(t, "user", gotReq.Messages[1].Role)
	assert.Equal(t, "user prompt", gotReq.Messages[1].Content)
}

func TestClient_Complete_APIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"invalid api key"}}`))
	})

	_, err := client.Complete(context.Background(), "s", "u")
	require.ErrorIs(t, err, ErrNarrativeService)
	assert.Contains(t, err.Error(), "invalid api key")
}

func TestClient_Complete_UnexpectedStatusWithoutBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.Complete(context.Background(), "s", "u")
	require.ErrorIs(t, err, ErrNarrativeService)
	assert.Contains(t, err.Error(), "502")
}

func TestClient_Complete_EmptyChoices(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	})

	_, err := client.Complete(context.Background(), "s", "u")
	require.ErrorIs(t, err, ErrNarrativeService)
}

func TestClient_Complete_UnreachableBackend(t *testing.T) {
	client := NewClient(ClientConfig{BaseURL: "http://127.0.0.1:1", ModelName: "m"})

	_, err := client.Complete(context.Background(), "s", "u")
	require.ErrorIs(t, err, ErrNarrativeService)
}
