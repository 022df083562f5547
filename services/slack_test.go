package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"streammax/models"
)

func TestNewSlackNotifier_RequiresURL(t *testing.T) {
	_, err := NewSlackNotifier("", nil, zap.NewNop())
	assert.EqualError(t, err, "SLACK_WEBHOOK_URL is required")
}

func TestSlackNotifier_Submit(t *testing.T) {
	var payload map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n, err := NewSlackNotifier(srv.URL, nil, zap.NewNop())
	require.NoError(t, err)

	err = n.Submit(context.Background(), models.Lead{Name: "Jane", Email: "jane@x.com", Message: "Roku"})
	require.NoError(t, err)
	assert.Contains(t, payload["text"], "Name: Jane")
	assert.Contains(t, payload["text"], "Plan: none selected")
	assert.Contains(t, payload["text"], "Roku")
}

func TestSlackNotifier_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	n, err := NewSlackNotifier(srv.URL, nil, zap.NewNop())
	require.NoError(t, err)

	err = n.Submit(context.Background(), models.Lead{Name: "Jane", Email: "jane@x.com"})
	assert.ErrorIs(t, err, ErrDelivery)
	assert.Contains(t, err.Error(), "403")
}
