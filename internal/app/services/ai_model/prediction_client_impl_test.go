package ai_model

import (
	"context"
	"errors"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/exceptions"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUpstream(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func clientMessage(t *testing.T, err error) string {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr), "expected CustomError, got %v", err)
	assert.Equal(t, constvars.StatusInternalServerError, customErr.StatusCode)
	return customErr.ClientMessage
}

func TestPredictionClient_FetchSymptoms(t *testing.T) {
	t.Run("returns the vocabulary", func(t *testing.T) {
		server := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/symptoms", r.URL.Path)
			w.Write([]byte(`{"success":true,"symptoms":["itching","skin_rash"]}`))
		})

		symptoms, err := NewPredictionClient(server.URL+"/", time.Second).FetchSymptoms(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"itching", "skin_rash"}, symptoms)
	})

	t.Run("success false surfaces upstream error", func(t *testing.T) {
		server := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success":false,"error":"model not loaded"}`))
		})

		_, err := NewPredictionClient(server.URL, time.Second).FetchSymptoms(context.Background())
		assert.Equal(t, "model not loaded", clientMessage(t, err))
	})

	t.Run("missing success flag is a failure", func(t *testing.T) {
		server := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"symptoms":["itching"]}`))
		})

		symptoms, err := NewPredictionClient(server.URL, time.Second).FetchSymptoms(context.Background())
		assert.Nil(t, symptoms)
		assert.Equal(t, constvars.ErrClientSymptomsFailed, clientMessage(t, err))
	})
}

func TestPredictionClient_Predict(t *testing.T) {
	cases := []struct {
		name     string
		body     string
		expected string
	}{
		{"prediction field", `{"prediction":"Fungal infection","predicted_disease":"Allergy"}`, "Fungal infection"},
		{"predicted_disease fallback", `{"predicted_disease":"Allergy"}`, "Allergy"},
		{"no label", `{"success":true}`, constvars.PredictionUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, constvars.MethodPost, r.Method)
				payload, _ := io.ReadAll(r.Body)
				assert.JSONEq(t, `{"symptoms":["itching"]}`, string(payload))
				w.Write([]byte(tc.body))
			})

			label, err := NewPredictionClient(server.URL, time.Second).Predict(context.Background(), []string{"itching"})
			require.NoError(t, err)
			assert.Equal(t, tc.expected, label)
		})
	}
}

func TestPredictionClient_UpstreamFailures(t *testing.T) {
	t.Run("message wins over error", func(t *testing.T) {
		server := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"message":"bad input vector","error":"ValueError"}`))
		})

		_, err := NewPredictionClient(server.URL, time.Second).Predict(context.Background(), []string{"x"})
		assert.Equal(t, "bad input vector", clientMessage(t, err))
	})

	t.Run("error used when message is absent", func(t *testing.T) {
		server := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"ValueError"}`))
		})

		_, err := NewPredictionClient(server.URL, time.Second).Predict(context.Background(), []string{"x"})
		assert.Equal(t, "ValueError", clientMessage(t, err))
	})

	t.Run("timeout uses transport text", func(t *testing.T) {
		release := make(chan struct{})
		server := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		})
		defer close(release)

		_, err := NewPredictionClient(server.URL, 50*time.Millisecond).Predict(context.Background(), []string{"x"})
		message := clientMessage(t, err)
		assert.True(t, strings.Contains(message, "Client.Timeout") || strings.Contains(message, "deadline"), message)
	})
}
