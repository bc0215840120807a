package mlmodel

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"optiroute/types"
)

func TestScore(t *testing.T) {
	t.Run("decodes a successful prediction", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/predict", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var req types.AllocationRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, 5, req.FamilySize)

			json.NewEncoder(w).Encode(PredictionResult{
				ShelterID:   "sh-9",
				ShelterName: "Riverside Community Hall",
				Score:       0.87,
			})
		}))
		defer server.Close()

		client := NewClient(server.URL)
		result, err := client.Score(context.Background(), types.AllocationRequest{FamilySize: 5})
		require.NoError(t, err)
		assert.Equal(t, "sh-9", result.ShelterID)
		assert.Equal(t, 0.87, result.Score)
	})

	t.Run("non-200 is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := NewClient(server.URL)
		_, err := client.Score(context.Background(), types.AllocationRequest{FamilySize: 1})
		assert.Error(t, err)
	})
}

func TestStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/status", r.URL.Path)
		json.NewEncoder(w).Encode(ModelStatus{Status: "healthy", ModelVersion: "2.3.1"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	status, err := client.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "healthy", status.Status)
	assert.Equal(t, "2.3.1", status.ModelVersion)
}
