package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Shabrin335/MARKET-MIND-GENAI/internal/domain/entity"
)

func TestHFClassifier_Classify(t *testing.T) {
	t.Run("picks top scoring label", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			resp := [][]LabelScore{{
				{Label: "neutral", Score: 0.12},
				{Label: "positive", Score: 0.83},
				{Label: "negative", Score: 0.05},
			}}
			json.NewEncoder(w).Encode(resp)
		}))
		defer server.Close()

		client := NewHFClient(server.URL, "ProsusAI/finbert", "", 5*time.Second)
		classifier := NewHFClassifier(client)

		result, err := classifier.Classify(context.Background(), "earnings beat estimates", "req-1")

		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Equal(t, entity.SentimentPositive, result.Label)
		assert.Equal(t, 0.83, result.Score)
		assert.Len(t, result.Scores, 3)
	})

	t.Run("normalizes label casing", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			resp := [][]LabelScore{{
				{Label: "Negative", Score: 0.97},
				{Label: "Neutral", Score: 0.02},
				{Label: "Positive", Score: 0.01},
			}}
			json.NewEncoder(w).Encode(resp)
		}))
		defer server.Close()

		client := NewHFClient(server.URL, "ProsusAI/finbert", "", 5*time.Second)
		classifier := NewHFClassifier(client)

		result, err := classifier.Classify(context.Background(), "company files for bankruptcy", "req-2")

		assert.NoError(t, err)
		assert.Equal(t, entity.SentimentNegative, result.Label)
		assert.True(t, result.Label.IsValid())
	})

	t.Run("server error returns error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("internal error"))
		}))
		defer server.Close()

		client := NewHFClient(server.URL, "ProsusAI/finbert", "", 5*time.Second)
		classifier := NewHFClassifier(client)

		result, err := classifier.Classify(context.Background(), "text", "req-3")

		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestHFClassifier_Model(t *testing.T) {
	client := NewHFClient("https://api-inference.huggingface.co", "ProsusAI/finbert", "", time.Second)
	classifier := NewHFClassifier(client)

	assert.Equal(t, "ProsusAI/finbert", classifier.Model())
}
