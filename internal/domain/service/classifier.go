package service

import (
	"context"
	"errors"

	"github.com/Shabrin335/MARKET-MIND-GENAI/internal/domain/entity"
)

// ErrModelLoad marks failures to fetch or initialize the model itself,
// as opposed to failures of an individual inference call
var ErrModelLoad = errors.New("model load failed")

// SentimentResult represents the result of a sentiment classification
type SentimentResult struct {
	Label  entity.Sentiment    `json:"label"`
	Score  float64             `json:"score"`
	Scores []entity.LabelScore `json:"scores"`
}

// Classifier defines the interface for sentiment classification
type Classifier interface {
	// Classify runs sentiment analysis on a single text and returns
	// the top-1 label with its score plus the full score breakdown
	Classify(ctx context.Context, text, requestID string) (*SentimentResult, error)

	// Model returns the identifier of the underlying model
	Model() string
}
