package entity

import (
	"time"

	"github.com/google/uuid"
)

// Sentiment represents a sentiment class produced by the model
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// IsValid returns true if the sentiment is one of the known classes
func (s Sentiment) IsValid() bool {
	switch s {
	case SentimentPositive, SentimentNegative, SentimentNeutral:
		return true
	}
	return false
}

// LabelScore pairs a sentiment class with the model's score for it
type LabelScore struct {
	Label Sentiment `json:"label"`
	Score float64   `json:"score"`
}

// Analysis represents one completed sentiment analysis
type Analysis struct {
	ID        uuid.UUID    `json:"id"`
	Text      string       `json:"text"`
	Label     Sentiment    `json:"label"`
	Score     float64      `json:"score"`
	Scores    []LabelScore `json:"scores,omitempty"`
	Model     string       `json:"model"`
	LatencyMs int64        `json:"latency_ms"`
	CreatedAt time.Time    `json:"created_at"`
}

// NewAnalysis creates a new Analysis for the given input text
func NewAnalysis(text, model string) *Analysis {
	return &Analysis{
		ID:        uuid.New(),
		Text:      text,
		Model:     model,
		CreatedAt: time.Now().UTC(),
	}
}

// SetResult records the classification outcome for the analysis
func (a *Analysis) SetResult(label Sentiment, score float64, scores []LabelScore, latencyMs int64) {
	a.Label = label
	a.Score = score
	a.Scores = scores
	a.LatencyMs = latencyMs
}

// Confidence returns the top-1 score as a percentage in [0,100]
func (a *Analysis) Confidence() float64 {
	return a.Score * 100
}
