package client

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Shabrin335/MARKET-MIND-GENAI/internal/domain/entity"
	"github.com/Shabrin335/MARKET-MIND-GENAI/internal/domain/service"
)

// HFClassifier adapts HFClient to the Classifier interface
type HFClassifier struct {
	client *HFClient
}

// NewHFClassifier creates a new HFClassifier
func NewHFClassifier(client *HFClient) service.Classifier {
	return &HFClassifier{client: client}
}

// Classify classifies a single text and picks the top-1 label
func (c *HFClassifier) Classify(ctx context.Context, text, requestID string) (*service.SentimentResult, error) {
	scores, err := c.client.Classify(ctx, text, requestID)
	if err != nil {
		if errors.Is(err, ErrModelLoading) || errors.Is(err, ErrUnauthorized) {
			return nil, fmt.Errorf("%w: %v", service.ErrModelLoad, err)
		}
		return nil, err
	}

	top := scores[0]
	breakdown := make([]entity.LabelScore, len(scores))
	for i, s := range scores {
		if s.Score > top.Score {
			top = s
		}
		breakdown[i] = entity.LabelScore{
			Label: entity.Sentiment(strings.ToLower(s.Label)),
			Score: s.Score,
		}
	}

	return &service.SentimentResult{
		Label:  entity.Sentiment(strings.ToLower(top.Label)),
		Score:  top.Score,
		Scores: breakdown,
	}, nil
}

// Model returns the identifier of the underlying model
func (c *HFClassifier) Model() string {
	return c.client.Model()
}
