package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Shabrin335/MARKET-MIND-GENAI/internal/domain/entity"
	"github.com/Shabrin335/MARKET-MIND-GENAI/internal/domain/service"
	"github.com/Shabrin335/MARKET-MIND-GENAI/internal/infrastructure/metrics"
)

// Error definitions for analysis usecase
var (
	ErrEmptyText        = errors.New("text must not be empty")
	ErrModelUnavailable = errors.New("model unavailable")
	ErrInferenceFailed  = errors.New("inference failed")
)

// AnalyzeInput represents the input for a sentiment analysis
type AnalyzeInput struct {
	Text string `json:"text" binding:"required"`
}

// AnalysisOutput represents the output of a sentiment analysis
type AnalysisOutput struct {
	AnalysisID uuid.UUID           `json:"analysis_id"`
	Text       string              `json:"text"`
	Label      entity.Sentiment    `json:"label"`
	Score      float64             `json:"score"`
	Confidence float64             `json:"confidence"`
	Scores     []entity.LabelScore `json:"scores,omitempty"`
	Model      string              `json:"model"`
	LatencyMs  int64               `json:"latency_ms"`
	Cached     bool                `json:"cached"`
	CreatedAt  string              `json:"created_at"`
}

// ResultCache caches classification results for identical inputs.
// Get returns (nil, nil) on a cache miss.
type ResultCache interface {
	Get(ctx context.Context, model, text string) (*service.SentimentResult, error)
	Set(ctx context.Context, model, text string, result *service.SentimentResult) error
}

// AnalysisUsecase defines the interface for sentiment analysis business logic
type AnalysisUsecase interface {
	Analyze(ctx context.Context, input *AnalyzeInput) (*AnalysisOutput, error)
	ModelLoaded() bool
}

type analysisUsecase struct {
	provider *ClassifierProvider
	cache    ResultCache
}

// NewAnalysisUsecase creates a new analysis usecase. The cache is optional
// and may be nil.
func NewAnalysisUsecase(provider *ClassifierProvider, cache ResultCache) AnalysisUsecase {
	return &analysisUsecase{
		provider: provider,
		cache:    cache,
	}
}

func (u *analysisUsecase) Analyze(ctx context.Context, input *AnalyzeInput) (*AnalysisOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, ErrEmptyText
	}

	classifier, err := u.provider.Get()
	if err != nil {
		metrics.AnalysesTotal.WithLabelValues("none", "model_unavailable").Inc()
		return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}

	analysis := entity.NewAnalysis(text, classifier.Model())

	if cached := u.cacheLookup(ctx, classifier.Model(), text); cached != nil {
		analysis.SetResult(cached.Label, cached.Score, cached.Scores, 0)
		metrics.AnalysesTotal.WithLabelValues(string(cached.Label), "success").Inc()
		return toAnalysisOutput(analysis, true), nil
	}

	start := time.Now()
	result, err := classifier.Classify(ctx, text, analysis.ID.String())
	if err != nil {
		if errors.Is(err, service.ErrModelLoad) {
			metrics.AnalysesTotal.WithLabelValues("none", "model_unavailable").Inc()
			return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
		}
		metrics.AnalysesTotal.WithLabelValues("none", "inference_error").Inc()
		return nil, fmt.Errorf("%w: %v", ErrInferenceFailed, err)
	}
	latency := time.Since(start)

	metrics.InferenceDuration.Observe(latency.Seconds())
	metrics.AnalysesTotal.WithLabelValues(string(result.Label), "success").Inc()

	analysis.SetResult(result.Label, result.Score, result.Scores, latency.Milliseconds())

	u.cacheStore(ctx, classifier.Model(), text, result)

	return toAnalysisOutput(analysis, false), nil
}

// ModelLoaded reports whether the classifier has been constructed yet
func (u *analysisUsecase) ModelLoaded() bool {
	return u.provider.Loaded()
}

func (u *analysisUsecase) cacheLookup(ctx context.Context, model, text string) *service.SentimentResult {
	if u.cache == nil {
		return nil
	}

	result, err := u.cache.Get(ctx, model, text)
	if err != nil {
		metrics.CacheRequestsTotal.WithLabelValues("error").Inc()
		return nil
	}
	if result == nil {
		metrics.CacheRequestsTotal.WithLabelValues("miss").Inc()
		return nil
	}

	metrics.CacheRequestsTotal.WithLabelValues("hit").Inc()
	return result
}

func (u *analysisUsecase) cacheStore(ctx context.Context, model, text string, result *service.SentimentResult) {
	if u.cache == nil {
		return
	}
	// Cache failures never fail the analysis
	_ = u.cache.Set(ctx, model, text, result)
}

func toAnalysisOutput(a *entity.Analysis, cached bool) *AnalysisOutput {
	return &AnalysisOutput{
		AnalysisID: a.ID,
		Text:       a.Text,
		Label:      a.Label,
		Score:      a.Score,
		Confidence: a.Confidence(),
		Scores:     a.Scores,
		Model:      a.Model,
		LatencyMs:  a.LatencyMs,
		Cached:     cached,
		CreatedAt:  a.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
