package usecase

import (
	"sync"

	"github.com/Shabrin335/MARKET-MIND-GENAI/internal/domain/service"
	"github.com/Shabrin335/MARKET-MIND-GENAI/internal/infrastructure/metrics"
)

// ClassifierFactory constructs a classifier instance
type ClassifierFactory func() (service.Classifier, error)

// ClassifierProvider lazily constructs one classifier and memoizes it for
// the lifetime of the process. Construction happens on first successful Get;
// a failed construction is surfaced to the caller and not memoized, so a
// later call may attempt it again. The memoized classifier is never replaced.
type ClassifierProvider struct {
	factory ClassifierFactory

	mu         sync.Mutex
	classifier service.Classifier
}

// NewClassifierProvider creates a provider around the given factory
func NewClassifierProvider(factory ClassifierFactory) *ClassifierProvider {
	return &ClassifierProvider{factory: factory}
}

// Get returns the memoized classifier, constructing it on first use
func (p *ClassifierProvider) Get() (service.Classifier, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.classifier != nil {
		return p.classifier, nil
	}

	classifier, err := p.factory()
	if err != nil {
		metrics.ModelLoadsTotal.WithLabelValues("failure").Inc()
		return nil, err
	}

	metrics.ModelLoadsTotal.WithLabelValues("success").Inc()
	p.classifier = classifier
	return classifier, nil
}

// Loaded reports whether the classifier has been constructed
func (p *ClassifierProvider) Loaded() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.classifier != nil
}
