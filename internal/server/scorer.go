package server

import (
	"context"
	"fmt"
	"strings"

	"github.com/Veraticus/verdict/internal/model"
)

// Scorer produces a probability distribution over labels for cleaned text.
type Scorer interface {
	Score(ctx context.Context, text string) (model.Probabilities, error)
}

// StaticScorer returns a fixed distribution, optionally overridden for
// specific texts. It stands in for a trained model during local development
// and tests.
type StaticScorer struct {
	Overrides map[string]model.Probabilities
	Default   model.Probabilities
}

var _ Scorer = (*StaticScorer)(nil)

// NewStaticScorer creates a scorer that always answers with probs.
func NewStaticScorer(probs model.Probabilities) (*StaticScorer, error) {
	if err := validateDistribution(probs); err != nil {
		return nil, err
	}
	return &StaticScorer{
		Default:   probs,
		Overrides: make(map[string]model.Probabilities),
	}, nil
}

// Set overrides the distribution returned for text (matched after cleaning,
// case-insensitively).
func (s *StaticScorer) Set(text string, probs model.Probabilities) error {
	if err := validateDistribution(probs); err != nil {
		return err
	}
	if s.Overrides == nil {
		s.Overrides = make(map[string]model.Probabilities)
	}
	s.Overrides[overrideKey(text)] = probs
	return nil
}

// Score implements Scorer.
func (s *StaticScorer) Score(ctx context.Context, text string) (model.Probabilities, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if probs, ok := s.Overrides[overrideKey(text)]; ok {
		return probs, nil
	}
	return s.Default, nil
}

func overrideKey(text string) string {
	return strings.ToLower(CleanText(text))
}

func validateDistribution(probs model.Probabilities) error {
	if len(probs) == 0 {
		return fmt.Errorf("distribution must not be empty")
	}
	seen := make(map[string]bool, len(probs))
	for _, p := range probs {
		if seen[p.Category] {
			return fmt.Errorf("duplicate category %q", p.Category)
		}
		if p.Value < 0 || p.Value > 1 {
			return fmt.Errorf("probability for %q out of range: %v", p.Category, p.Value)
		}
		seen[p.Category] = true
	}
	return nil
}
