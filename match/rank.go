// Package match ranks catalog entries by their distance to a sampled color.
package match

import (
	"cmp"
	"fmt"
	"math"

	"github.com/hueseek/hueseek/catalog"
	"github.com/hueseek/hueseek/rgba"
	"golang.org/x/exp/slices"
)

// Sample is the color being matched.
type Sample = rgba.Color

// Ranked pairs a catalog entry with its score. Lower is closer.
type Ranked struct {
	Entry catalog.Entry `json:"entry"`
	Score float64       `json:"score" jsonschema:"minimum=0"`
}

// InvalidSampleError is returned by Rank for a sample whose alpha is not a
// number in [0, 1].
type InvalidSampleError struct {
	Sample Sample
}

func (e *InvalidSampleError) Error() string {
	return fmt.Sprintf("invalid sample: alpha %v is outside [0, 1]", e.Sample.A)
}

// Validate checks a sample before ranking.
func Validate(sample Sample) error {
	if math.IsNaN(sample.A) || sample.A < 0 || sample.A > 1 {
		return &InvalidSampleError{Sample: sample}
	}
	return nil
}

// Rank scores every entry against sample and returns them sorted ascending by
// score. The sort is stable, so equal scores keep catalog order. entries is
// not modified and an empty catalog yields an empty, non-nil result.
func Rank(sample Sample, entries []catalog.Entry, metric Metric) ([]Ranked, error) {
	if err := Validate(sample); err != nil {
		return nil, err
	}
	if !metric.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMetric, int(metric))
	}

	ranked := make([]Ranked, len(entries))
	for i, entry := range entries {
		ranked[i] = Ranked{
			Entry: entry,
			Score: Distance(sample, entry.Color, metric),
		}
	}

	slices.SortStableFunc(ranked, func(a, b Ranked) int {
		return cmp.Compare(a.Score, b.Score)
	})

	return ranked, nil
}

// RankCatalog is Rank over every entry of c.
func RankCatalog(sample Sample, c *catalog.Catalog, metric Metric) ([]Ranked, error) {
	return Rank(sample, c.Entries(), metric)
}

// Top returns the first k matches. k <= 0 keeps all of them.
func Top(ranked []Ranked, k int) []Ranked {
	if k <= 0 || k >= len(ranked) {
		return ranked
	}
	return ranked[:k]
}
