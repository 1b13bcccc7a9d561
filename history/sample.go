package history

import (
	"fmt"
	"time"

	"github.com/hueseek/hueseek/match"
)

// SavedSample is a matched sample preserved in the user's history.
type SavedSample struct {
	Hex         string    `json:"hex"`
	Sample      string    `json:"sample"`
	Metric      string    `json:"metric"`
	Best        string    `json:"best"`
	Score       float64   `json:"score"`
	Count       int       `json:"count"`
	LastMatched time.Time `json:"last_matched"`
}

func (s *SavedSample) encode() string {
	return fmt.Sprintf("%s|%s", s.Hex, s.Metric)
}

func (s *SavedSample) String() string {
	return fmt.Sprintf("%s → %s (%s, %.2f)", s.Sample, s.Best, s.Metric, s.Score)
}

func newSavedSample(sample match.Sample, metric match.Metric, best match.Ranked) *SavedSample {
	return &SavedSample{
		Hex:         sample.Hex(),
		Sample:      sample.String(),
		Metric:      metric.String(),
		Best:        best.Entry.Name,
		Score:       best.Score,
		Count:       1,
		LastMatched: time.Now(),
	}
}
