// Package history records the samples a user has matched so they can be revisited.
package history

import (
	"github.com/hueseek/hueseek/filesystem"
	"github.com/hueseek/hueseek/match"
	"github.com/hueseek/hueseek/where"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

var cacher = gache.New[map[string]*SavedSample](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Get returns every saved sample keyed by hex and metric.
func Get() (map[string]*SavedSample, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*SavedSample), nil
	}
	return cached, nil
}

// Recent returns saved samples, most recently matched first.
func Recent() ([]*SavedSample, error) {
	saved, err := Get()
	if err != nil {
		return nil, err
	}

	samples := lo.Values(saved)
	slices.SortFunc(samples, func(a, b *SavedSample) int {
		return b.LastMatched.Compare(a.LastMatched)
	})
	return samples, nil
}

// Save records a sample and its best match. Matching the same sample again
// under the same metric bumps its count.
func Save(sample match.Sample, metric match.Metric, best match.Ranked) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	record := newSavedSample(sample, metric, best)
	if existing, exists := saved[record.encode()]; exists {
		record.Count += existing.Count
	}

	saved[record.encode()] = record
	return cacher.Set(saved)
}

// Remove deletes a single saved sample.
func Remove(sample *SavedSample) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	delete(saved, sample.encode())
	return cacher.Set(saved)
}

// Clear deletes every saved sample.
func Clear() error {
	return cacher.Set(make(map[string]*SavedSample))
}
