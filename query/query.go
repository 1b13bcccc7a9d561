// Package query searches catalog names and remembers which names the user picks.
package query

import (
	"cmp"
	"strings"

	"github.com/hueseek/hueseek/filesystem"
	"github.com/hueseek/hueseek/key"
	"github.com/hueseek/hueseek/util"
	"github.com/hueseek/hueseek/where"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

// pickBoost is how many edit steps one earlier pick is worth in Find.
const pickBoost = 3

type queryRecord struct {
	Rank  int    `json:"rank"`
	Query string `json:"query"`
}

var cacher = gache.New[map[string]*queryRecord](
	&gache.Options{
		Path:       where.Queries(),
		FileSystem: &filesystem.GacheFs{},
	},
)

var suggestionCache = make(map[string][]*queryRecord)

func records() map[string]*queryRecord {
	cached, expired, err := cacher.Get()
	if expired || err != nil || cached == nil {
		return make(map[string]*queryRecord)
	}
	return cached
}

// Remember records a picked catalog name or increments its rank. Names are
// keyed case-insensitively but suggested as they were last spelled.
func Remember(q string, weight int) error {
	name := strings.TrimSpace(q)
	id := sanitize(name)
	cached := records()

	if record, ok := cached[id]; ok {
		record.Rank += weight
		record.Query = name
	} else {
		cached[id] = &queryRecord{Rank: weight, Query: name}
	}

	clear(suggestionCache)
	return cacher.Set(cached)
}

// Suggest returns the most relevant remembered name for a partial input.
func Suggest(q string) mo.Option[string] {
	suggestions := SuggestMany(q)
	if len(suggestions) == 0 {
		return mo.None[string]()
	}
	return mo.Some(suggestions[0])
}

// SuggestMany returns remembered names matching the partial input, most picked first.
func SuggestMany(q string) []string {
	if !viper.GetBool(key.SearchShowQuerySuggestions) {
		return []string{}
	}

	q = sanitize(q)
	var found []*queryRecord

	if prev, ok := suggestionCache[q]; ok {
		found = prev
	} else {
		for _, record := range records() {
			if fuzzy.MatchFold(q, record.Query) {
				found = append(found, record)
			}
		}

		slices.SortFunc(found, func(a, b *queryRecord) int {
			if c := cmp.Compare(b.Rank, a.Rank); c != 0 {
				return c
			}
			return strings.Compare(a.Query, b.Query)
		})

		suggestionCache[q] = found
	}

	return lo.Map(found, func(r *queryRecord, _ int) string {
		return r.Query
	})
}

// Find returns the names that fuzzily contain q, closest first. Names picked
// before rank higher. Matching ignores case and diacritics.
func Find(q string, names []string) []string {
	q = sanitize(q)
	ranks := fuzzy.RankFindNormalizedFold(q, names)
	picks := records()

	score := func(r fuzzy.Rank) int {
		if record, ok := picks[sanitize(r.Target)]; ok {
			return r.Distance - pickBoost*record.Rank
		}
		return r.Distance
	}

	slices.SortStableFunc(ranks, func(a, b fuzzy.Rank) int {
		if c := cmp.Compare(score(a), score(b)); c != 0 {
			return c
		}
		return cmp.Compare(a.OriginalIndex, b.OriginalIndex)
	})

	return lo.Map(ranks, func(r fuzzy.Rank, _ int) string {
		return r.Target
	})
}

// DidYouMean returns the candidate closest to q by edit distance, if it is
// close enough to be a plausible typo.
func DidYouMean(q string, candidates []string) mo.Option[string] {
	if len(candidates) == 0 {
		return mo.None[string]()
	}

	closest := lo.MinBy(candidates, func(a, b string) bool {
		return levenshtein.Distance(q, a) < levenshtein.Distance(q, b)
	})

	if levenshtein.Distance(q, closest) > util.Max(2, len(q)/2) {
		return mo.None[string]()
	}
	return mo.Some(closest)
}

func sanitize(q string) string {
	return strings.TrimSpace(strings.ToLower(q))
}
