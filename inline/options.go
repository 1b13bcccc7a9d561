package inline

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hueseek/hueseek/match"
	"github.com/hueseek/hueseek/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Filter narrows a ranking before it is trimmed to the limit.
type Filter func([]match.Ranked) ([]match.Ranked, error)

type Options struct {
	Out      io.Writer
	Sample   match.Sample
	Metric   match.Metric
	Limit    int
	Json     bool
	Swatches bool
	// Width bounds text lines. Zero uses the terminal width.
	Width  int
	Filter mo.Option[Filter]
}

// ParseFilter parses a match selector:
// "first", "last", "all", "[n]", "[from]-[to]" or "@substring@".
func ParseFilter(description string) (Filter, error) {
	switch description {
	case "first":
		return func(ranked []match.Ranked) ([]match.Ranked, error) {
			if len(ranked) == 0 {
				return ranked, nil
			}
			return ranked[:1], nil
		}, nil
	case "last":
		return func(ranked []match.Ranked) ([]match.Ranked, error) {
			if len(ranked) == 0 {
				return ranked, nil
			}
			return ranked[len(ranked)-1:], nil
		}, nil
	case "all":
		return func(ranked []match.Ranked) ([]match.Ranked, error) {
			return ranked, nil
		}, nil
	}

	// Range: "1-5"
	if from, to, ok := strings.Cut(description, "-"); ok {
		start, err1 := strconv.ParseUint(from, 10, 16)
		end, err2 := strconv.ParseUint(to, 10, 16)
		if err1 == nil && err2 == nil {
			return func(ranked []match.Ranked) ([]match.Ranked, error) {
				n := uint64(len(ranked))
				first, last := util.Min(start, n), util.Min(end+1, n)
				if first > last {
					return []match.Ranked{}, nil
				}
				return ranked[first:last], nil
			}, nil
		}
	}

	// Substring: "@text@"
	if len(description) >= 2 && strings.HasPrefix(description, "@") && strings.HasSuffix(description, "@") {
		sub := strings.ToLower(description[1 : len(description)-1])
		return func(ranked []match.Ranked) ([]match.Ranked, error) {
			return lo.Filter(ranked, func(r match.Ranked, _ int) bool {
				return strings.Contains(strings.ToLower(r.Entry.Name), sub)
			}), nil
		}, nil
	}

	// Single index: "5"
	if idx, err := strconv.ParseUint(description, 10, 16); err == nil {
		return func(ranked []match.Ranked) ([]match.Ranked, error) {
			if uint64(len(ranked)) <= idx {
				return []match.Ranked{}, nil
			}
			return ranked[idx : idx+1], nil
		}, nil
	}

	return nil, fmt.Errorf("invalid match filter: %s", description)
}
