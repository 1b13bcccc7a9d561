package catalog

import (
	"fmt"
	"strings"
)

// Duplicates selects what happens when two leaves flatten to the same name.
type Duplicates string

const (
	// Reject fails the load with a DuplicateNameError.
	Reject Duplicates = "reject"
	// LastWins keeps the first entry's position and the last entry's color.
	LastWins Duplicates = "last"
)

// ParseDuplicates reads a policy name as stored in the configuration.
func ParseDuplicates(s string) (Duplicates, error) {
	switch d := Duplicates(strings.ToLower(strings.TrimSpace(s))); d {
	case Reject, LastWins:
		return d, nil
	case "":
		return Reject, nil
	default:
		return "", fmt.Errorf("unknown duplicate policy %q, expected %q or %q", s, Reject, LastWins)
	}
}

type options struct {
	duplicates Duplicates
	cache      bool
}

// Option configures Flatten and Load.
type Option func(*options)

// WithDuplicates sets the duplicate name policy. Reject is the default.
func WithDuplicates(d Duplicates) Option {
	return func(o *options) {
		o.duplicates = d
	}
}

// WithCache makes Load reuse and store flattened snapshots.
func WithCache(enabled bool) Option {
	return func(o *options) {
		o.cache = enabled
	}
}

func newOptions(opts []Option) options {
	o := options{duplicates: Reject}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
