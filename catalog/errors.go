package catalog

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is returned by Load for a file extension it cannot decode.
var ErrUnsupportedFormat = errors.New("unsupported catalog format")

func displayPath(path string) string {
	if path == "" {
		return "<root>"
	}
	return path
}

// ParseError reports a leaf whose value is not a recognized color string.
type ParseError struct {
	Path  string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("catalog: %s: invalid color %q: %v", displayPath(e.Path), e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// SchemaError reports a node that is neither a color string nor a mapping.
type SchemaError struct {
	Path string
	Kind string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("catalog: %s: expected a color string or a mapping, got %s", displayPath(e.Path), e.Kind)
}

// DuplicateNameError reports two leaves flattening to the same name.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("catalog: duplicate color name %q", e.Name)
}
