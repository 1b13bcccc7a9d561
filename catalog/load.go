package catalog

import (
	_ "embed"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hueseek/hueseek/filesystem"
	"github.com/hueseek/hueseek/internal/cache"
	"github.com/hueseek/hueseek/log"
	"github.com/hueseek/hueseek/where"
)

//go:embed default.yml
var defaultDocument []byte

// DefaultSource is the Source of the built-in catalog.
const DefaultSource = "default"

var decoders = map[string]func([]byte) (Node, error){
	".yml":  FromYAML,
	".yaml": FromYAML,
	".json": FromYAML,
	".lua": func(data []byte) (Node, error) {
		return FromLua(string(data))
	},
}

// Formats lists the file extensions Load understands.
func Formats() []string {
	return []string{".yml", ".yaml", ".json", ".lua"}
}

// Load reads, decodes and flattens the catalog at path. An empty path loads
// the built-in catalog. A bare file name that does not exist in the working
// directory is looked up in the catalogs directory.
func Load(path string, opts ...Option) (*Catalog, error) {
	if path == "" {
		return Decode(DefaultSource, defaultDocument, ".yml", opts...)
	}

	path = resolve(path)
	data, err := filesystem.API().ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	return Decode(path, data, filepath.Ext(path), opts...)
}

func resolve(path string) string {
	if exists, _ := filesystem.API().Exists(path); exists {
		return path
	}
	if filepath.Base(path) != path {
		return path
	}
	return filepath.Join(where.Catalogs(), path)
}

// Decode builds a catalog from raw document bytes, picking the decoder by
// extension.
func Decode(source string, data []byte, ext string, opts ...Option) (*Catalog, error) {
	o := newOptions(opts)
	ext = strings.ToLower(ext)

	decode, ok := decoders[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q, expected one of %s", ErrUnsupportedFormat, ext, strings.Join(Formats(), ", "))
	}

	key := cache.Key(data, ext+"|"+string(o.duplicates))
	if o.cache {
		var entries []Entry
		if cache.Read(key, &entries) {
			log.WithFields(log.Fields{"source": source, "entries": len(entries)}).Debug("catalog snapshot hit")
			return New(source, entries), nil
		}
	}

	root, err := decode(data)
	if err != nil {
		return nil, err
	}

	entries, err := Flatten(root, WithDuplicates(o.duplicates))
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"source": source, "entries": len(entries)}).Info("catalog loaded")

	if o.cache {
		if err := cache.Write(key, entries); err != nil {
			log.Warnf("write catalog snapshot: %v", err)
		}
	}

	return New(source, entries), nil
}
