package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hueseek/hueseek/internal/script"
	lua "github.com/yuin/gopher-lua"
	"golang.org/x/exp/slices"
)

// ScriptTimeout bounds how long a catalog script may run.
var ScriptTimeout = 5 * time.Second

// FromLua runs a Lua chunk that returns a nested table of color strings.
// Only the base, table, string and math libraries are opened, plus the
// helper modules available through require. Lua tables carry no order,
// so keys are visited lexicographically. A script running longer than
// ScriptTimeout is stopped.
func FromLua(src string) (Node, error) {
	L, err := script.NewState()
	if err != nil {
		return nil, err
	}
	defer L.Close()

	ctx, cancel := context.WithTimeout(context.Background(), ScriptTimeout)
	defer cancel()

	value, err := script.Run(ctx, L, "catalog", src)
	if err != nil {
		return nil, fmt.Errorf("run catalog script: %w", err)
	}

	if value == lua.LNil {
		return nil, errors.New("catalog script must return a table")
	}

	return fromLua(value, nil)
}

func fromLua(value lua.LValue, path []string) (Node, error) {
	switch v := value.(type) {
	case lua.LString:
		return Leaf(v), nil
	case *lua.LTable:
		var (
			keys []string
			err  error
		)
		v.ForEach(func(k, _ lua.LValue) {
			if err != nil {
				return
			}
			s, ok := k.(lua.LString)
			if !ok {
				err = &SchemaError{Path: strings.Join(path, "."), Kind: "lua " + k.Type().String() + " key"}
				return
			}
			keys = append(keys, string(s))
		})
		if err != nil {
			return nil, err
		}

		slices.Sort(keys)

		branch := make(Branch, 0, len(keys))
		for _, key := range keys {
			child, err := fromLua(v.RawGetString(key), append(slices.Clip(path), key))
			if err != nil {
				return nil, err
			}
			branch = append(branch, Field{Key: key, Node: child})
		}
		return branch, nil
	default:
		return nil, &SchemaError{Path: strings.Join(path, "."), Kind: "lua " + value.Type().String()}
	}
}
