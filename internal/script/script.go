// Package script runs sandboxed Lua chunks for catalog sources.
package script

import (
	"context"
	"crypto/sha256"
	"fmt"
	"strings"
	"sync"

	"github.com/metafates/mangal-lua-libs/base64"
	"github.com/metafates/mangal-lua-libs/humanize"
	"github.com/metafates/mangal-lua-libs/inspect"
	"github.com/metafates/mangal-lua-libs/json"
	"github.com/metafates/mangal-lua-libs/regexp"
	"github.com/metafates/mangal-lua-libs/stats"
	luastrings "github.com/metafates/mangal-lua-libs/strings"
	"github.com/metafates/mangal-lua-libs/yaml"
	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"
)

var protoCache sync.Map

var safeLibs = []struct {
	name string
	open lua.LGFunction
}{
	{lua.LoadLibName, lua.OpenPackage},
	{lua.BaseLibName, lua.OpenBase},
	{lua.TabLibName, lua.OpenTable},
	{lua.StringLibName, lua.OpenString},
	{lua.MathLibName, lua.OpenMath},
}

// Modules lists the helper modules reachable through require. None of them
// touches the filesystem, the network or the process.
var Modules = []string{"base64", "humanize", "inspect", "json", "regexp", "stats", "strings", "yaml"}

var preloads = []func(*lua.LState){
	base64.Preload,
	humanize.Preload,
	inspect.Preload,
	json.Preload,
	regexp.Preload,
	stats.Preload,
	luastrings.Preload,
	yaml.Preload,
}

// base functions that read files from disk.
var fileLoaders = []string{"dofile", "loadfile"}

// NewState returns a state with the base, table, string and math libraries
// opened and the pure helper Modules preloaded. No io or os access is
// given, and require cannot load files from disk.
func NewState() (*lua.LState, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})

	for _, lib := range safeLibs {
		if err := L.CallByParam(lua.P{
			Fn:      L.NewFunction(lib.open),
			NRet:    0,
			Protect: true,
		}, lua.LString(lib.name)); err != nil {
			L.Close()
			return nil, fmt.Errorf("open lua library %s: %w", lib.name, err)
		}
	}

	for _, name := range fileLoaders {
		L.SetGlobal(name, lua.LNil)
	}

	if pkg, ok := L.GetGlobal(lua.LoadLibName).(*lua.LTable); ok {
		L.SetField(pkg, "path", lua.LString(""))
	}

	for _, preload := range preloads {
		preload(L)
	}

	return L, nil
}

// Compile parses src into a function prototype. Prototypes are cached by
// source content, so the same script is compiled only once per process.
func Compile(name, src string) (*lua.FunctionProto, error) {
	key := sha256.Sum256([]byte(src))
	if cached, ok := protoCache.Load(key); ok {
		return cached.(*lua.FunctionProto), nil
	}

	chunk, err := parse.Parse(strings.NewReader(src), name)
	if err != nil {
		return nil, err
	}

	proto, err := lua.Compile(chunk, name)
	if err != nil {
		return nil, err
	}

	protoCache.Store(key, proto)
	return proto, nil
}

// Run executes src in L and returns the first value it produced,
// or lua.LNil when the chunk returns nothing. Execution stops with an
// error once ctx is done.
func Run(ctx context.Context, L *lua.LState, name, src string) (lua.LValue, error) {
	proto, err := Compile(name, src)
	if err != nil {
		return lua.LNil, err
	}

	L.SetContext(ctx)
	defer L.RemoveContext()

	top := L.GetTop()
	L.Push(L.NewFunctionFromProto(proto))
	if err := L.PCall(0, lua.MultRet, nil); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return lua.LNil, fmt.Errorf("%s: %w", name, ctxErr)
		}
		return lua.LNil, err
	}

	if L.GetTop() == top {
		return lua.LNil, nil
	}

	value := L.Get(top + 1)
	L.SetTop(top)
	return value, nil
}
