package catalog

import (
	"io"
	"strings"
	"text/template"

	"github.com/hueseek/hueseek/constant"
	"github.com/hueseek/hueseek/util"
)

// ScaffoldSteps is the number of gray steps in a scaffolded catalog.
const ScaffoldSteps = 4

var scaffold = template.Must(template.New("catalog").Funcs(template.FuncMap{
	"repeat": strings.Repeat,
	"plus":   func(a, b int) int { return a + b },
	"max":    util.Max[int],
}).Parse(constant.CatalogTemplate))

// headerLine keeps a value on a single Lua comment line.
var headerLine = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// Scaffold writes a starter Lua catalog to w.
func Scaffold(w io.Writer, name, author string) error {
	name, author = headerLine.Replace(name), headerLine.Replace(author)

	return scaffold.Execute(w, struct {
		Name   string
		Author string
		Steps  int
	}{
		Name:   name,
		Author: author,
		Steps:  ScaffoldSteps,
	})
}
