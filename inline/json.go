package inline

import (
	"encoding/json"
	"reflect"

	"github.com/hueseek/hueseek/match"
	"github.com/hueseek/hueseek/rgba"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
)

type Match struct {
	// Rank is the position in the full ranking, starting from 0.
	Rank  int        `json:"rank"`
	Name  string     `json:"name"`
	Color rgba.Color `json:"color"`
	Hex   string     `json:"hex"`
	// Score is the distance to the sample. Lower is closer.
	Score float64 `json:"score" jsonschema:"minimum=0"`
}

type Output struct {
	Catalog string     `json:"catalog"`
	Sample  rgba.Color `json:"sample"`
	Metric  string     `json:"metric" jsonschema:"enum=rgba,enum=cie76,enum=ciede2000"`
	Result  []*Match   `json:"result"`
}

func newOutput(source string, options *Options, shown []match.Ranked, positions map[string]int) *Output {
	return &Output{
		Catalog: source,
		Sample:  options.Sample,
		Metric:  options.Metric.String(),
		Result: lo.Map(shown, func(r match.Ranked, _ int) *Match {
			return &Match{
				Rank:  positions[r.Entry.Name],
				Name:  r.Entry.Name,
				Color: r.Entry.Color,
				Hex:   r.Entry.Color.Hex(),
				Score: r.Score,
			}
		}),
	}
}

func asJson(output *Output) ([]byte, error) {
	return json.Marshal(output)
}

// Schema reflects the JSON schema of the output written in JSON mode.
func Schema() *jsonschema.Schema {
	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	reflector.Namer = func(t reflect.Type) string {
		return t.Name()
	}
	return reflector.Reflect(&Output{})
}
