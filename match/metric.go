package match

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/hueseek/hueseek/rgba"
	"github.com/hueseek/hueseek/util"
	"github.com/samber/lo"
)

// ErrUnknownMetric is returned for a Metric outside the supported set.
var ErrUnknownMetric = errors.New("unknown metric")

// Metric selects how the distance between two colors is measured.
type Metric int

const (
	// EuclideanRGBA is the Euclidean norm over (r, g, b, a*255).
	EuclideanRGBA Metric = iota
	// LabCIE76 is the Euclidean distance in CIE Lab (D65). Alpha is ignored.
	LabCIE76
	// LabCIEDE2000 is the CIEDE2000 color difference. Alpha is ignored.
	LabCIEDE2000
)

var metricNames = map[Metric]string{
	EuclideanRGBA: "rgba",
	LabCIE76:      "cie76",
	LabCIEDE2000:  "ciede2000",
}

var metricAliases = map[string]Metric{
	"rgba":      EuclideanRGBA,
	"euclidean": EuclideanRGBA,
	"rgb":       EuclideanRGBA,
	"lab":       LabCIE76,
	"cie76":     LabCIE76,
	"deltae":    LabCIE76,
	"ciede2000": LabCIEDE2000,
	"de2000":    LabCIEDE2000,
}

// Metrics lists every supported metric.
func Metrics() []Metric {
	return []Metric{EuclideanRGBA, LabCIE76, LabCIEDE2000}
}

// MetricNames lists the canonical metric names.
func MetricNames() []string {
	return lo.Map(Metrics(), func(m Metric, _ int) string {
		return m.String()
	})
}

// ParseMetric reads a metric name. Matching is case-insensitive.
func ParseMetric(s string) (Metric, error) {
	if m, ok := metricAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return m, nil
	}
	return 0, fmt.Errorf("%w %q, expected one of %s", ErrUnknownMetric, s, strings.Join(MetricNames(), ", "))
}

func (m Metric) String() string {
	if name, ok := metricNames[m]; ok {
		return name
	}
	return fmt.Sprintf("metric(%d)", int(m))
}

// Valid reports whether m is one of Metrics.
func (m Metric) Valid() bool {
	return lo.HasKey(metricNames, m)
}

// Perceptual reports whether m measures in Lab space.
func (m Metric) Perceptual() bool {
	return m == LabCIE76 || m == LabCIEDE2000
}

func (m Metric) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMetric, int(m))
	}
	return []byte(m.String()), nil
}

func (m *Metric) UnmarshalText(text []byte) error {
	parsed, err := ParseMetric(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Distance measures x against y. It is symmetric for every metric and never
// returns NaN or an infinity. Lab scores use the conventional ΔE scale where
// black to white is about 100. Lab metrics ignore alpha, so two colors that
// differ only in alpha are at distance 0. An unknown metric is treated as
// EuclideanRGBA.
func Distance(x, y rgba.Color, metric Metric) float64 {
	var d float64
	switch metric {
	case LabCIE76, LabCIEDE2000:
		if x.R == y.R && x.G == y.G && x.B == y.B {
			return 0
		}
		cx, cy := x.Colorful().Clamped(), y.Colorful().Clamped()
		if metric == LabCIE76 {
			d = cx.DistanceLab(cy)
		} else {
			d = cx.DistanceCIEDE2000(cy)
		}
		// colorful works with L* in [0, 1]; report the usual ΔE scale.
		d *= 100
	default:
		dr := float64(x.R) - float64(y.R)
		dg := float64(x.G) - float64(y.G)
		db := float64(x.B) - float64(y.B)
		da := (alpha(x.A) - alpha(y.A)) * 255
		d = math.Sqrt(dr*dr + dg*dg + db*db + da*da)
	}

	if math.IsNaN(d) || math.IsInf(d, 0) {
		return math.MaxFloat64
	}
	return d
}

// alpha clamps a into [0, 1], reading NaN as opaque.
func alpha(a float64) float64 {
	if math.IsNaN(a) {
		return 1
	}
	return util.Clamp(a, 0, 1)
}
