package rgba

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/hueseek/hueseek/util"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrUnknownFormat is wrapped by every error Parse returns.
var ErrUnknownFormat = errors.New("unrecognized color format")

var funcPattern = regexp.MustCompile(`^(?P<name>[a-z]+)\(\s*(?P<args>[^()]*?)\s*\)$`)

// Parse converts a color string into a Color. Supported forms are
// #rgb, #rgba, #rrggbb, #rrggbbaa, rgb()/rgba() with comma or space syntax,
// hsl()/hsla(), "transparent" and the CSS named colors. Channels outside
// their range are clamped. Alpha defaults to 1.
func Parse(s string) (Color, error) {
	str := strings.ToLower(strings.TrimSpace(s))

	switch {
	case str == "":
		return Color{}, fmt.Errorf("%w: empty string", ErrUnknownFormat)
	case str[0] == '#':
		c, err := parseHex(str[1:])
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q: %v", ErrUnknownFormat, s, err)
		}
		return c, nil
	case str == "transparent":
		return Color{}, nil
	}

	if groups := util.ReGroups(funcPattern, str); len(groups) > 0 {
		var (
			c   Color
			err error
		)
		switch groups["name"] {
		case "rgb", "rgba":
			c, err = parseRGBArgs(groups["args"])
		case "hsl", "hsla":
			c, err = parseHSLArgs(groups["args"])
		default:
			err = fmt.Errorf("unknown function %s()", groups["name"])
		}
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q: %v", ErrUnknownFormat, s, err)
		}
		return c, nil
	}

	if named, ok := colornames.Map[str]; ok {
		return Opaque(named.R, named.G, named.B), nil
	}

	return Color{}, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// MustParse is like Parse but panics on error. It is meant for literals.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic("rgba.MustParse: " + err.Error())
	}
	return c
}

func parseHex(hex string) (Color, error) {
	switch len(hex) {
	case 3, 4:
		expanded := make([]byte, 0, len(hex)*2)
		for i := 0; i < len(hex); i++ {
			expanded = append(expanded, hex[i], hex[i])
		}
		hex = string(expanded)
	case 6, 8:
	default:
		return Color{}, fmt.Errorf("hex color must have 3, 4, 6 or 8 digits, got %d", len(hex))
	}

	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, errors.New("invalid hex digits")
	}

	if len(hex) == 6 {
		return Opaque(uint8(value>>16), uint8(value>>8), uint8(value)), nil
	}

	// Alpha from hex is kept to two decimals.
	alpha := math.Round(float64(uint8(value))/255*100) / 100
	return Color{R: uint8(value >> 24), G: uint8(value >> 16), B: uint8(value >> 8), A: alpha}, nil
}

// splitArgs accepts both "a, b, c, d" and "a b c / d".
func splitArgs(args string) ([]string, error) {
	var parts []string
	if strings.Contains(args, ",") {
		parts = strings.Split(args, ",")
	} else {
		channels, alpha, hasAlpha := strings.Cut(args, "/")
		parts = strings.Fields(channels)
		if hasAlpha {
			parts = append(parts, alpha)
		}
	}

	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
		if parts[i] == "" {
			return nil, errors.New("empty argument")
		}
	}

	if len(parts) != 3 && len(parts) != 4 {
		return nil, fmt.Errorf("expected 3 or 4 arguments, got %d", len(parts))
	}
	return parts, nil
}

func parseRGBArgs(args string) (Color, error) {
	parts, err := splitArgs(args)
	if err != nil {
		return Color{}, err
	}

	var channels [3]uint8
	for i := 0; i < 3; i++ {
		v, err := parseChannel(parts[i])
		if err != nil {
			return Color{}, err
		}
		channels[i] = v
	}

	c := Color{R: channels[0], G: channels[1], B: channels[2], A: 1}
	if len(parts) == 4 {
		if c.A, err = parseAlpha(parts[3]); err != nil {
			return Color{}, err
		}
	}
	return c, nil
}

func parseHSLArgs(args string) (Color, error) {
	parts, err := splitArgs(args)
	if err != nil {
		return Color{}, err
	}

	hue, err := parseNumber(strings.TrimSuffix(parts[0], "deg"))
	if err != nil {
		return Color{}, err
	}
	hue = math.Mod(hue, 360)
	if hue < 0 {
		hue += 360
	}

	sat, err := parsePercent(parts[1])
	if err != nil {
		return Color{}, err
	}
	light, err := parsePercent(parts[2])
	if err != nil {
		return Color{}, err
	}

	alpha := 1.0
	if len(parts) == 4 {
		if alpha, err = parseAlpha(parts[3]); err != nil {
			return Color{}, err
		}
	}

	return FromColorful(colorful.Hsl(hue, sat, light), alpha), nil
}

// parseChannel reads an 8-bit channel given as a number or a percentage.
func parseChannel(s string) (uint8, error) {
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		v, err := parseNumber(pct)
		if err != nil {
			return 0, err
		}
		return uint8(util.Clamp(math.Round(v*255/100), 0, 255)), nil
	}

	v, err := parseNumber(s)
	if err != nil {
		return 0, err
	}
	return uint8(util.Clamp(math.Round(v), 0, 255)), nil
}

// parseAlpha reads alpha given as a number in [0, 1] or a percentage.
func parseAlpha(s string) (float64, error) {
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		v, err := parseNumber(pct)
		if err != nil {
			return 0, err
		}
		return util.Clamp(v/100, 0, 1), nil
	}

	v, err := parseNumber(s)
	if err != nil {
		return 0, err
	}
	return util.Clamp(v, 0, 1), nil
}

// parsePercent reads a saturation or lightness value into [0, 1].
func parsePercent(s string) (float64, error) {
	v, err := parseNumber(strings.TrimSuffix(s, "%"))
	if err != nil {
		return 0, err
	}
	return util.Clamp(v/100, 0, 1), nil
}

func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return v, nil
}
