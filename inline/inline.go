// Package inline writes ranked matches for scripts and terminals.
package inline

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hueseek/hueseek/catalog"
	"github.com/hueseek/hueseek/log"
	"github.com/hueseek/hueseek/match"
	"github.com/hueseek/hueseek/style"
	"github.com/hueseek/hueseek/util"
	"github.com/muesli/reflow/truncate"
)

// Run ranks the catalog against the sample, applies the filter and the
// limit, and writes the result. It returns the full ranking.
func Run(c *catalog.Catalog, options *Options) ([]match.Ranked, error) {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	ranked, err := match.RankCatalog(options.Sample, c, options.Metric)
	if err != nil {
		return nil, err
	}

	positions := make(map[string]int, len(ranked))
	for i, r := range ranked {
		positions[r.Entry.Name] = i
	}

	shown := ranked
	if options.Filter.IsPresent() {
		if shown, err = options.Filter.MustGet()(shown); err != nil {
			return nil, err
		}
	}
	shown = match.Top(shown, options.Limit)

	log.WithFields(log.Fields{
		"sample":  options.Sample.String(),
		"metric":  options.Metric.String(),
		"catalog": c.Source(),
		"shown":   len(shown),
	}).Info("ranked catalog")

	if options.Json {
		return ranked, writeJson(options.Out, newOutput(c.Source(), options, shown, positions))
	}

	return ranked, writeText(options.Out, shown, options)
}

func writeJson(out io.Writer, output *Output) error {
	data, err := asJson(output)
	if err != nil {
		return err
	}
	_, err = out.Write(append(data, '\n'))
	return err
}

// FormatScore renders a score for display.
func FormatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', 2, 64)
}

func writeText(out io.Writer, shown []match.Ranked, options *Options) error {
	width := options.Width
	if width <= 0 {
		width = util.TerminalWidth()
	}

	var nameWidth int
	for _, r := range shown {
		nameWidth = util.Max(nameWidth, lipgloss.Width(r.Entry.Name))
	}

	for _, r := range shown {
		var b strings.Builder
		if options.Swatches {
			b.WriteString(style.Swatch(r.Entry.Color))
			b.WriteByte(' ')
		}
		b.WriteString(r.Entry.Name)
		b.WriteString(strings.Repeat(" ", nameWidth-lipgloss.Width(r.Entry.Name)))
		fmt.Fprintf(&b, "  %-26s  %s", r.Entry.Color, FormatScore(r.Score))

		if _, err := fmt.Fprintln(out, truncate.StringWithTail(b.String(), uint(width), "…")); err != nil {
			return err
		}
	}

	return nil
}
