package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hueseek/hueseek/catalog"
	"github.com/hueseek/hueseek/color"
	"github.com/hueseek/hueseek/filesystem"
	"github.com/hueseek/hueseek/gradient"
	"github.com/hueseek/hueseek/history"
	"github.com/hueseek/hueseek/icon"
	"github.com/hueseek/hueseek/inline"
	"github.com/hueseek/hueseek/key"
	"github.com/hueseek/hueseek/log"
	"github.com/hueseek/hueseek/match"
	"github.com/hueseek/hueseek/query"
	"github.com/hueseek/hueseek/rgba"
	"github.com/hueseek/hueseek/style"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().Float64P("gradient", "g", 0, "Sample the built-in spectrum at a position from 0 (red) to 1 (violet)")

	matchCmd.Flags().StringP("metric", "m", "", "Distance metric: rgba, cie76 (lab) or ciede2000")
	lo.Must0(matchCmd.RegisterFlagCompletionFunc("metric", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return match.MetricNames(), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.MatchMetric, matchCmd.Flags().Lookup("metric")))

	matchCmd.Flags().IntP("limit", "n", 0, "Number of matches to show, 0 shows all")
	lo.Must0(viper.BindPFlag(key.MatchLimit, matchCmd.Flags().Lookup("limit")))

	matchCmd.Flags().Bool("swatches", true, "Render color swatches next to matches")
	lo.Must0(viper.BindPFlag(key.MatchSwatches, matchCmd.Flags().Lookup("swatches")))

	matchCmd.Flags().StringP("filter", "f", "", "Criteria for selecting specific matches from the ranking")
	matchCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	matchCmd.Flags().StringP("output", "o", "", "Specify a file path to write the command output")
}

// matchCmd ranks the catalog against a sampled color.
var matchCmd = &cobra.Command{
	Use:   "match [color]",
	Short: "Rank the catalog by closeness to a color",
	Long: `Rank every catalog color by its distance to a sample and show the closest ones.

The sample is a CSS color (#rgb, #rrggbb, #rrggbbaa, rgb(), rgba(), hsl(), hsla(),
a named color) or the name of a catalog entry. Use --gradient to sample the
built-in red to violet spectrum instead.

Match selectors:
  first - closest match
  last - farthest match
  all - every match
  [number] - select a match by rank (starting from 0)
  [from]-[to] - select matches by rank range
  @[substring]@ - select matches by name substring`,
	Example: `  hueseek match "#e11937"
  hueseek match "rgb(225 25 55 / 80%)" --metric rgba --limit 3
  hueseek match --gradient 0.42 --json`,
	Args: cobra.MaximumNArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	},
	PreRun: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 && !cmd.Flags().Changed("gradient") {
			handleErr(errors.New("a color argument or the --gradient flag is required"))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		c, err := loadCatalog("")
		handleErr(err)

		metric, err := match.ParseMetric(viper.GetString(key.MatchMetric))
		handleErr(err)

		sample, err := resolveSample(cmd, args, c)
		handleErr(err)

		filter := mo.None[inline.Filter]()
		if description := lo.Must(cmd.Flags().GetString("filter")); description != "" {
			fn, err := inline.ParseFilter(description)
			handleErr(err)
			filter = mo.Some(fn)
		}

		var (
			asJson = lo.Must(cmd.Flags().GetBool("json"))
			output = lo.Must(cmd.Flags().GetString("output"))
			writer io.Writer
		)
		if output != "" {
			file, err := filesystem.API().Create(output)
			handleErr(err)
			defer file.Close()
			writer = file
		} else {
			writer = os.Stdout
			if !asJson {
				fmt.Printf(
					"%s %s %s %s\n\n",
					icon.Get(icon.Sample),
					style.Swatch(sample),
					style.Fg(color.Yellow)(sample.String()),
					style.Faint(metric.String()),
				)
			}
		}

		ranked, err := inline.Run(c, &inline.Options{
			Out:      writer,
			Sample:   sample,
			Metric:   metric,
			Limit:    viper.GetInt(key.MatchLimit),
			Json:     asJson,
			Swatches: viper.GetBool(key.MatchSwatches) && output == "" && !asJson,
			Filter:   filter,
		})
		handleErr(err)

		if best, ok := lo.First(ranked); ok && viper.GetBool(key.HistorySave) {
			if err := history.Save(sample, metric, best); err != nil {
				log.Warnf("save history: %v", err)
			}
		}
	},
}

// resolveSample reads the sample from --gradient, a color string or a catalog entry name.
func resolveSample(cmd *cobra.Command, args []string, c *catalog.Catalog) (match.Sample, error) {
	if cmd.Flags().Changed("gradient") {
		return gradient.Default.At(lo.Must(cmd.Flags().GetFloat64("gradient"))), nil
	}

	sample, err := rgba.Parse(args[0])
	if err == nil {
		return sample, nil
	}

	if entry, ok := c.Find(args[0]).Get(); ok {
		if err := query.Remember(entry.Name, 1); err != nil {
			log.Warnf("remember %s: %v", entry.Name, err)
		}
		return entry.Color, nil
	}

	return match.Sample{}, err
}

func init() {
	matchCmd.AddCommand(matchSchemaCmd)
}

// matchSchemaCmd prints the JSON schema of the match output.
var matchSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema of the structured match output",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(json.NewEncoder(os.Stdout).Encode(inline.Schema()))
	},
}
