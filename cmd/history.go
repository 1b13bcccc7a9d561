package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hueseek/hueseek/color"
	"github.com/hueseek/hueseek/history"
	"github.com/hueseek/hueseek/icon"
	"github.com/hueseek/hueseek/inline"
	"github.com/hueseek/hueseek/rgba"
	"github.com/hueseek/hueseek/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().BoolP("clear", "c", false, "Forget every matched sample")
	historyCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON array")
	historyCmd.Flags().IntP("limit", "n", 0, "Number of samples to show, 0 shows all")
	historyCmd.MarkFlagsMutuallyExclusive("clear", "json")
}

// historyCmd lists previously matched samples.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List previously matched samples, most recent first",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("clear")) {
			handleErr(history.Clear())
			fmt.Printf("%s history cleared\n", style.Fg(color.Green)(icon.Get(icon.Success)))
			return
		}

		samples, err := history.Recent()
		handleErr(err)

		if limit := lo.Must(cmd.Flags().GetInt("limit")); limit > 0 && limit < len(samples) {
			samples = samples[:limit]
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(os.Stdout).Encode(samples))
			return
		}

		if len(samples) == 0 {
			fmt.Printf("%s no matched samples yet\n", icon.Get(icon.History))
			return
		}

		for _, s := range samples {
			swatch := "  "
			if c, err := rgba.Parse(s.Hex); err == nil {
				swatch = style.Swatch(c)
			}

			fmt.Printf(
				"%s %s %s %s %s %s\n",
				swatch,
				style.Fg(color.Yellow)(s.Sample),
				style.Faint("→"),
				style.Fg(color.Purple)(s.Best),
				style.Faint(fmt.Sprintf("%s %s", s.Metric, inline.FormatScore(s.Score))),
				style.Faint(fmt.Sprintf("×%d", s.Count)),
			)
		}
	},
}
