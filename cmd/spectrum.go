package cmd

import (
	"fmt"
	"strings"

	"github.com/hueseek/hueseek/gradient"
	"github.com/hueseek/hueseek/style"
	"github.com/hueseek/hueseek/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(spectrumCmd)
	spectrumCmd.Flags().IntP("width", "w", 0, "Width of the spectrum bar, 0 uses the terminal width")
}

// spectrumCmd draws the spectrum sampled by match --gradient.
var spectrumCmd = &cobra.Command{
	Use:   "spectrum",
	Short: "Show the spectrum sampled by match --gradient",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		width := lo.Must(cmd.Flags().GetInt("width"))
		if width <= 0 {
			width = util.TerminalWidth()
		}

		fmt.Println(style.Strip(gradient.Default.Samples(width)))

		labels := "0" + strings.Repeat(" ", util.Max(0, width-4)) + "1.0"
		fmt.Println(style.Faint(labels))
		fmt.Println(style.Faint(strings.Join(gradient.DefaultStops, " → ")))
	},
}
