// Package cmd implements the command-line interface for hueseek.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/hueseek/hueseek/catalog"
	"github.com/hueseek/hueseek/color"
	"github.com/hueseek/hueseek/constant"
	"github.com/hueseek/hueseek/icon"
	"github.com/hueseek/hueseek/key"
	"github.com/hueseek/hueseek/log"
	"github.com/hueseek/hueseek/style"
	"github.com/hueseek/hueseek/util"
	"github.com/hueseek/hueseek/where"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("catalog", "C", "", "Catalog file to match against (.yml, .yaml, .json, .lua)")
	lo.Must0(rootCmd.MarkPersistentFlagFilename("catalog", "yml", "yaml", "json", "lua"))
	lo.Must0(viper.BindPFlag(key.CatalogPath, rootCmd.PersistentFlags().Lookup("catalog")))

	rootCmd.PersistentFlags().BoolP("write-history", "H", true, "Remember matched samples in the history")
	lo.Must0(viper.BindPFlag(key.HistorySave, rootCmd.PersistentFlags().Lookup("write-history")))

	// Temporary files from a previous run are no longer needed.
	go func() {
		_ = util.Delete(where.Temp())
	}()
}

// rootCmd defines the entry point for the hueseek application.
var rootCmd = &cobra.Command{
	Use:   constant.Hueseek,
	Short: "Find the closest named colors to any color",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiPurple).Render("    - Find the closest named colors to any color"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(cmd.Help())
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}

// loadCatalog loads the catalog at path following the configured policies.
// An empty path falls back to the configured catalog.
func loadCatalog(path string) (*catalog.Catalog, error) {
	return loadCatalogWith(path, viper.GetBool(key.CatalogCache))
}

func loadCatalogWith(path string, cache bool) (*catalog.Catalog, error) {
	if path == "" {
		path = viper.GetString(key.CatalogPath)
	}

	duplicates, err := catalog.ParseDuplicates(viper.GetString(key.CatalogDuplicates))
	if err != nil {
		return nil, err
	}

	return catalog.Load(path, catalog.WithDuplicates(duplicates), catalog.WithCache(cache))
}
