package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/hueseek/hueseek/catalog"
	"github.com/hueseek/hueseek/color"
	"github.com/hueseek/hueseek/filesystem"
	"github.com/hueseek/hueseek/icon"
	"github.com/hueseek/hueseek/log"
	"github.com/hueseek/hueseek/query"
	"github.com/hueseek/hueseek/style"
	"github.com/hueseek/hueseek/util"
	"github.com/hueseek/hueseek/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(catalogCmd)
}

// catalogCmd groups operations on the reference color catalog.
var catalogCmd = &cobra.Command{
	Use:     "catalog",
	Short:   "Inspect and validate color catalogs",
	Aliases: []string{"catalogs"},
}

func printEntry(e catalog.Entry) {
	fmt.Printf("%s %s %s\n", style.Swatch(e.Color), style.Fg(color.Purple)(e.Name), style.Faint(e.Color.Hex()))
}

func completionCatalogNames(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	c, err := loadCatalog("")
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return query.Find(toComplete, c.Names()), cobra.ShellCompDirectiveNoFileComp
}

func init() {
	catalogCmd.AddCommand(catalogListCmd)
	catalogListCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON array")
}

// catalogListCmd prints every flattened catalog entry.
var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every color of the catalog",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		c, err := loadCatalog("")
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(os.Stdout).Encode(c.Entries()))
			return
		}

		fmt.Printf("%s %s %s\n\n", icon.Get(icon.Catalog), style.Bold(util.FileStem(c.Source())), style.Faint(util.Quantify(c.Len(), "color", "colors")))
		for _, e := range c.Entries() {
			printEntry(e)
		}
	},
}

// catalogShowCmd prints a single entry in every notation.
var catalogShowCmd = &cobra.Command{
	Use:               "show [name]",
	Short:             "Show a catalog color by name",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionCatalogNames,
	Run: func(cmd *cobra.Command, args []string) {
		c, err := loadCatalog("")
		handleErr(err)

		entry, ok := c.Find(args[0]).Get()
		if !ok {
			msg := fmt.Sprintf("no color named %s", style.Fg(color.Red)(args[0]))
			if suggestion, ok := query.DidYouMean(args[0], c.Names()).Get(); ok {
				msg += fmt.Sprintf(", did you mean %s?", style.Fg(color.Yellow)(suggestion))
			}
			handleErr(errors.New(msg))
		}

		if err := query.Remember(entry.Name, 1); err != nil {
			log.Warnf("remember %s: %v", entry.Name, err)
		}

		l, a, b := entry.Color.Colorful().Lab()
		printEntry(entry)
		fmt.Printf("  %s %s\n", style.Faint("rgba"), entry.Color)
		fmt.Printf("  %s  %s\n", style.Faint("hex"), entry.Color.Hex())
		fmt.Printf("  %s  L*=%.2f a*=%.2f b*=%.2f\n", style.Faint("lab"), l*100, a*100, b*100)
	},
}

// catalogFindCmd searches catalog names.
var catalogFindCmd = &cobra.Command{
	Use:   "find [query]",
	Short: "Search catalog colors by name",
	Args:  cobra.ExactArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		c, err := loadCatalog("")
		handleErr(err)

		names := query.Find(args[0], c.Names())
		if len(names) == 0 {
			fmt.Printf("%s nothing matches %s\n", icon.Get(icon.Search), style.Fg(color.Yellow)(args[0]))
			return
		}

		for _, name := range names {
			printEntry(c.Get(name).MustGet())
		}
	},
}

// catalogValidateCmd loads a catalog and reports the first problem.
var catalogValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check that a catalog file loads",
	Long:  "Load a catalog without the snapshot cache and report the first invalid color, malformed node or duplicate name.",
	Args:  cobra.MaximumNArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(catalog.Formats(), func(ext string, _ int) string {
			return strings.TrimPrefix(ext, ".")
		}), cobra.ShellCompDirectiveFilterFileExt
	},
	Run: func(cmd *cobra.Command, args []string) {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}

		c, err := loadCatalogWith(path, false)
		handleErr(err)

		fmt.Printf(
			"%s %s is valid, %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			c.Source(),
			util.Quantify(c.Len(), "color", "colors"),
		)
	},
}

func init() {
	catalogCmd.AddCommand(catalogShowCmd, catalogFindCmd, catalogValidateCmd)
}

func init() {
	catalogCmd.AddCommand(catalogNewCmd)

	catalogNewCmd.Flags().StringP("name", "n", "", "The display name of the new catalog")
	catalogNewCmd.Flags().BoolP("force", "f", false, "Overwrite an existing catalog with the same name")
	lo.Must0(catalogNewCmd.MarkFlagRequired("name"))
}

// catalogNewCmd scaffolds a Lua catalog in the catalogs directory.
var catalogNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Scaffold a new Lua catalog",
	Long:  "Write a starter Lua catalog into the catalogs directory. Load it afterwards with --catalog NAME.lua.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.SetOut(os.Stdout)

		author := "Anonymous"
		if usr, err := user.Current(); err == nil {
			author = usr.Username
		}

		name := lo.Must(cmd.Flags().GetString("name"))
		filename := util.SanitizeFilename(name)
		if filename == "" {
			handleErr(fmt.Errorf("catalog name %q has no usable characters", name))
		}

		target := filepath.Join(where.Catalogs(), filename+".lua")
		exists, err := filesystem.API().Exists(target)
		handleErr(err)
		if exists && !lo.Must(cmd.Flags().GetBool("force")) {
			handleErr(fmt.Errorf("%s already exists, use --force to overwrite", target))
		}

		f, err := filesystem.API().Create(target)
		handleErr(err)
		defer f.Close()

		handleErr(catalog.Scaffold(f, name, author))
		cmd.Println(target)
	},
}
