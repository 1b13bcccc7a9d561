package cmd

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/hueseek/hueseek/color"
	"github.com/hueseek/hueseek/config"
	"github.com/hueseek/hueseek/icon"
	"github.com/hueseek/hueseek/style"
	"github.com/hueseek/hueseek/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

// envVar is one environment override and the config key it feeds.
type envVar struct {
	Name  string `json:"name"`
	Key   string `json:"key,omitempty"`
	Value string `json:"value,omitempty"`
	Set   bool   `json:"set"`
	Error string `json:"error,omitempty"`
}

// envVars lists every supported override, sorted by name. Values that a
// config validator rejects carry the reason.
func envVars() []envVar {
	vars := lo.Map(config.EnvExposed, func(k string, _ int) envVar {
		field := config.Default[k]
		return envVar{Name: field.Env(), Key: k}
	})
	vars = append(vars, envVar{Name: where.EnvConfigPath})

	for i := range vars {
		v := &vars[i]
		v.Value, v.Set = os.LookupEnv(v.Name)
		v.Set = v.Set && v.Value != ""

		if validate, ok := configValidators[v.Key]; ok && v.Set {
			if err := validate(v.Value); err != nil {
				v.Error = err.Error()
			}
		}
	}

	slices.SortFunc(vars, func(a, b envVar) int {
		return strings.Compare(a.Name, b.Name)
	})
	return vars
}

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Display only environment variables that are currently defined")
	envCmd.Flags().BoolP("unset-only", "u", false, "Display only environment variables that are currently undefined")
	envCmd.Flags().StringP("key", "k", "", "Display only overrides of config keys with this prefix, e.g. match or catalog")
	envCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON array")

	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
	_ = envCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)

	envCmd.SetOut(os.Stdout)
}

// envCmd displays the environment overrides and their current values.
var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Display the collection of supported environment variables",
	Long: `Display every environment variable that overrides a config key, its current value,
and whether hueseek would accept that value.`,
	Example: `  hueseek env --key match
  HUESEEK_MATCH_METRIC=lab hueseek env --set-only`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			setOnly   = lo.Must(cmd.Flags().GetBool("set-only"))
			unsetOnly = lo.Must(cmd.Flags().GetBool("unset-only"))
			prefix    = lo.Must(cmd.Flags().GetString("key"))
		)

		vars := lo.Filter(envVars(), func(v envVar, _ int) bool {
			switch {
			case setOnly && !v.Set, unsetOnly && v.Set:
				return false
			case prefix != "":
				return v.Key != "" && strings.HasPrefix(v.Key, prefix)
			default:
				return true
			}
		})

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(os.Stdout).Encode(vars))
			return
		}

		for _, v := range vars {
			cmd.Print(style.New().Bold(true).Foreground(color.Purple).Render(v.Name))
			cmd.Print("=")

			switch {
			case !v.Set:
				cmd.Print(style.Fg(color.Red)("unset"))
			case v.Error != "":
				cmd.Printf("%s %s %s", style.Fg(color.Yellow)(v.Value), icon.Get(icon.Warn), style.Fg(color.Red)(v.Error))
			default:
				cmd.Print(style.Fg(color.Green)(v.Value))
			}

			if v.Key != "" {
				cmd.Print(" ", style.Faint(v.Key))
			}
			cmd.Println()
		}
	},
}
