package main

import (
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yacobolo/twcss"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for twcss commands and flags.

The explain command also completes utility names from the default registry:

  source <(twcss completion bash)
  twcss explain bg-<TAB>`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		descriptions, _ := cmd.Flags().GetBool("descriptions")
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletionV2(out, descriptions)
		case "zsh":
			if descriptions {
				return rootCmd.GenZshCompletion(out)
			}
			return rootCmd.GenZshCompletionNoDesc(out)
		case "fish":
			return rootCmd.GenFishCompletion(out, descriptions)
		case "powershell":
			if descriptions {
				return rootCmd.GenPowerShellCompletionWithDesc(out)
			}
			return rootCmd.GenPowerShellCompletion(out)
		}
		return nil
	},
}

func init() {
	completionCmd.Flags().Bool("descriptions", true, "Include completion descriptions")
}

// completeClasses offers literal utilities and "prefix-" stems matching the
// word being completed. Variant prefixes already typed are kept.
func completeClasses(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	variants, base := "", toComplete
	if i := strings.LastIndexByte(toComplete, ':'); i >= 0 {
		variants, base = toComplete[:i+1], toComplete[i+1:]
	}

	seen := make(map[string]bool)
	var out []string
	for _, def := range twcss.NewRegistry(twcss.DefaultTheme()).Definitions() {
		name := def.Prefix
		if !def.IsLiteral() {
			name += "-"
		}
		if name == "-" || seen[name] || !strings.HasPrefix(name, base) {
			continue
		}
		seen[name] = true
		out = append(out, variants+name)
	}
	sort.Strings(out)
	return out, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
}
