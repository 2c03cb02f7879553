package cmd

import (
	"github.com/spf13/cobra"

	"runsh/cmd/cli/app"
)

func ScriptArgsCompletion(
	cmd *cobra.Command,
	args []string,
	toComplete string,
) ([]cobra.Completion, cobra.ShellCompDirective) {
	if len(args) > 0 {
		// Arguments past the script path belong to the script.
		return nil, cobra.ShellCompDirectiveDefault
	}
	configRepo, err := app.InjectConfigRepo()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	config, err := configRepo.LoadConfig()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	var matchingAliases []string
	for name := range config.Scripts {
		matchingAliases = append(matchingAliases, name)
	}

	// Completing file paths stays useful alongside the aliases.
	return matchingAliases, cobra.ShellCompDirectiveDefault
}
