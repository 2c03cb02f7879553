package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"runsh/cmd/cli/app"
	"runsh/internal/cli/output"
	"runsh/internal/core/domain"
)

var rootCmd = &cobra.Command{
	Use:   "runsh <script> [script args...]",
	Short: "Runs a shell script and relays its output and exit status",
	Long: `Runsh lets a build system that expects interpreter-based build steps
invoke plain shell scripts. The script is marked executable, run through a
POSIX shell, and its output and exit status are relayed to the caller.

On success the script's stdout is written verbatim to stdout. On failure a
header and both captured streams are surfaced on stderr, and runsh exits
with the script's exact exit status.

An optional ~/.runsh.yaml can change the interpreter and define script
aliases. Run 'runsh initialize' to create a sample configuration file.`,
	Args:              cobra.MinimumNArgs(1),
	ValidArgsFunction: ScriptArgsCompletion,
	SilenceErrors:     true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Argument validation passed; a failing script is not a
		// reason to dump usage text.
		cmd.SilenceUsage = true

		handler, err := app.InjectRunScriptCommandHandler()
		if err != nil {
			return err
		}

		result, err := handler.Handle(args[0], args[1:])
		if err != nil {
			return err
		}

		return relayResult(result, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	// Everything after the script path belongs to the script,
	// including arguments that look like flags.
	rootCmd.Flags().SetInterspersed(false)
}

// relayResult copies a finished script's captured output onto the tool's
// own streams. Success relays stdout verbatim; failure surfaces the
// header and both streams on stderr and carries the exit status out as
// a domain.ExitError.
func relayResult(result *domain.ExecutionResult, stdout, stderr io.Writer) error {
	if result.Succeeded() {
		if result.Stdout != "" {
			fmt.Fprint(stdout, result.Stdout)
		}
		return nil
	}

	fmt.Fprintf(stderr, "%s %s\n",
		output.Error(output.SymbolError),
		output.Error(fmt.Sprintf("error running shell script: %s", result.Script)))
	if result.Stdout != "" {
		fmt.Fprintln(stderr, result.Stdout)
	}
	if result.Stderr != "" {
		fmt.Fprintln(stderr, result.Stderr)
	}

	return &domain.ExitError{Script: result.Script, Code: result.ExitCode}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr *domain.ExitError
		if errors.As(err, &exitErr) {
			// Diagnostics were already relayed; only the script's
			// status is left to propagate.
			os.Exit(exitErr.Code)
		}
		output.PrintError(err.Error())
		os.Exit(1)
	}
}
