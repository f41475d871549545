package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/coalog/config"
	"github.com/msto63/coalog/config/toml"
	"github.com/msto63/coalog/core/i18n"
)

var (
	locale string
	strict bool
)

var errIssuesFound = errors.New("configuration check failed")

var rootCmd = &cobra.Command{
	Use:   "coalog-check FILE",
	Short: "Check a coalog configuration file",
	Long: `coalog-check parses a coalog configuration file and prints every
problem it finds as

  severity code line:column message

Syntax errors do not stop the check; the parser resynchronizes at the
next statement and keeps going, so one run reports all problems.
Semantic warnings (unknown keys, wrong types, invalid values) are
included as well.

The exit code is 1 when the file contains errors, or, with --strict,
when it contains any finding at all.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCheck,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().StringVar(&locale, "locale", "en", "message locale (en, de)")
	rootCmd.Flags().BoolVar(&strict, "strict", false, "treat warnings as failures")
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := args[0]

	manager := i18n.Default()
	if err := manager.SetLocale(locale); err != nil {
		fmt.Fprintf(os.Stderr, "unknown locale %q, available: %v\n",
			locale, manager.AvailableLocales())
		return errIssuesFound
	}
	renderer := i18n.NewDiagnosticRenderer(manager)

	raw, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot read %s: %v\n", path, err)
		return errIssuesFound
	}

	_, diags := config.Parse(string(raw))
	for _, d := range diags {
		fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(d))
	}

	if toml.HasErrors(diags) || (strict && len(diags) > 0) {
		return errIssuesFound
	}
	return nil
}
