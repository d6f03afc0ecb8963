package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	quiet   bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "destructivejson",
	Short: "Generate hostile JSON payloads for parser robustness testing",
	Long: `DestructiveJSON: a generator of pathological and deliberately broken JSON
payloads (deep nesting, huge objects, duplicate keys, bare NaN tokens,
malformed syntax) for authorized robustness testing of parsers and the
services behind them.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor {
			color.NoColor = true
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress status messages")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}
