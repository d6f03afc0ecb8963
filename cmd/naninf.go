package cmd

import (
	"github.com/spf13/cobra"

	"github.com/JonasFriedli/DestructiveJSON/pkg/payload"
)

var naninfOut string

var naninfCmd = &cobra.Command{
	Use:   "naninf",
	Short: "Object with bare NaN and Infinity tokens",
	Long: `Generate {"x": NaN, "y": Infinity, "z": -Infinity}. The tokens are not
part of JSON; lenient parsers that accept them will disagree with strict
ones downstream.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return emitPayload(cmd, payload.NaNInf(), naninfOut)
	},
}

func init() {
	rootCmd.AddCommand(naninfCmd)

	naninfCmd.Flags().StringVarP(&naninfOut, "output", "o", "", "Output file (default: stdout)")
}
