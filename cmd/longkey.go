package cmd

import (
	"github.com/spf13/cobra"

	"github.com/JonasFriedli/DestructiveJSON/pkg/payload"
)

var (
	longkeyLength int
	longkeyOut    string
)

var longkeyCmd = &cobra.Command{
	Use:   "longkey",
	Short: "Object with a single oversized key",
	Long: `Generate an object whose only key is exactly L characters long, probing
key-length limits and fixed-size buffers.

Example:
  destructivejson longkey -l 1000000 -o longkey.json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := payload.LongKey(payload.LongKeyParams{Length: longkeyLength})
		if err != nil {
			return err
		}
		return emitPayload(cmd, p, longkeyOut)
	},
}

func init() {
	rootCmd.AddCommand(longkeyCmd)

	longkeyCmd.Flags().IntVarP(&longkeyLength, "length", "l", payload.DefaultKeyLength, "Exact key length in characters")
	longkeyCmd.Flags().StringVarP(&longkeyOut, "output", "o", "", "Output file (default: stdout)")
}
