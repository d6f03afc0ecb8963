package cmd

import (
	"github.com/spf13/cobra"

	"github.com/JonasFriedli/DestructiveJSON/pkg/payload"
)

var (
	mixedCount int
	mixedLong  int
	mixedOut   string
)

var mixedCmd = &cobra.Command{
	Use:   "mixed",
	Short: "Combined payload: many keys, a dunder probe, one oversized value",
	Long: `Generate one object combining the manykeys body, a __dict__ probe, and a
single oversized string value. Consumers that survive each pattern alone
sometimes fail the combination.

Example:
  destructivejson mixed -n 30000 -l 5000 -o mixed.json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := payload.Mixed(payload.MixedParams{Count: mixedCount, Long: mixedLong})
		if err != nil {
			return err
		}
		return emitPayload(cmd, p, mixedOut)
	},
}

func init() {
	rootCmd.AddCommand(mixedCmd)

	mixedCmd.Flags().IntVarP(&mixedCount, "count", "n", payload.DefaultMixedCount, "Number of index-derived keys")
	mixedCmd.Flags().IntVarP(&mixedLong, "long", "l", payload.DefaultMixedLong, "Length of the oversized value")
	mixedCmd.Flags().StringVarP(&mixedOut, "output", "o", "", "Output file (default: stdout)")
}
