package cmd

import (
	"github.com/spf13/cobra"

	"github.com/JonasFriedli/DestructiveJSON/pkg/payload"
)

var (
	manyCount  int
	manyPrefix string
	manyOut    string
)

var manykeysCmd = &cobra.Command{
	Use:   "manykeys",
	Short: "Flat object with a huge number of distinct keys",
	Long: `Generate one object holding N distinct keys, each an index-derived name
mapped to its index. Stresses hash tables, key interning, and per-key
allocation in the consumer.

Example:
  destructivejson manykeys -n 100000 -o many.json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := payload.ManyKeys(payload.ManyKeysParams{Count: manyCount, Prefix: manyPrefix})
		if err != nil {
			return err
		}
		return emitPayload(cmd, p, manyOut)
	},
}

func init() {
	rootCmd.AddCommand(manykeysCmd)

	manykeysCmd.Flags().IntVarP(&manyCount, "count", "n", payload.DefaultCount, "Number of keys")
	manykeysCmd.Flags().StringVar(&manyPrefix, "prefix", payload.DefaultPrefix, "Key name prefix")
	manykeysCmd.Flags().StringVarP(&manyOut, "output", "o", "", "Output file (default: stdout)")
}
