package cmd

import (
	"github.com/spf13/cobra"

	"github.com/JonasFriedli/DestructiveJSON/pkg/payload"
)

var (
	hugearrayLength int
	hugearrayOut    string
)

var hugearrayCmd = &cobra.Command{
	Use:   "hugearray",
	Short: "Array with a huge number of elements",
	Long: `Generate {"arr":[0,0,...]} with N elements, probing array preallocation
and memory limits.

Example:
  destructivejson hugearray -n 5000000 -o hugearray.json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := payload.HugeArray(payload.HugeArrayParams{Length: hugearrayLength})
		if err != nil {
			return err
		}
		return emitPayload(cmd, p, hugearrayOut)
	},
}

func init() {
	rootCmd.AddCommand(hugearrayCmd)

	hugearrayCmd.Flags().IntVarP(&hugearrayLength, "length", "n", payload.DefaultArrayLength, "Number of elements")
	hugearrayCmd.Flags().StringVarP(&hugearrayOut, "output", "o", "", "Output file (default: stdout)")
}
