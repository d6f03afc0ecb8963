package cmd

import (
	"github.com/spf13/cobra"

	"github.com/JonasFriedli/DestructiveJSON/pkg/payload"
)

var (
	duplicateKey    string
	duplicateRepeat int
	duplicateOut    string
)

var duplicateCmd = &cobra.Command{
	Use:   "duplicate",
	Short: "Object repeating the same key with different values",
	Long: `Generate raw text in which one key appears several times with distinct
values. Parsers disagree on which occurrence wins; consumers comparing
first-match and last-match behavior can be desynchronized.

Example:
  destructivejson duplicate -k session -r 3`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := payload.Duplicate(payload.DuplicateParams{Key: duplicateKey, Repeat: duplicateRepeat})
		if err != nil {
			return err
		}
		return emitPayload(cmd, p, duplicateOut)
	},
}

func init() {
	rootCmd.AddCommand(duplicateCmd)

	duplicateCmd.Flags().StringVarP(&duplicateKey, "key", "k", payload.DefaultDupKey, "Key to repeat")
	duplicateCmd.Flags().IntVarP(&duplicateRepeat, "repeat", "r", payload.DefaultDupRepeat, "How many times the key appears (minimum 2)")
	duplicateCmd.Flags().StringVarP(&duplicateOut, "output", "o", "", "Output file (default: stdout)")
}
