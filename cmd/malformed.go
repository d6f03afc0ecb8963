package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/JonasFriedli/DestructiveJSON/pkg/payload"
)

var (
	malformedMode string
	malformedOut  string
)

var malformedCmd = &cobra.Command{
	Use:   "malformed",
	Short: "Text that violates exactly one JSON syntax rule",
	Long: `Generate deterministically broken text. Each mode violates a single
syntax rule, so a parser that accepts the output can be pinned to the rule
it ignored.

Modes: ` + strings.Join(payload.Modes(), ", ") + `

Example:
  destructivejson malformed -m trailing-comma
  destructivejson malformed --mode broken-utf8 -o bad.json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := payload.Malformed(payload.MalformedParams{Mode: malformedMode})
		if err != nil {
			return err
		}
		return emitPayload(cmd, p, malformedOut)
	},
}

func init() {
	rootCmd.AddCommand(malformedCmd)

	malformedCmd.Flags().StringVarP(&malformedMode, "mode", "m", string(payload.DefaultMode), "Malformation mode")
	malformedCmd.Flags().StringVarP(&malformedOut, "output", "o", "", "Output file (default: stdout)")
}
