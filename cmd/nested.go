package cmd

import (
	"github.com/spf13/cobra"

	"github.com/JonasFriedli/DestructiveJSON/pkg/payload"
)

var (
	nestedDepth  int
	nestedArrays bool
	nestedOut    string
)

var nestedCmd = &cobra.Command{
	Use:   "nested",
	Short: "Deeply nested document that stresses recursive parsers",
	Long: `Generate a document nested D levels deep around a single scalar leaf.
The text stays small while recursion-bound parsers run into their depth
limits.

Example:
  destructivejson nested -d 2000 -o nested.json
  destructivejson nested --depth 100000 | parser-under-test`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := payload.Nested(payload.NestedParams{Depth: nestedDepth, Arrays: nestedArrays})
		if err != nil {
			return err
		}
		return emitPayload(cmd, p, nestedOut)
	},
}

func init() {
	rootCmd.AddCommand(nestedCmd)

	nestedCmd.Flags().IntVarP(&nestedDepth, "depth", "d", payload.DefaultDepth, "Nesting depth (0 emits the bare leaf)")
	nestedCmd.Flags().BoolVar(&nestedArrays, "arrays", false, "Nest single-element arrays instead of objects")
	nestedCmd.Flags().StringVarP(&nestedOut, "output", "o", "", "Output file (default: stdout)")
}
