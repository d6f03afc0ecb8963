package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/JonasFriedli/DestructiveJSON/pkg/payload"
)

var (
	dunderTarget string
	dunderOut    string
)

var dunderCmd = &cobra.Command{
	Use:   "dunder",
	Short: "Object with magic attribute and prototype names as keys",
	Long: `Generate an object carrying keys like __class__, __dict__, or __proto__.
Deserializers that map keys onto object attributes or prototypes may treat
these specially; a robust one must not.

Targets: ` + strings.Join(payload.DunderTargets(), ", ") + `

Example:
  destructivejson dunder -t __proto__ -o proto.json
  destructivejson dunder --target all`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := payload.Dunder(payload.DunderParams{Target: dunderTarget})
		if err != nil {
			return err
		}
		return emitPayload(cmd, p, dunderOut)
	},
}

func init() {
	rootCmd.AddCommand(dunderCmd)

	dunderCmd.Flags().StringVarP(&dunderTarget, "target", "t", payload.TargetAll, "Catalog name or \"all\"")
	dunderCmd.Flags().StringVarP(&dunderOut, "output", "o", "", "Output file (default: stdout)")
}
