package cmd

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/JonasFriedli/DestructiveJSON/pkg/batch"
)

var (
	allOutDir  string
	allDepth   int
	allCount   int
	allLength  int
	allSuite   string
	allVerbose bool
)

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Write one artifact per payload kind into a directory",
	Long: `Generate the full payload catalog into a directory, one file per kind.
A kind that fails is reported and skipped; the rest of the batch still
runs. The command fails only when the directory is unusable or nothing at
all could be produced.

Example:
  destructivejson all -d payloads
  destructivejson all --suite suite.yaml --verbose`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		items := batch.DefaultItems(allDepth, allCount, allLength)
		if allSuite != "" {
			var err error
			items, err = batch.LoadSuite(allSuite)
			if err != nil {
				return err
			}
		}

		var spin *spinner.Spinner
		if !quiet && !allVerbose {
			spin = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
			spin.Suffix = " generating payloads..."
			spin.Start()
		}

		gen := batch.New(allOutDir, items, newLogger(allVerbose))
		report, err := gen.Run()

		if spin != nil {
			spin.Stop()
		}
		if err != nil {
			return err
		}

		if !quiet {
			for _, a := range report.Written {
				successColor.Printf("Wrote %s (%d bytes)\n", a.Path, a.Bytes)
			}
		}
		for _, f := range report.Skipped {
			warningColor.Printf("Skipped %s: %v\n", f.FileName, f.Err)
		}
		if len(report.Written) == 0 {
			return fmt.Errorf("no artifacts produced")
		}
		if !quiet {
			infoColor.Printf("%d of %d artifacts in %s\n", len(report.Written), len(items), allOutDir)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(allCmd)

	allCmd.Flags().StringVarP(&allOutDir, "outdir", "d", "payloads", "Directory to write artifacts into")
	allCmd.Flags().IntVar(&allDepth, "depth", batch.DefaultBatchDepth, "Nesting depth for the nested artifact")
	allCmd.Flags().IntVar(&allCount, "many", batch.DefaultBatchCount, "Key count for the manykeys artifact")
	allCmd.Flags().IntVar(&allLength, "long", batch.DefaultBatchLength, "Key length for the longkey artifact")
	allCmd.Flags().StringVar(&allSuite, "suite", "", "YAML suite file overriding the default catalog")
	allCmd.Flags().BoolVarP(&allVerbose, "verbose", "v", false, "Structured logging for each artifact")
}
