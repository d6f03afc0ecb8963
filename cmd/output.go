package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/JonasFriedli/DestructiveJSON/pkg/payload"
)

// Output formatters shared by every subcommand.
var (
	successColor = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow)
	infoColor    = color.New(color.FgCyan)
)

// emitPayload renders p and writes it to outPath, or to stdout when the
// path is empty or "-". Stdout mode carries nothing but the exact payload
// bytes, so the output can be piped straight into a parser under test.
func emitPayload(cmd *cobra.Command, p payload.Payload, outPath string) error {
	data, err := p.Render()
	if err != nil {
		return fmt.Errorf("rendering %s payload: %w", p.Kind(), err)
	}
	if outPath == "" || outPath == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return fmt.Errorf("%w: writing %s: %v", payload.ErrIO, outPath, err)
	}
	if !quiet {
		successColor.Printf("Wrote %s (%d bytes)\n", outPath, len(data))
	}
	return nil
}
