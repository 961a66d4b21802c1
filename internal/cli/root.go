// Package cli implements the cpl command line: rendering a lister block from
// a markup file and serving the HTTP API.
package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/svfranklindemo/saharan-luma-18022026-43226/internal/logging"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "html" | "json" | "yaml"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"html", "json", "yaml"}

// NewRootCommand creates the root command for the cpl CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "cpl",
		Short: "Category product lister",
		Long: `Render the category product lister block outside the browser.

Reads authored block markup, queries the product content API and prints the
decorated block, or serves the same pipeline over HTTP.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "html", "output format (html|json|yaml)")

	cmd.AddCommand(NewRenderCommand(opts))
	cmd.AddCommand(NewServeCommand(opts))

	return cmd
}

// logger is silent unless --verbose is set
func (o *RootOptions) logger() *zap.Logger {
	if !o.Verbose {
		return zap.NewNop()
	}
	l, err := logging.New("development", "debug")
	if err != nil {
		return zap.NewNop()
	}
	return l
}
