// Package cli wires the pipeline together behind the command line surface.
package cli

import (
	"context"
	"io"

	"github.com/mdtlens/mdtlens/internal/aggregator"
	"github.com/mdtlens/mdtlens/internal/discovery"
	"github.com/mdtlens/mdtlens/internal/gateway"
	"github.com/mdtlens/mdtlens/internal/query"
	"github.com/mdtlens/mdtlens/internal/report"
	"github.com/mdtlens/mdtlens/internal/schema"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type options struct {
	fetch     bool
	types     []string
	csv       bool
	output    string
	markdown  bool
	minLength int
}

// Execute runs the mdtlens application.
func Execute() error {
	return newRootCommand().Execute()
}

func newRootCommand() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "mdtlens",
		Short: "Field length statistics for Salesforce custom metadata types",
		Long: `mdtlens shells out to the sf CLI to discover custom metadata types,
samples their records, and reports per-field value length statistics
as a console table, Markdown table, or CSV file.

The sf CLI must be on PATH (or named via SF_BIN) and already
authenticated against the target org.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), gateway.NewCLI(), opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVarP(&opts.fetch, "fetch", "f", false, "fetch all custom metadata types from the org")
	cmd.Flags().StringSliceVarP(&opts.types, "list", "l", nil, "custom metadata type names to analyze")
	cmd.Flags().BoolVarP(&opts.csv, "csv", "c", false, "write the results to a CSV file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "output.csv", "CSV file to write to")
	cmd.Flags().BoolVarP(&opts.markdown, "markdown", "m", false, "print the results as a Markdown table")
	cmd.Flags().IntVar(&opts.minLength, "min-length", 0, "only report fields whose declared length is at least this value")
	cmd.MarkFlagsMutuallyExclusive("fetch", "list")

	return cmd
}

func run(ctx context.Context, runner gateway.Runner, opts options, stdout io.Writer) error {
	types, err := resolveTypes(ctx, runner, opts)
	if err != nil {
		return err
	}

	limit := query.Limit()
	var rows []aggregator.FieldStats
	for _, name := range types {
		s, err := schema.Fetch(ctx, runner, name)
		if err != nil {
			log.Warn().Str("object", name).Err(err).Msg("Skipping type: describe failed")
			continue
		}
		records, err := query.Sample(ctx, runner, s.Object, s.FieldNames(), limit)
		if err != nil {
			log.Warn().Str("object", name).Err(err).Msg("Skipping type: sample query failed")
			continue
		}
		rows = append(rows, aggregator.Aggregate(s, records)...)
	}
	rows = aggregator.FilterMinLength(rows, opts.minLength)

	if opts.markdown {
		if err := report.WriteMarkdown(stdout, rows); err != nil {
			return err
		}
	}
	if opts.csv {
		if err := report.WriteCSV(opts.output, rows); err != nil {
			return err
		}
	}
	if !opts.markdown && !opts.csv {
		if err := report.WriteConsole(stdout, rows); err != nil {
			return err
		}
	}
	return nil
}

func resolveTypes(ctx context.Context, runner gateway.Runner, opts options) ([]string, error) {
	switch {
	case opts.fetch:
		return discovery.Fetch(ctx, runner)
	case len(opts.types) > 0:
		names := discovery.Direct(opts.types)
		log.Info().Strs("types", names).Msg("Using caller-supplied type list")
		return names, nil
	default:
		log.Warn().Msg("Neither --fetch nor --list given; report will be empty")
		return nil, nil
	}
}
