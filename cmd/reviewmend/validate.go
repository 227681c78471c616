package main

import (
	"fmt"
	"os"

	"github.com/dshills/reviewmend/internal/schema"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <report-file>",
		Short: "Validate a report against the schema and list violations",
		Long: `Validate checks a report file against the review schema and prints every
violation found. Unlike process, it repairs nothing and exits non-zero on
invalid input, so CI jobs can gate on it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return exitError(3, "failed to read report: %v", err)
			}
			result := schema.Validate(string(data))
			if result.Valid {
				fmt.Fprintln(os.Stderr, "Schema validation passed")
				return nil
			}
			for _, v := range result.Violations {
				fmt.Fprintf(os.Stderr, "  %s\n", v)
			}
			return exitError(5, "schema validation failed with %d violations", len(result.Violations))
		},
	}
}
