package main

import (
	"fmt"
	"os"

	"github.com/dshills/reviewmend/internal/render"
	"github.com/dshills/reviewmend/internal/schema"
	"github.com/spf13/cobra"
)

type renderFlags struct {
	format string
	out    string
}

func newRenderCmd() *cobra.Command {
	f := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render <report-file>",
		Short: "Render a valid review report as Markdown or HTML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(args[0], f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.format, "format", "md", "Output format: md or html")
	flags.StringVar(&f.out, "out", "", "Output file path (default: stdout)")

	return cmd
}

func runRender(reportPath string, f *renderFlags) error {
	data, err := os.ReadFile(reportPath)
	if err != nil {
		return exitError(3, "failed to read report: %v", err)
	}

	result := schema.Validate(string(data))
	if !result.Valid {
		for _, v := range result.Violations {
			fmt.Fprintf(os.Stderr, "  %s\n", v)
		}
		return exitError(5, "report failed schema validation")
	}
	r, err := schema.Decode(result.Document)
	if err != nil {
		return exitError(5, "failed to decode report: %v", err)
	}

	var output string
	switch f.format {
	case "md":
		output = render.Markdown(r)
	case "html":
		output, err = render.HTML(r)
		if err != nil {
			return fmt.Errorf("failed to render HTML: %w", err)
		}
	default:
		return exitError(3, "unknown format: %s", f.format)
	}

	if f.out != "" {
		if err := os.WriteFile(f.out, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Print(output)
	return nil
}
