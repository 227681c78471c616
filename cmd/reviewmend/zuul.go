package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dshills/reviewmend/internal/schema"
	"github.com/dshills/reviewmend/internal/zuul"
	"github.com/spf13/cobra"
)

type zuulFlags struct {
	out        string
	configPath string
	summary    bool
}

func newZuulCmd() *cobra.Command {
	f := &zuulFlags{}

	cmd := &cobra.Command{
		Use:   "zuul <report-file>",
		Short: "Generate zuul_return file comments from a review report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runZuul(args[0], f)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.out, "output", "o", "", "Output file for zuul_return JSON (default: stdout)")
	flags.StringVar(&f.configPath, "config", "", "YAML config file layered over defaults")
	flags.BoolVar(&f.summary, "summary", false, "Print a comment summary to stderr")

	return cmd
}

func runZuul(reportPath string, f *zuulFlags) error {
	cfg, err := loadConfig(f.configPath)
	if err != nil {
		return exitError(3, "failed to load config: %v", err)
	}

	data, err := os.ReadFile(reportPath)
	if err != nil {
		return exitError(3, "failed to read report: %v", err)
	}

	// The report may still be wrapped or carry trailing text; run it
	// through validation so comments are only extracted from a valid
	// document.
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

	ret := zuul.BuildReturn(r, cfg.ZuulPathPrefixes)
	if errs := zuul.ValidateReturn(ret); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "  %s\n", e)
		}
		return exitError(5, "zuul_return data failed validation")
	}

	if f.summary {
		fmt.Fprintln(os.Stderr, zuul.Summarize(ret.Zuul.FileComments))
	}

	out, err := json.MarshalIndent(ret, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal zuul_return data: %w", err)
	}
	if f.out != "" {
		if err := os.WriteFile(f.out, append(out, '\n'), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Println(string(out))
	return nil
}
