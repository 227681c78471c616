package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/dshills/reviewmend/internal/config"
	"github.com/dshills/reviewmend/internal/pipeline"
	"github.com/dshills/reviewmend/internal/render"
	"github.com/dshills/reviewmend/internal/zuul"
	"github.com/spf13/cobra"
)

type processFlags struct {
	format     string
	out        string
	zuulOut    string
	configPath string
	budget     int
	verbose    bool
}

func newProcessCmd() *cobra.Command {
	f := &processFlags{}

	cmd := &cobra.Command{
		Use:   "process <raw-output-file>",
		Short: "Run raw model output through validation, repair, and fallback",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f.budget = -1
			if cmd.Flags().Changed("budget") {
				f.budget, _ = cmd.Flags().GetInt("budget")
			}
			return runProcess(args[0], f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.format, "format", "json", "Output format: json, md, or html")
	flags.StringVar(&f.out, "out", "", "Output file path (default: stdout)")
	flags.StringVar(&f.zuulOut, "zuul-out", "", "Also write zuul_return file comments to this path")
	flags.StringVar(&f.configPath, "config", "", "YAML config file layered over defaults")
	flags.Int("budget", 0, "Repair attempt budget (default from config)")
	flags.BoolVar(&f.verbose, "verbose", false, "Print processing steps to stderr")

	return cmd
}

func runProcess(rawPath string, f *processFlags) error {
	logger := log.New(os.Stderr, "", 0)
	verbose := func(msg string, args ...any) {
		if f.verbose {
			logger.Printf(msg, args...)
		}
	}

	cfg, err := loadConfig(f.configPath)
	if err != nil {
		return exitError(3, "failed to load config: %v", err)
	}

	verbose("Reading raw output: %s", rawPath)
	data, err := os.ReadFile(rawPath)
	if err != nil {
		return exitError(3, "failed to read raw output: %v", err)
	}

	budget := cfg.AttemptBudget
	if f.budget >= 0 {
		budget = f.budget
	}

	verbose("Processing (budget %d)", budget)
	outcome := pipeline.Process(string(data), pipeline.Options{
		AttemptBudget: budget,
		ExcerptLimit:  cfg.ExcerptLimit,
		Redact:        cfg.Redact,
	})
	verbose("Pipeline path: %s (%d attempts)", outcome.Path, outcome.AttemptsUsed)
	for _, s := range outcome.StrategyLog {
		verbose("  applied %s", s)
	}

	var output string
	switch f.format {
	case "json":
		data, err := json.MarshalIndent(outcome.Report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		output = string(data) + "\n"
	case "md":
		output = render.Markdown(outcome.Report)
	case "html":
		output, err = render.HTML(outcome.Report)
		if err != nil {
			return fmt.Errorf("failed to render HTML: %w", err)
		}
	default:
		return exitError(3, "unknown format: %s", f.format)
	}

	if f.out != "" {
		verbose("Writing output to %s", f.out)
		if err := os.WriteFile(f.out, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else {
		fmt.Print(output)
	}

	if f.zuulOut != "" {
		verbose("Writing zuul_return data to %s", f.zuulOut)
		ret := zuul.BuildReturn(outcome.Report, cfg.ZuulPathPrefixes)
		if errs := zuul.ValidateReturn(ret); len(errs) > 0 {
			for _, e := range errs {
				fmt.Fprintf(os.Stderr, "  %s\n", e)
			}
			return exitError(5, "zuul_return data failed validation")
		}
		data, err := json.MarshalIndent(ret, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal zuul_return data: %w", err)
		}
		if err := os.WriteFile(f.zuulOut, append(data, '\n'), 0644); err != nil {
			return fmt.Errorf("failed to write zuul_return data: %w", err)
		}
	}

	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default()
	}
	return config.Load(path)
}
