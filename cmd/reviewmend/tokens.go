package main

import (
	"fmt"
	"os"

	"github.com/dshills/reviewmend/internal/tokens"
	"github.com/spf13/cobra"
)

func newTokensCmd() *cobra.Command {
	var estimateOnly bool

	cmd := &cobra.Command{
		Use:   "tokens <file>...",
		Short: "Count tokens in files for AI context budgeting",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var total tokens.Stats
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return exitError(3, "failed to read %s: %v", path, err)
				}
				var s tokens.Stats
				if estimateOnly {
					s = tokens.Estimate(string(data))
				} else {
					s = tokens.Count(string(data))
				}
				marker := "~"
				if s.Exact {
					marker = ""
				}
				fmt.Printf("%s: %s%d tokens (%d words, %d lines, %d chars)\n",
					path, marker, s.Tokens, s.Words, s.Lines, s.Characters)
				total.Tokens += s.Tokens
				total.Words += s.Words
				total.Lines += s.Lines
				total.Characters += s.Characters
			}
			if len(args) > 1 {
				fmt.Printf("total: %d tokens (%d words)\n", total.Tokens, total.Words)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&estimateOnly, "estimate", false, "Use the word-based estimate without loading a tokenizer")

	return cmd
}
