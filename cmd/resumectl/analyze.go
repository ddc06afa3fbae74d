package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"resume-rocket/internal/analyses"
)

func newAnalyzeCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Score a résumé and list praise, warnings and suggestions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.service()
			if err != nil {
				return err
			}
			text, err := readResume(cmd.Context(), cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			result, err := svc.Analyze(cmd.Context(), analyses.Input{Text: text, FileName: args[0]})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}
			a := result.Assessment
			fmt.Fprintf(out, "Score: %d (%s)\n", a.Score, a.Grade)
			printList(cmd, "Strengths", a.Praise)
			printList(cmd, "Warnings", a.Warnings)
			printList(cmd, "Problems", a.Failures)
			printList(cmd, "Suggestions", result.Suggestions)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the full analysis as JSON")
	return cmd
}

func printList(cmd *cobra.Command, title string, items []string) {
	if len(items) == 0 {
		return
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\n%s:\n", title)
	for _, item := range items {
		fmt.Fprintf(out, "  - %s\n", item)
	}
}
