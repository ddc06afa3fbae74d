package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"resume-rocket/resume/classify"
)

func newClassifyCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "classify <file>",
		Short: "Tag each line of rewritten text with its render type",
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
			lines, err := svc.Classify(cmd.Context(), text)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, line := range lines {
				if line.Type == classify.Blank {
					fmt.Fprintln(tw, "\t")
					continue
				}
				fmt.Fprintf(tw, "%s\t%s\n", line.Type, line.Text)
			}
			return tw.Flush()
		},
	}
}
