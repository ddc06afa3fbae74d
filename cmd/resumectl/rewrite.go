package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRewriteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rewrite <file>",
		Short: "Print the professional rewrite of a résumé",
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
			doc, err := svc.Rewrite(cmd.Context(), text, svc.Scorer.Analyze(text, nil))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), doc.Text())
			return err
		},
	}
}
