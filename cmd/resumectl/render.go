package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"resume-rocket/resume/render"
)

func newRenderCmd(opts *rootOptions) *cobra.Command {
	var (
		format string
		out    string
	)
	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render rewritten résumé text as PDF, DOCX or plain text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := render.ParseFormat(format)
			if err != nil {
				return err
			}
			tables, err := opts.tables()
			if err != nil {
				return err
			}
			text, err := readResume(cmd.Context(), cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			path, fallback, err := renderTo(render.NewRegistry(render.Options{Tables: tables}), f, text, out)
			if err != nil {
				return err
			}
			if fallback {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s backend unavailable, wrote plain text instead\n", strings.ToUpper(string(f)))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "pdf", "Output format: pdf, docx or txt")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output path (defaults to resume.<ext>)")
	return cmd
}

// renderTo renders text and writes it to out. When the backend fell back to
// text the extension of out follows the output actually produced.
func renderTo(reg *render.Registry, format render.Format, text, out string) (string, bool, error) {
	renderer, err := reg.For(format)
	if err != nil {
		return "", false, err
	}
	doc, err := renderer.Render(text)
	if err != nil {
		var renderErr *render.RenderError
		if errors.As(err, &renderErr) {
			return "", false, fmt.Errorf("error generating %s: %s", strings.ToUpper(string(format)), renderErr.Message)
		}
		return "", false, err
	}

	if out == "" {
		out = render.FileName("resume", doc)
	} else if doc.Fallback {
		out = render.FileName(strings.TrimSuffix(out, filepath.Ext(out)), doc)
	}
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", false, err
		}
	}
	if err := os.WriteFile(out, doc.Body, 0o644); err != nil {
		return "", false, err
	}
	return out, doc.Fallback, nil
}
