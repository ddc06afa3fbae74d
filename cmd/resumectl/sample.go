package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"resume-rocket/resume/render"
)

const sampleResume = `Alex Morgan
alex.morgan@example.com | (555) 010-2030 | Austin, TX
Senior Software Engineer

PROFESSIONAL SUMMARY
Backend engineer with eight years of experience building payment and data platforms.

CORE COMPETENCIES
• Languages: Go, Python, SQL
• Platforms: AWS, Kubernetes, PostgreSQL

PROFESSIONAL EXPERIENCE
Senior Software Engineer
Northwind Payments | 2019 - Present
• Led migration of settlement services to event-driven architecture
• Reduced batch processing time by 40%

Software Engineer
Contoso Analytics | 2016 - 2019
• Developed ingestion pipelines for customer telemetry

EDUCATION
B.S. Computer Science
University of Texas at Austin`

func newSampleCmd(opts *rootOptions) *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Rewrite a built-in sample résumé and render it in every format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := opts.service()
			if err != nil {
				return err
			}
			doc, err := svc.Rewrite(cmd.Context(), sampleResume, svc.Scorer.Analyze(sampleResume, nil))
			if err != nil {
				return err
			}
			text := doc.Text()

			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
			if err := os.WriteFile(filepath.Join(dir, "sample_resume.txt"), []byte(text), 0o644); err != nil {
				return err
			}

			reg := render.NewRegistry(render.Options{Tables: svc.Classifier.Tables})
			for _, f := range []render.Format{render.FormatPDF, render.FormatDOCX} {
				path, _, err := renderTo(reg, f, text, filepath.Join(dir, "sample_resume."+string(f)))
				if err != nil {
					return err
				}
				if f == render.FormatDOCX {
					if err := validateDOCX(path); err != nil {
						return fmt.Errorf("render validation failed: %w", err)
					}
				}
				fmt.Fprintf(cmd.OutOrStdout(), "OK: wrote %s\n", path)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "d", "./out", "Directory for the sample files")
	return cmd
}

func validateDOCX(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	paras, err := render.ReadDOCX(data)
	if err != nil {
		return err
	}
	if len(paras) == 0 {
		return fmt.Errorf("%s has no paragraphs", path)
	}
	if !paras[0].Bold {
		return fmt.Errorf("%s: name paragraph %q is not bold", path, paras[0].Text)
	}
	return nil
}

