package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"resume-rocket/internal/analyses"
	"resume-rocket/internal/enrich"
	"resume-rocket/internal/extract"
	"resume-rocket/internal/shared/telemetry"
	"resume-rocket/resume/classify"
	"resume-rocket/resume/heuristics"
	"resume-rocket/resume/quantify"
	"resume-rocket/resume/rewrite"
	"resume-rocket/resume/score"
)

type rootOptions struct {
	seed       int64
	heuristics string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "resumectl",
		Short:         "Analyze, rewrite and render résumés from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			if !opts.verbose {
				telemetry.SetLogger(nil)
				return nil
			}
			logger, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			telemetry.SetLogger(logger)
			return nil
		},
	}
	cmd.PersistentFlags().Int64Var(&opts.seed, "seed", 0, "Seed for metric injection (0 picks a random seed)")
	cmd.PersistentFlags().StringVar(&opts.heuristics, "heuristics", "", "Path to a YAML heuristics override file")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug output to stderr")

	cmd.AddCommand(
		newAnalyzeCmd(opts),
		newRewriteCmd(opts),
		newClassifyCmd(opts),
		newRenderCmd(opts),
		newSampleCmd(opts),
	)
	return cmd
}

func (o *rootOptions) tables() (*heuristics.Tables, error) {
	return heuristics.Load(o.heuristics)
}

// service builds the analysis pipeline with local enrichment.
func (o *rootOptions) service() (*analyses.Service, error) {
	tables, err := o.tables()
	if err != nil {
		return nil, err
	}
	injector := quantify.New(tables.MetricCues, nil)
	if o.seed != 0 {
		injector = quantify.NewSeeded(tables.MetricCues, o.seed)
	}
	return &analyses.Service{
		Enricher:   enrich.NewLocal(tables),
		Scorer:     score.New(tables),
		Assembler:  rewrite.New(tables, injector),
		Classifier: classify.New(tables),
	}, nil
}

// readResume reads a résumé file, or stdin for "-", and extracts its text.
func readResume(ctx context.Context, in io.Reader, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(in)
		path = "stdin.txt"
	} else {
		data, err = os.ReadFile(filepath.Clean(path))
	}
	if err != nil {
		return "", fmt.Errorf("failed to read resume: %w", err)
	}
	text, err := extract.ExtractTextFromBytes(ctx, data, "", path)
	if err != nil {
		return "", fmt.Errorf("failed to extract text from %s: %w", path, err)
	}
	return text, nil
}
