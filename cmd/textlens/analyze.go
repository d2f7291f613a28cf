// ABOUTME: analyze subcommand acquires text, runs the analysis pipeline once and renders it
// ABOUTME: Exactly one of --text, --file or --url selects the source, otherwise stdin is read

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"textlens-api/core/domain"
	coreerrors "textlens-api/core/errors"
	"textlens-api/core/interfaces"
	"textlens-api/core/presentation"
	"textlens-api/infrastructure/logger/structured"
	"textlens-api/pkg/bootstrap"
	"textlens-api/pkg/config"
	"textlens-api/pkg/featureflags"

	"github.com/spf13/cobra"
)

// analyzeOptions are the parsed analyze flags
type analyzeOptions struct {
	text   string
	file   string
	url    string
	topN   int
	format string
}

// runner holds what one analyze invocation needs
type runner struct {
	fetcher   interfaces.PageFetcher
	analyzer  interfaces.AnalysisService
	renderers *presentation.Registry
	stdin     io.Reader
}

// NewAnalyzeCmd creates the analyze command
func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze text and print a report",
		Long: `Analyze runs normalisation, keyword ranking and sentiment scoring over one
text and prints the report to standard output.

Examples:
  # Analyze inline text
  textlens analyze --text "今天天气很好，适合出门散步。"

  # Analyze a local file as JSON
  textlens analyze --file article.txt --format json

  # Fetch a web page and keep the top 15 keywords
  textlens analyze --url https://example.com/post --top-n 15

  # Read from standard input
  cat notes.txt | textlens analyze`,
		Args: cobra.NoArgs,
		RunE: runAnalyzeCmd,
	}

	cmd.Flags().StringP("text", "t", "", "Text to analyze")
	cmd.Flags().StringP("file", "f", "", "Read the text from a file")
	cmd.Flags().StringP("url", "u", "", "Fetch the text from a web page")
	cmd.Flags().IntP("top-n", "n", 0, "Number of keywords to report (default from DEFAULT_TOP_N)")
	cmd.Flags().StringP("format", "o", "markdown", "Report format (markdown or json)")
	cmd.MarkFlagsMutuallyExclusive("text", "file", "url")

	return cmd
}

// runAnalyzeCmd wires the services from the environment and runs once
func runAnalyzeCmd(cmd *cobra.Command, _ []string) error {
	opts, err := parseAnalyzeFlags(cmd)
	if err != nil {
		return err
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	// Sessions are not used here, so never touch a shared store.
	cfg.Cache.Type = "memory"
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	level := "warn"
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = "debug"
	}
	logger := structured.NewLogger(structured.Options{
		Level:  level,
		Format: "text",
		Output: cmd.ErrOrStderr(),
	})

	services, err := bootstrap.New(cfg, logger)
	if err != nil {
		return err
	}
	defer services.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = featureflags.WithManager(ctx, featureflags.NewEnvManager("FEATURE_"))

	r := &runner{
		fetcher:   services.Fetcher,
		analyzer:  services.Analyzer,
		renderers: services.Renderers,
		stdin:     cmd.InOrStdin(),
	}
	return r.run(ctx, opts, cmd.OutOrStdout())
}

func parseAnalyzeFlags(cmd *cobra.Command) (analyzeOptions, error) {
	var opts analyzeOptions
	var err error
	if opts.text, err = cmd.Flags().GetString("text"); err != nil {
		return opts, err
	}
	if opts.file, err = cmd.Flags().GetString("file"); err != nil {
		return opts, err
	}
	if opts.url, err = cmd.Flags().GetString("url"); err != nil {
		return opts, err
	}
	if opts.topN, err = cmd.Flags().GetInt("top-n"); err != nil {
		return opts, err
	}
	if opts.format, err = cmd.Flags().GetString("format"); err != nil {
		return opts, err
	}
	if opts.topN < 0 {
		return opts, errors.New("--top-n must be positive")
	}
	return opts, nil
}

// run acquires the text, analyzes it and writes the report to out
func (r *runner) run(ctx context.Context, opts analyzeOptions, out io.Writer) error {
	renderer, err := r.renderers.Get(opts.format)
	if err != nil {
		return err
	}

	in, err := r.acquire(ctx, opts)
	if err != nil {
		return err
	}
	in.TopN = opts.topN

	result, err := r.analyzer.Analyze(ctx, in)
	if err != nil {
		return err
	}
	return renderer.Render(out, result)
}

// acquire resolves the input source into analysis input
func (r *runner) acquire(ctx context.Context, opts analyzeOptions) (domain.AnalysisInput, error) {
	switch {
	case opts.url != "":
		page, err := r.fetcher.Fetch(ctx, opts.url)
		if err != nil {
			if coreerrors.IsEmptyContent(err) {
				return domain.AnalysisInput{}, fmt.Errorf("nothing to analyze: %w", err)
			}
			return domain.AnalysisInput{}, err
		}
		return domain.AnalysisInput{Text: page.Text, Source: page.URL, Title: page.Title}, nil
	case opts.file != "":
		data, err := os.ReadFile(opts.file)
		if err != nil {
			return domain.AnalysisInput{}, fmt.Errorf("failed to read %s: %w", opts.file, err)
		}
		return domain.AnalysisInput{Text: string(data), Source: opts.file}, nil
	case opts.text != "":
		return domain.AnalysisInput{Text: opts.text}, nil
	default:
		if r.stdin == nil {
			return domain.AnalysisInput{}, &coreerrors.ValidationError{Field: "text", Message: "no input given"}
		}
		data, err := io.ReadAll(r.stdin)
		if err != nil {
			return domain.AnalysisInput{}, fmt.Errorf("failed to read stdin: %w", err)
		}
		if strings.TrimSpace(string(data)) == "" {
			return domain.AnalysisInput{}, &coreerrors.ValidationError{Field: "text", Message: "no input given, use --text, --file, --url or stdin"}
		}
		return domain.AnalysisInput{Text: string(data), Source: "stdin"}, nil
	}
}
