package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"text-summarizer/internal/config"
	"text-summarizer/internal/domain/entity"
	"text-summarizer/internal/infra/extract"
	"text-summarizer/internal/infra/readability"
	"text-summarizer/internal/infra/summarizer"
	"text-summarizer/internal/observability/logging"
	"text-summarizer/internal/usecase/summarize"
	envconfig "text-summarizer/pkg/config"

	"github.com/spf13/cobra"
)

// Output formats.
const (
	formatText     = "text"
	formatJSON     = "json"
	formatMarkdown = "markdown"
)

type runOptions struct {
	file       string
	text       string
	url        string
	tone       string
	keywords   string
	length     int
	threeLines bool
	output     string
	save       string
	backend    string
	profile    string
}

// pipeline holds the collaborators of a run so tests can swap the generator.
type pipeline struct {
	svc   *summarize.Service
	files *extract.Registry
	urls  interface {
		Fetch(ctx context.Context, rawURL string) (entity.InputDocument, error)
	}
}

// NewRunCmd creates the run command.
func NewRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Summarize a file, text or article URL",
		Long: `Run the summarization pipeline and print the summary with word counts,
compression and readability scores.

Input precedence: --text, then --url, then --file.

Examples:
  # Summarize a PDF in a formal tone, highlighting two keywords
  summarize run --file report.pdf --tone Formal --keywords "revenue, growth"

  # Three-sentence summary of an article as a markdown report
  summarize run --url https://example.com/story --three-lines --output markdown

  # Save the summary text next to the report
  summarize run --file notes.docx --save summary.txt`,
		Args: cobra.NoArgs,
		RunE: runRunCmd,
	}

	cmd.Flags().StringP("file", "f", "", "Input file (.txt, .pdf, .docx, .html)")
	cmd.Flags().StringP("text", "t", "", "Text to summarize")
	cmd.Flags().StringP("url", "u", "", "Article URL to summarize")
	cmd.Flags().String("tone", string(entity.ToneDefault), "Tone: Default, Formal, Informal, Academic or Concise")
	cmd.Flags().StringP("keywords", "k", "", "Comma separated keywords to highlight")
	cmd.Flags().IntP("length", "l", entity.DefaultTargetWords,
		fmt.Sprintf("Target summary length in words (%d-%d)", entity.MinTargetWords, entity.MaxTargetWords))
	cmd.Flags().Bool("three-lines", false, "Keep only the first three sentences")
	cmd.Flags().StringP("output", "o", formatText, "Output format: text, json or markdown")
	cmd.Flags().StringP("save", "s", "", "Also write the summary text to this file")
	cmd.Flags().String("backend", "", "Generator backend (overrides SUMMARIZER_BACKEND)")
	cmd.Flags().String("generation-profile", "", "YAML decoding profile (overrides GENERATION_PROFILE)")
	cmd.Flags().StringP("config", "c", "", "Defaults file (default: $XDG_CONFIG_HOME/text-summarizer/config.yaml)")

	return cmd
}

func runRunCmd(cmd *cobra.Command, _ []string) error {
	if err := envconfig.LoadDotEnv(); err != nil {
		return err
	}
	verbose, _ := cmd.Flags().GetBool("verbose")
	slog.SetDefault(logging.NewCLILogger(verbose))

	configPath, _ := cmd.Flags().GetString("config")
	defaults, err := loadDefaults(configPath)
	if err != nil {
		return err
	}
	if err := applyDefaults(cmd, defaults); err != nil {
		return err
	}

	opts, err := parseRunOptions(cmd)
	if err != nil {
		return err
	}

	p, err := newPipeline(opts)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return execute(ctx, cmd.OutOrStdout(), p, opts)
}

func parseRunOptions(cmd *cobra.Command) (runOptions, error) {
	f := cmd.Flags()
	var o runOptions
	o.file, _ = f.GetString("file")
	o.text, _ = f.GetString("text")
	o.url, _ = f.GetString("url")
	o.tone, _ = f.GetString("tone")
	o.keywords, _ = f.GetString("keywords")
	o.length, _ = f.GetInt("length")
	o.threeLines, _ = f.GetBool("three-lines")
	o.output, _ = f.GetString("output")
	o.save, _ = f.GetString("save")
	o.backend, _ = f.GetString("backend")
	o.profile, _ = f.GetString("generation-profile")

	o.output = strings.ToLower(o.output)
	switch o.output {
	case formatText, formatJSON, formatMarkdown:
	default:
		return o, fmt.Errorf("invalid output format %q: must be text, json or markdown", o.output)
	}
	return o, nil
}

func newPipeline(o runOptions) (*pipeline, error) {
	cfg, err := config.LoadSummarizerConfig()
	if err != nil {
		return nil, err
	}
	if o.backend != "" {
		cfg.Backend = strings.ToLower(o.backend)
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid summarizer configuration: %w", err)
		}
	}
	gen, err := summarizer.New(cfg)
	if err != nil {
		return nil, err
	}

	profilePath := o.profile
	if profilePath == "" {
		profilePath = envconfig.GetEnvString("GENERATION_PROFILE", "")
	}
	profile, err := config.LoadGenerationProfile(profilePath)
	if err != nil {
		return nil, err
	}

	fetchCfg := config.LoadFetchConfig()
	if err := fetchCfg.Validate(); err != nil {
		return nil, err
	}

	return &pipeline{
		svc: summarize.NewService(gen, readability.NewScorer(), nil, summarize.Config{
			Profile: profile,
			Timeout: cfg.Timeout,
		}),
		files: extract.NewRegistry(),
		urls:  extract.NewFetcher(fetchCfg),
	}, nil
}

// execute resolves the input, summarizes it and writes the report.
func execute(ctx context.Context, out io.Writer, p *pipeline, o runOptions) error {
	tone, err := entity.ParseTone(o.tone)
	if err != nil {
		return err
	}
	opts := entity.SummaryOptions{
		Tone:        tone,
		Keywords:    entity.ParseKeywords(o.keywords),
		TargetWords: o.length,
		ThreeLines:  o.threeLines,
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	doc, err := resolveInput(ctx, p, o)
	if err != nil {
		return err
	}

	res, err := p.svc.Summarize(ctx, doc, opts)
	if err != nil {
		if errors.Is(err, entity.ErrEmptyInput) {
			return errors.New(entity.EmptyInputWarning)
		}
		return err
	}

	if err := writeReport(out, o.output, doc, res); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if o.save != "" {
		if err := os.WriteFile(o.save, []byte(res.Summary.Text), 0o600); err != nil {
			return fmt.Errorf("save summary: %w", err)
		}
		slog.Info("summary saved", slog.String("path", o.save))
	}
	return nil
}

// resolveInput picks the input: text, then URL, then file.
func resolveInput(ctx context.Context, p *pipeline, o runOptions) (entity.InputDocument, error) {
	if strings.TrimSpace(o.text) != "" {
		return entity.InputDocument{Text: o.text, Source: entity.SourceTyped}, nil
	}
	if rawURL := strings.TrimSpace(o.url); rawURL != "" {
		return p.urls.Fetch(ctx, rawURL)
	}
	if o.file != "" {
		// #nosec G304 -- the file is chosen by the user running the CLI
		data, err := os.ReadFile(o.file)
		if err != nil {
			return entity.InputDocument{}, fmt.Errorf("read input file: %w", err)
		}
		return p.files.Extract(ctx, filepath.Base(o.file), "", data)
	}
	return entity.InputDocument{}, nil
}
