package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"text-summarizer/internal/domain/entity"
	"text-summarizer/internal/infra/extract"
	"text-summarizer/internal/infra/readability"
	"text-summarizer/internal/infra/summarizer"
	"text-summarizer/internal/usecase/summarize"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleText = `The city council approved the new transit budget on Monday. ` +
	`The plan adds three bus lines and extends service hours on weekends. ` +
	`Officials expect ridership to grow by ten percent within two years. ` +
	`Critics argue that the budget ignores maintenance of existing stations.`

type stubFetcher struct {
	doc entity.InputDocument
	err error
	got string
}

func (s *stubFetcher) Fetch(_ context.Context, rawURL string) (entity.InputDocument, error) {
	s.got = rawURL
	return s.doc, s.err
}

func newTestPipeline(urls *stubFetcher) *pipeline {
	if urls == nil {
		urls = &stubFetcher{}
	}
	return &pipeline{
		svc: summarize.NewService(summarizer.NoOp{}, readability.NewScorer(), nil, summarize.Config{
			Profile: summarize.DefaultProfile(),
		}),
		files: extract.NewRegistry(),
		urls:  urls,
	}
}

func defaultRunOptions() runOptions {
	return runOptions{
		tone:   string(entity.ToneDefault),
		length: entity.DefaultTargetWords,
		output: formatText,
	}
}

func TestNewRunCmd_Flags(t *testing.T) {
	cmd := NewRunCmd()

	shorthands := map[string]string{
		"file":     "f",
		"text":     "t",
		"url":      "u",
		"keywords": "k",
		"length":   "l",
		"output":   "o",
		"save":     "s",
		"config":   "c",
	}
	for name, short := range shorthands {
		flag := cmd.Flags().Lookup(name)
		require.NotNil(t, flag, "flag %s", name)
		assert.Equal(t, short, flag.Shorthand, "flag %s", name)
	}

	for _, name := range []string{"tone", "three-lines", "backend", "generation-profile"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "flag %s", name)
	}

	assert.Equal(t, "60", cmd.Flags().Lookup("length").DefValue)
	assert.Equal(t, "Default", cmd.Flags().Lookup("tone").DefValue)
	assert.Equal(t, "text", cmd.Flags().Lookup("output").DefValue)
}

func TestParseRunOptions(t *testing.T) {
	cmd := NewRunCmd()
	require.NoError(t, cmd.ParseFlags([]string{
		"-t", "hello", "--tone", "Formal", "-k", "a, b", "-l", "90", "--three-lines", "-o", "JSON",
	}))

	o, err := parseRunOptions(cmd)
	require.NoError(t, err)
	assert.Equal(t, "hello", o.text)
	assert.Equal(t, "Formal", o.tone)
	assert.Equal(t, "a, b", o.keywords)
	assert.Equal(t, 90, o.length)
	assert.True(t, o.threeLines)
	assert.Equal(t, formatJSON, o.output)
}

func TestParseRunOptions_InvalidOutput(t *testing.T) {
	cmd := NewRunCmd()
	require.NoError(t, cmd.ParseFlags([]string{"-o", "xml"}))

	_, err := parseRunOptions(cmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestExecute_Text(t *testing.T) {
	o := defaultRunOptions()
	o.text = sampleText
	o.keywords = "budget"

	var out bytes.Buffer
	require.NoError(t, execute(context.Background(), &out, newTestPipeline(nil), o))

	got := out.String()
	assert.True(t, strings.HasPrefix(got, "Summary:\n"))
	assert.Contains(t, got, "**budget**")
	assert.Contains(t, got, "Original Words: 43 | Summary Words:")
	assert.Contains(t, got, "Readability Analysis")
	assert.Contains(t, got, "Flesch Reading Ease:")
	assert.Contains(t, got, "Gunning Fog Index:")
}

func TestExecute_JSON(t *testing.T) {
	o := defaultRunOptions()
	o.text = sampleText
	o.output = formatJSON

	var out bytes.Buffer
	require.NoError(t, execute(context.Background(), &out, newTestPipeline(nil), o))

	var report jsonReport
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	assert.NotEmpty(t, report.Summary)
	assert.Equal(t, "typed", report.Source)
	assert.Equal(t, "Default", report.Tone)
	assert.Equal(t, []string{}, report.Keywords)
	assert.Equal(t, 60, report.Length)
	assert.Equal(t, "noop", report.Backend)
	assert.Equal(t, 43, report.Metrics.OriginalWords)
	assert.Contains(t, report.Metrics.Readability, "flesch_reading_ease")
	assert.Contains(t, report.Metrics.Readability, "flesch_kincaid_grade")
	assert.Contains(t, report.Metrics.Readability, "gunning_fog")
}

func TestExecute_Markdown(t *testing.T) {
	o := defaultRunOptions()
	o.text = sampleText
	o.output = formatMarkdown
	o.threeLines = true
	o.keywords = "council, stations"

	var out bytes.Buffer
	require.NoError(t, execute(context.Background(), &out, newTestPipeline(nil), o))

	got := out.String()
	assert.Contains(t, got, "# Summary Report")
	assert.Contains(t, got, "## Summary")
	assert.Contains(t, got, "## Word Statistics")
	assert.Contains(t, got, "## Readability Analysis")
	assert.Contains(t, got, "3-line summary")
	assert.Contains(t, got, "council, stations")
	assert.Contains(t, got, "Flesch-Kincaid Grade")
}

func TestExecute_Save(t *testing.T) {
	o := defaultRunOptions()
	o.text = sampleText
	o.save = filepath.Join(t.TempDir(), "summary.txt")

	var out bytes.Buffer
	require.NoError(t, execute(context.Background(), &out, newTestPipeline(nil), o))

	saved, err := os.ReadFile(o.save)
	require.NoError(t, err)
	assert.NotEmpty(t, saved)
	assert.Contains(t, out.String(), string(saved))
}

func TestExecute_EmptyInput(t *testing.T) {
	o := defaultRunOptions()
	o.text = "   \n\t "

	err := execute(context.Background(), &bytes.Buffer{}, newTestPipeline(nil), o)
	require.Error(t, err)
	assert.Equal(t, entity.EmptyInputWarning, err.Error())
}

func TestExecute_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		edit func(*runOptions)
	}{
		{name: "unknown tone", edit: func(o *runOptions) { o.tone = "Sarcastic" }},
		{name: "length too short", edit: func(o *runOptions) { o.length = 10 }},
		{name: "length too long", edit: func(o *runOptions) { o.length = 500 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaultRunOptions()
			o.text = sampleText
			tt.edit(&o)

			var out bytes.Buffer
			err := execute(context.Background(), &out, newTestPipeline(nil), o)
			require.Error(t, err)
			assert.Empty(t, out.String())
		})
	}
}

func TestExecute_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleText), 0o600))

	o := defaultRunOptions()
	o.file = path
	o.output = formatJSON

	var out bytes.Buffer
	require.NoError(t, execute(context.Background(), &out, newTestPipeline(nil), o))

	var report jsonReport
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	assert.Equal(t, "text", report.Source)
	assert.Equal(t, "notes.txt", report.Filename)
}

func TestExecute_MissingFile(t *testing.T) {
	o := defaultRunOptions()
	o.file = filepath.Join(t.TempDir(), "missing.txt")

	err := execute(context.Background(), &bytes.Buffer{}, newTestPipeline(nil), o)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read input file")
}

func TestResolveInput_Precedence(t *testing.T) {
	urls := &stubFetcher{doc: entity.InputDocument{Text: "from url", Source: entity.SourceURL}}
	p := newTestPipeline(urls)
	ctx := context.Background()

	doc, err := resolveInput(ctx, p, runOptions{text: "typed", url: "https://example.com", file: "x.txt"})
	require.NoError(t, err)
	assert.Equal(t, entity.SourceTyped, doc.Source)
	assert.Empty(t, urls.got)

	doc, err = resolveInput(ctx, p, runOptions{url: " https://example.com/a ", file: "x.txt"})
	require.NoError(t, err)
	assert.Equal(t, entity.SourceURL, doc.Source)
	assert.Equal(t, "https://example.com/a", urls.got)

	doc, err = resolveInput(ctx, p, runOptions{})
	require.NoError(t, err)
	assert.Empty(t, doc.Text)
}

func TestResolveInput_FetchError(t *testing.T) {
	fetchErr := errors.New("boom")
	p := newTestPipeline(&stubFetcher{err: fetchErr})

	_, err := resolveInput(context.Background(), p, runOptions{url: "https://example.com"})
	assert.ErrorIs(t, err, fetchErr)
}
