package main

import (
	"bytes"
	"testing"
	"time"

	"text-summarizer/internal/domain/entity"
	"text-summarizer/internal/usecase/summarize"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedResult() *summarize.Result {
	return &summarize.Result{
		Summary: entity.Summary{
			ID:   "7f1c0e9a-3a43-4c1e-9f77-1d2b5f0f8a10",
			Text: "The **council** approved the budget.",
			Options: entity.SummaryOptions{
				Tone:        entity.ToneFormal,
				Keywords:    []string{"council"},
				TargetWords: 60,
			},
			CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		},
		Metrics: entity.Metrics{
			OriginalWords: 40,
			SummaryWords:  5,
			Compression:   87.5,
			Readability: entity.ReadabilityScores{
				FleschReadingEase:  61.234,
				FleschKincaidGrade: 8.1,
				GunningFog:         10,
			},
		},
		Backend: "noop",
	}
}

func TestWriteReport_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeReport(&buf, formatText, entity.InputDocument{Source: entity.SourceTyped}, fixedResult()))

	want := "Summary:\n" +
		"The **council** approved the budget.\n" +
		"\n" +
		"Original Words: 40 | Summary Words: 5 | Compression: 87.5%\n" +
		"\n" +
		"Readability Analysis\n" +
		"  Flesch Reading Ease:  61.23\n" +
		"  Flesch-Kincaid Grade: 8.10\n" +
		"  Gunning Fog Index:    10.00\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteReport_Markdown(t *testing.T) {
	res := fixedResult()
	res.Metrics.Compression = -25
	doc := entity.InputDocument{Source: entity.SourcePDF, Filename: "report.pdf"}

	var buf bytes.Buffer
	require.NoError(t, writeReport(&buf, formatMarkdown, doc, res))

	got := buf.String()
	assert.Contains(t, got, "pdf (`report.pdf`)")
	assert.Contains(t, got, "60 words")
	assert.Contains(t, got, "2026-01-02T03:04:05Z")
	assert.Contains(t, got, "The **council** approved the budget.")
	assert.Contains(t, got, "-25.0%")
	assert.Contains(t, got, "longer than the original")
}
