package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"text-summarizer/internal/domain/entity"
	"text-summarizer/internal/usecase/summarize"

	"github.com/nao1215/markdown"
)

// jsonReport is the --output json document.
type jsonReport struct {
	Summary    string      `json:"summary"`
	Source     string      `json:"source"`
	Filename   string      `json:"filename,omitempty"`
	Tone       string      `json:"tone"`
	Keywords   []string    `json:"keywords"`
	Length     int         `json:"length"`
	ThreeLines bool        `json:"three_lines"`
	Backend    string      `json:"backend"`
	Metrics    jsonMetrics `json:"metrics"`
}

type jsonMetrics struct {
	OriginalWords int               `json:"original_words"`
	SummaryWords  int               `json:"summary_words"`
	Compression   float64           `json:"compression"`
	Readability   map[string]string `json:"readability"`
}

func writeReport(w io.Writer, format string, doc entity.InputDocument, res *summarize.Result) error {
	switch format {
	case formatJSON:
		return writeJSON(w, doc, res)
	case formatMarkdown:
		return writeMarkdown(w, doc, res)
	default:
		return writeText(w, res)
	}
}

func score(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func compression(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}

func writeText(w io.Writer, res *summarize.Result) error {
	m := res.Metrics
	var b strings.Builder
	fmt.Fprintln(&b, "Summary:")
	fmt.Fprintln(&b, res.Summary.Text)
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "Original Words: %d | Summary Words: %d | Compression: %s\n",
		m.OriginalWords, m.SummaryWords, compression(m.Compression))
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "Readability Analysis")
	fmt.Fprintf(&b, "  Flesch Reading Ease:  %s\n", score(m.Readability.FleschReadingEase))
	fmt.Fprintf(&b, "  Flesch-Kincaid Grade: %s\n", score(m.Readability.FleschKincaidGrade))
	fmt.Fprintf(&b, "  Gunning Fog Index:    %s\n", score(m.Readability.GunningFog))
	_, err := io.WriteString(w, b.String())
	return err
}

func writeJSON(w io.Writer, doc entity.InputDocument, res *summarize.Result) error {
	s := res.Summary
	keywords := s.Options.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	r := res.Metrics.Readability
	report := jsonReport{
		Summary:    s.Text,
		Source:     string(doc.Source),
		Filename:   doc.Filename,
		Tone:       s.Options.Tone.String(),
		Keywords:   keywords,
		Length:     s.Options.TargetWords,
		ThreeLines: s.Options.ThreeLines,
		Backend:    res.Backend,
		Metrics: jsonMetrics{
			OriginalWords: res.Metrics.OriginalWords,
			SummaryWords:  res.Metrics.SummaryWords,
			Compression:   res.Metrics.Compression,
			Readability: map[string]string{
				"flesch_reading_ease":  score(r.FleschReadingEase),
				"flesch_kincaid_grade": score(r.FleschKincaidGrade),
				"gunning_fog":          score(r.GunningFog),
			},
		},
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func writeMarkdown(w io.Writer, doc entity.InputDocument, res *summarize.Result) error {
	s := res.Summary
	m := res.Metrics
	md := markdown.NewMarkdown(w)

	md.H1("Summary Report")
	md.PlainText("")

	source := string(doc.Source)
	if doc.Filename != "" {
		source += " (`" + doc.Filename + "`)"
	}
	mode := strconv.Itoa(s.Options.TargetWords) + " words"
	if s.Options.ThreeLines {
		mode = "3-line summary"
	}
	keywords := strings.Join(s.Options.Keywords, ", ")
	if keywords == "" {
		keywords = "-"
	}
	md.Table(markdown.TableSet{
		Header: []string{"Option", "Value"},
		Rows: [][]string{
			{"Source", source},
			{"Tone", s.Options.Tone.String()},
			{"Keywords", keywords},
			{"Length", mode},
			{"Backend", res.Backend},
			{"Generated", s.CreatedAt.Format(time.RFC3339)},
		},
	})
	md.PlainText("")

	md.H2("Summary")
	md.PlainText("")
	md.PlainText(s.Text)
	md.PlainText("")

	md.H2("Word Statistics")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Original Words", "Summary Words", "Compression"},
		Rows: [][]string{
			{strconv.Itoa(m.OriginalWords), strconv.Itoa(m.SummaryWords), compression(m.Compression)},
		},
	})
	md.PlainText("")

	md.H2("Readability Analysis")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Score"},
		Rows: [][]string{
			{"Flesch Reading Ease", score(m.Readability.FleschReadingEase)},
			{"Flesch-Kincaid Grade", score(m.Readability.FleschKincaidGrade)},
			{"Gunning Fog Index", score(m.Readability.GunningFog)},
		},
	})
	md.PlainText("")
	if m.Compression < 0 {
		md.Note("The summary is longer than the original text.")
		md.PlainText("")
	}

	md.HorizontalRule()
	md.PlainTextf("*Generated by summarize %s*", getVersion())

	return md.Build()
}
