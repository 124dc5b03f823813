// Package summary provides the HTTP handlers for creating and downloading
// summaries, the options endpoint and the single-page form.
package summary

import (
	"strconv"

	"text-summarizer/internal/domain/entity"
	"text-summarizer/internal/infra/extract"
	"text-summarizer/internal/usecase/summarize"
)

// ReadabilityDTO holds readability scores formatted with two decimals.
type ReadabilityDTO struct {
	FleschReadingEase  string `json:"flesch_reading_ease" example:"55.21"`
	FleschKincaidGrade string `json:"flesch_kincaid_grade" example:"9.80"`
	GunningFog         string `json:"gunning_fog" example:"12.10"`
}

// MetricsDTO describes a summary relative to its input.
type MetricsDTO struct {
	OriginalWords int            `json:"original_words" example:"120"`
	SummaryWords  int            `json:"summary_words" example:"40"`
	Compression   float64        `json:"compression" example:"66.7"`
	Readability   ReadabilityDTO `json:"readability"`
}

// DTO is the response body of POST /api/summaries.
type DTO struct {
	ID          string     `json:"id" example:"7f1c0e52-3a4b-4a8e-9a44-0d6c1b2f9e10"`
	Summary     string     `json:"summary" example:"The **cat** sat on the mat."`
	Tone        string     `json:"tone" example:"Formal"`
	Keywords    []string   `json:"keywords"`
	Length      int        `json:"length" example:"60"`
	ThreeLines  bool       `json:"three_lines" example:"false"`
	Backend     string     `json:"backend" example:"huggingface"`
	Metrics     MetricsDTO `json:"metrics"`
	DownloadURL string     `json:"download_url" example:"/api/summaries/7f1c0e52-3a4b-4a8e-9a44-0d6c1b2f9e10/download"`
}

// OptionsDTO is the response body of GET /api/options.
type OptionsDTO struct {
	Tones         []string           `json:"tones"`
	MinLength     int                `json:"min_length" example:"30"`
	MaxLength     int                `json:"max_length" example:"200"`
	DefaultLength int                `json:"default_length" example:"60"`
	ThreeLines    ThreeLinesDTO      `json:"three_lines"`
	FileTypes     []extract.FileType `json:"file_types"`
	MaxUploadSize int64              `json:"max_upload_bytes" example:"10485760"`
	AuthRequired  bool               `json:"auth_required"`
}

// ThreeLinesDTO describes the short-form mode.
type ThreeLinesDTO struct {
	Sentences int `json:"sentences" example:"3"`
	MinTokens int `json:"min_tokens" example:"30"`
	MaxTokens int `json:"max_tokens" example:"60"`
}

// DownloadPath returns the download URL of a summary.
func DownloadPath(id string) string {
	return "/api/summaries/" + id + "/download"
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func toDTO(res *summarize.Result) DTO {
	s := res.Summary
	keywords := s.Options.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	return DTO{
		ID:         s.ID,
		Summary:    s.Text,
		Tone:       s.Options.Tone.String(),
		Keywords:   keywords,
		Length:     s.Options.TargetWords,
		ThreeLines: s.Options.ThreeLines,
		Backend:    res.Backend,
		Metrics: MetricsDTO{
			OriginalWords: res.Metrics.OriginalWords,
			SummaryWords:  res.Metrics.SummaryWords,
			Compression:   res.Metrics.Compression,
			Readability:   toReadabilityDTO(res.Metrics.Readability),
		},
		DownloadURL: DownloadPath(s.ID),
	}
}

func toReadabilityDTO(r entity.ReadabilityScores) ReadabilityDTO {
	return ReadabilityDTO{
		FleschReadingEase:  formatScore(r.FleschReadingEase),
		FleschKincaidGrade: formatScore(r.FleschKincaidGrade),
		GunningFog:         formatScore(r.GunningFog),
	}
}
