package summary

import (
	"net/http"

	"text-summarizer/internal/domain/entity"
	"text-summarizer/internal/handler/http/respond"
	"text-summarizer/internal/infra/extract"
	"text-summarizer/internal/usecase/summarize"
)

// OptionsHandler serves GET /api/options.
type OptionsHandler struct {
	Profile        summarize.DecodingProfile
	MaxUploadBytes int64
	AuthRequired   bool
}

// ServeHTTP lists the summary options
// @Summary      List summary options
// @Description  Tones, length bounds, the short-form mode and accepted file types.
// @Tags         summaries
// @Produce      json
// @Success      200 {object} OptionsDTO
// @Router       /api/options [get]
func (h OptionsHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	respond.JSON(w, http.StatusOK, h.options())
}

func (h OptionsHandler) options() OptionsDTO {
	tones := entity.Tones()
	names := make([]string, len(tones))
	for i, t := range tones {
		names[i] = t.String()
	}
	return OptionsDTO{
		Tones:         names,
		MinLength:     entity.MinTargetWords,
		MaxLength:     entity.MaxTargetWords,
		DefaultLength: entity.DefaultTargetWords,
		ThreeLines: ThreeLinesDTO{
			Sentences: h.Profile.ShortSentences,
			MinTokens: h.Profile.ShortMinLength,
			MaxTokens: h.Profile.ShortMaxLength,
		},
		FileTypes:     extract.FileTypes(),
		MaxUploadSize: h.MaxUploadBytes,
		AuthRequired:  h.AuthRequired,
	}
}
