package summary

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"text-summarizer/internal/domain/entity"
)

// defaultMaxMemory is how much of a multipart body is kept in memory; the
// rest spills to temporary files.
const defaultMaxMemory = 8 << 20

// keywordList accepts either a comma separated string or a JSON array.
type keywordList []string

func (k *keywordList) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		*k = entity.ParseKeywords(raw)
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return &entity.ValidationError{
			Field:   "keywords",
			Message: "must be a comma separated string or an array of strings",
			Err:     entity.ErrInvalidInput,
		}
	}
	out := make([]string, 0, len(list))
	for _, kw := range list {
		if kw = strings.TrimSpace(kw); kw != "" {
			out = append(out, kw)
		}
	}
	*k = out
	return nil
}

// createRequest is the body of POST /api/summaries.
type createRequest struct {
	Text       string      `json:"text" example:"The quick brown fox jumps over the lazy dog."`
	URL        string      `json:"url" example:"https://example.com/article"`
	Tone       string      `json:"tone" example:"Formal"`
	Keywords   keywordList `json:"keywords" swaggertype:"string" example:"fox, dog"`
	Length     int         `json:"length" example:"60"`
	ThreeLines bool        `json:"three_lines" example:"false"`

	file *upload
}

type upload struct {
	filename    string
	contentType string
	data        []byte
}

// hasInput reports whether the request supplied anything to summarize.
func (c *createRequest) hasInput() bool {
	return strings.TrimSpace(c.Text) != "" || strings.TrimSpace(c.URL) != "" || c.file != nil
}

// options validates the summary options. A zero length means the default.
func (c *createRequest) options() (entity.SummaryOptions, error) {
	tone, err := entity.ParseTone(c.Tone)
	if err != nil {
		return entity.SummaryOptions{}, err
	}
	opts := entity.SummaryOptions{
		Tone:        tone,
		Keywords:    []string(c.Keywords),
		TargetWords: c.Length,
		ThreeLines:  c.ThreeLines,
	}
	if opts.TargetWords == 0 {
		opts.TargetWords = entity.DefaultTargetWords
	}
	if err := opts.Validate(); err != nil {
		return entity.SummaryOptions{}, err
	}
	return opts, nil
}

// parseCreateRequest reads a JSON, urlencoded or multipart request body.
func parseCreateRequest(r *http.Request, maxMemory int64) (*createRequest, error) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return nil, errUnsupportedMediaType
	}

	switch mediaType {
	case "application/json":
		var req createRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			var ve *entity.ValidationError
			var tooLarge *http.MaxBytesError
			if errors.As(err, &ve) || errors.As(err, &tooLarge) {
				return nil, err
			}
			return nil, &entity.ValidationError{Field: "body", Message: "invalid JSON body", Err: entity.ErrInvalidInput}
		}
		return &req, nil

	case "multipart/form-data":
		if maxMemory <= 0 {
			maxMemory = defaultMaxMemory
		}
		if err := r.ParseMultipartForm(maxMemory); err != nil {
			return nil, formError(err)
		}
		req, err := fromForm(r)
		if err != nil {
			return nil, err
		}
		file, err := readUpload(r)
		if err != nil {
			return nil, err
		}
		req.file = file
		return req, nil

	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, formError(err)
		}
		return fromForm(r)

	default:
		return nil, errUnsupportedMediaType
	}
}

func formError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return err
	}
	return &entity.ValidationError{Field: "body", Message: "invalid form body", Err: entity.ErrInvalidInput}
}

func fromForm(r *http.Request) (*createRequest, error) {
	req := &createRequest{
		Text:     r.FormValue("text"),
		URL:      r.FormValue("url"),
		Tone:     r.FormValue("tone"),
		Keywords: entity.ParseKeywords(r.FormValue("keywords")),
	}

	if raw := strings.TrimSpace(r.FormValue("length")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, &entity.ValidationError{
				Field:   "length",
				Message: fmt.Sprintf("must be a whole number of words, got %q", raw),
				Err:     entity.ErrInvalidLength,
			}
		}
		req.Length = n
	}

	threeLines, err := parseCheckbox(r.FormValue("three_lines"))
	if err != nil {
		return nil, &entity.ValidationError{
			Field:   "three_lines",
			Message: fmt.Sprintf("must be a boolean, got %q", r.FormValue("three_lines")),
			Err:     entity.ErrInvalidInput,
		}
	}
	req.ThreeLines = threeLines
	return req, nil
}

// parseCheckbox accepts HTML checkbox values ("on") as well as booleans.
func parseCheckbox(v string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "":
		return false, nil
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}
	return strconv.ParseBool(strings.TrimSpace(v))
}

func readUpload(r *http.Request) (*upload, error) {
	f, hdr, err := r.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, formError(err)
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if hdr.Filename == "" && len(data) == 0 {
		return nil, nil
	}
	return &upload{
		filename:    hdr.Filename,
		contentType: hdr.Header.Get("Content-Type"),
		data:        data,
	}, nil
}
