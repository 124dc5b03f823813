package extract

import (
	"bytes"
	"fmt"
	"strings"

	"code.sajari.com/docconv"
)

// DocxText returns the text of a Word document. Paragraphs and line breaks
// end up on separate lines; runs of spaces and tabs inside a line collapse
// to one space and blank lines are dropped.
func DocxText(data []byte) (string, error) {
	raw, _, err := docconv.ConvertDocx(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}
	return tidyLines(raw), nil
}

func tidyLines(s string) string {
	lines := strings.Split(s, "\n")
	out := lines[:0]
	for _, line := range lines {
		if line = strings.Join(strings.Fields(line), " "); line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
