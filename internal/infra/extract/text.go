package extract

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

var (
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF16LE = []byte{0xFF, 0xFE}
)

// DecodeText decodes a plain text upload. UTF-8 is expected; a UTF-8 BOM is
// stripped and files starting with a UTF-16 BOM are transcoded. Anything else
// that is not valid UTF-8 fails with ErrInvalidEncoding. Characters are
// returned as uploaded, without normalization.
func DecodeText(data []byte) (string, error) {
	if bytes.HasPrefix(data, bomUTF16BE) || bytes.HasPrefix(data, bomUTF16LE) {
		decoded, err := unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder().Bytes(data)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
		}
		data = decoded
	}

	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: file is not UTF-8", ErrInvalidEncoding)
	}

	decoded, err := unicode.UTF8BOM.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return string(decoded), nil
}
