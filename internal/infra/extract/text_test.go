package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"text-summarizer/internal/infra/extract"
)

func TestDecodeText(t *testing.T) {
	tests := []struct {
		name    string
		input   []byte
		want    string
		wantErr error
	}{
		{name: "plain utf-8", input: []byte("The cat sat."), want: "The cat sat."},
		{name: "utf-8 bom stripped", input: append([]byte{0xEF, 0xBB, 0xBF}, []byte("Hello")...), want: "Hello"},
		{name: "multibyte kept", input: []byte("Café naïve 日本"), want: "Café naïve 日本"},
		{name: "decomposed accents kept as uploaded", input: []byte("Cafe\u0301"), want: "Cafe\u0301"},
		{name: "utf-16le with bom", input: []byte{0xFF, 0xFE, 'H', 0, 'i', 0}, want: "Hi"},
		{name: "utf-16be with bom", input: []byte{0xFE, 0xFF, 0, 'H', 0, 'i'}, want: "Hi"},
		{name: "empty", input: nil, want: ""},
		{name: "latin-1 rejected", input: []byte{'c', 'a', 'f', 0xE9}, wantErr: extract.ErrInvalidEncoding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extract.DecodeText(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHTMLText(t *testing.T) {
	page := []byte(`<!doctype html>
<html><head><title>Ignored title</title><style>p{color:red}</style></head>
<body>
  <h1>Heading</h1>
  <script>var tracking = true;</script>
  <p>First paragraph.</p>

  <p>Second   paragraph.</p>
  <noscript>Enable JavaScript</noscript>
</body></html>`)

	got, err := extract.HTMLText(page)
	require.NoError(t, err)
	assert.Equal(t, "Heading\nFirst paragraph.\nSecond   paragraph.", got)
}
