package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDataURI(t *testing.T) {
	contentType, data, err := decodeDataURI("data:image/png;base64,aGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, "image/png", contentType)
	assert.Equal(t, []byte("hello"), data)
}

func TestDecodeDataURIRejectsBadInput(t *testing.T) {
	tests := []struct {
		name    string
		dataURI string
	}{
		{"missing data prefix", "image/png;base64,aGVsbG8="},
		{"missing base64 marker", "data:image/png,aGVsbG8="},
		{"invalid base64 payload", "data:image/png;base64,!!!"},
		{"plain url", "http://example.com/image.png"},
		{"empty string", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := decodeDataURI(tt.dataURI)
			assert.ErrorIs(t, err, ErrInvalidImage)
		})
	}
}
