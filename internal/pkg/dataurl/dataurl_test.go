package dataurl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webext-tools/png-saver/internal/entity"
)

func TestEncodeDecodeRoundtrip(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "small payload", data: []byte("png bytes")},
		{name: "binary payload", data: []byte{0x89, 0x50, 0x4E, 0x47, 0x00, 0xFF}},
		{name: "single byte", data: []byte{0x01}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := Encode(tt.data)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(payload, "data:image/png;base64,"))

			decoded, err := Decode(payload)
			require.NoError(t, err)
			assert.Equal(t, tt.data, decoded)
		})
	}
}

func TestEncodeEmptyPayload(t *testing.T) {
	_, err := Encode(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrTransport)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "missing prefix", payload: "iVBORw0KGgo="},
		{name: "wrong mime", payload: "data:image/jpeg;base64,iVBORw0KGgo="},
		{name: "corrupt base64", payload: "data:image/png;base64,!!!not-base64!!!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.payload)
			require.Error(t, err)
			assert.ErrorIs(t, err, entity.ErrTransport)
		})
	}
}
