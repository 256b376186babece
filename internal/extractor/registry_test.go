package extractor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryDispatchesByMediaType(t *testing.T) {
	var gotData []byte
	reg := Registry{
		MediaTypePDF: func(data []byte) (string, error) {
			gotData = data
			return "extracted", nil
		},
	}

	text, err := reg.Extract(MediaTypePDF, []byte("raw bytes"))

	require.NoError(t, err)
	assert.Equal(t, "extracted", text)
	assert.Equal(t, []byte("raw bytes"), gotData)
}

func TestRegistryUnsupportedMediaType(t *testing.T) {
	reg := Default()

	for _, mediaType := range []string{
		"text/plain",
		"application/msword",
		"image/png",
		"",
	} {
		_, err := reg.Extract(mediaType, []byte("irrelevant"))
		assert.ErrorIs(t, err, ErrUnsupportedMediaType, "media type %q", mediaType)
	}
}

func TestRegistryMatchIsCaseSensitive(t *testing.T) {
	reg := Default()

	_, err := reg.Extract("Application/PDF", []byte("irrelevant"))
	assert.ErrorIs(t, err, ErrUnsupportedMediaType)
}

func TestRegistryWrapsExtractorFailure(t *testing.T) {
	cause := errors.New("corrupt document")
	reg := Registry{
		MediaTypeDOCX: func(data []byte) (string, error) {
			return "", cause
		},
	}

	_, err := reg.Extract(MediaTypeDOCX, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrUnsupportedMediaType)
}

func TestRegistryAllowsEmptyOutput(t *testing.T) {
	reg := Registry{
		MediaTypePDF: func(data []byte) (string, error) {
			return "", nil
		},
	}

	text, err := reg.Extract(MediaTypePDF, nil)

	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestDefaultRegistryEntries(t *testing.T) {
	reg := Default()

	assert.Len(t, reg, 2)
	assert.Contains(t, reg, MediaTypePDF)
	assert.Contains(t, reg, MediaTypeDOCX)
}
