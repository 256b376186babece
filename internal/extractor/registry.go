package extractor

import (
	"errors"
	"fmt"
)

// Media types accepted for upload. Matching is exact and case-sensitive;
// the declared type is authoritative.
const (
	MediaTypePDF  = "application/pdf"
	MediaTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// ErrUnsupportedMediaType is returned for any media type without a
// registered extractor.
var ErrUnsupportedMediaType = errors.New("unsupported media type")

// Func converts a document byte buffer into UTF-8 text.
type Func func(data []byte) (string, error)

// Registry maps a media type to its extractor. New formats are supported
// by registering another entry.
type Registry map[string]Func

// Default returns the registry with the two built-in extractors.
func Default() Registry {
	return Registry{
		MediaTypePDF:  ExtractPDF,
		MediaTypeDOCX: ExtractDOCX,
	}
}

// Extract dispatches to the extractor registered for mediaType. The output
// is the document's textual runs in order, untouched; emptiness is the
// caller's concern.
func (r Registry) Extract(mediaType string, data []byte) (string, error) {
	fn, ok := r[mediaType]
	if !ok {
		return "", ErrUnsupportedMediaType
	}

	text, err := fn(data)
	if err != nil {
		return "", fmt.Errorf("extracting %s: %w", mediaType, err)
	}

	return text, nil
}
