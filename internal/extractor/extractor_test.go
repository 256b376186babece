package extractor

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildDOCX assembles a minimal DOCX archive in memory: one
// word/document.xml with the given paragraphs, each a single text run.
func buildDOCX(t *testing.T, paragraphs ...string) []byte {
	t.Helper()

	var body bytes.Buffer
	body.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	body.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range paragraphs {
		body.WriteString(`<w:p><w:r><w:t>`)
		require.NoError(t, xml.EscapeText(&body, []byte(p)))
		body.WriteString(`</w:t></w:r></w:p>`)
	}
	body.WriteString(`</w:body></w:document>`)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = f.Write(body.Bytes())
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	return buf.Bytes()
}

func TestExtractDOCX(t *testing.T) {
	data := buildDOCX(t,
		"RENTAL AGREEMENT",
		"The tenant shall pay rent on the first of each month.",
	)

	text, err := ExtractDOCX(data)

	require.NoError(t, err)
	assert.Equal(t, "RENTAL AGREEMENT\nThe tenant shall pay rent on the first of each month.\n", text)
}

func TestExtractDOCXMultipleRuns(t *testing.T) {
	// Word frequently splits one sentence across several runs; they must be
	// concatenated in document order with nothing in between.
	var body bytes.Buffer
	body.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	body.WriteString(`<w:p><w:r><w:t>Security </w:t></w:r><w:r><w:t>deposit</w:t></w:r></w:p>`)
	body.WriteString(`</w:body></w:document>`)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = f.Write(body.Bytes())
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	text, err := ExtractDOCX(buf.Bytes())

	require.NoError(t, err)
	assert.Equal(t, "Security deposit\n", text)
}

func TestExtractDOCXNotAZip(t *testing.T) {
	_, err := ExtractDOCX([]byte("this is not a zip archive"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "ZIP")
}

func TestExtractDOCXMissingDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("word/other.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte("<x/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = ExtractDOCX(buf.Bytes())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "document.xml not found")
}

func TestExtractPDFInvalidBytes(t *testing.T) {
	_, err := ExtractPDF([]byte("not a pdf at all"))

	assert.Error(t, err)
}
