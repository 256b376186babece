package models

// AnalyzeRequest is the tagged input variant for the /analyze endpoint.
// Exactly one of File or Text is non-nil; the classifier in the handlers
// package guarantees this before the request reaches the service.
type AnalyzeRequest struct {
	File *FileInput
	Text *TextInput
}

// FileInput carries an uploaded document held fully in memory.
// MediaType is the part's declared Content-Type and is authoritative;
// no extension-based sniffing happens anywhere downstream.
type FileInput struct {
	Data      []byte
	MediaType string
	Filename  string
}

// TextInput carries pasted legal text verbatim.
type TextInput struct {
	Text string
}

type AnalysisResponse struct {
	Analysis string `json:"analysis"`
}
