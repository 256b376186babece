package utils

import "net/http"

// Client-visible error messages. These four strings (plus the status code)
// are the only error information that ever leaves the process; underlying
// causes are logged, never returned.
const (
	MsgNoInput         = "No document or text was provided."
	MsgUnsupportedFile = "Unsupported file type. Please upload a PDF or DOCX."
	MsgExtractionEmpty = "Could not extract text from the input."
	MsgAnalysisFailed  = "An internal server error occurred during analysis."
)

type AppError struct {
	StatusCode int
	Message    string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewBadRequestError(message string) *AppError {
	return &AppError{StatusCode: http.StatusBadRequest, Message: message}
}

func NewInternalError(message string) *AppError {
	return &AppError{StatusCode: http.StatusInternalServerError, Message: message}
}
