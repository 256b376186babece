package handlers

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/legallens/legal-lens-api/internal/models"
	"github.com/legallens/legal-lens-api/internal/services"
	"github.com/legallens/legal-lens-api/internal/utils"
)

type AnalyzeHandler struct {
	service   services.AnalysisService
	logger    *utils.Logger
	maxUpload int64
}

func NewAnalyzeHandler(service services.AnalysisService, logger *utils.Logger, maxUpload int64) *AnalyzeHandler {
	return &AnalyzeHandler{
		service:   service,
		logger:    logger,
		maxUpload: maxUpload,
	}
}

func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	// Bound the body at the framework layer; the pipeline itself imposes
	// no cap.
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)

	req := h.classify(r)
	if req == nil {
		h.respondError(w, utils.NewBadRequestError(utils.MsgNoInput))
		return
	}

	resp, err := h.service.Analyze(r.Context(), req)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, resp)
}

// classify resolves the request body into the tagged input variant. A file
// part named "document" wins over any legalText also present; a JSON body
// needs a non-absent, non-empty legalText. nil means no usable input,
// which also covers malformed bodies so no framework default error ever
// reaches the client.
func (h *AnalyzeHandler) classify(r *http.Request) *models.AnalyzeRequest {
	contentType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	if strings.HasPrefix(contentType, "multipart/") {
		if err := r.ParseMultipartForm(h.maxUpload); err != nil {
			h.logger.Warn("Failed to parse multipart form", "error", err)
			return nil
		}

		file, header, err := r.FormFile("document")
		if err == nil {
			defer file.Close()

			data, err := io.ReadAll(file)
			if err != nil {
				h.logger.Warn("Failed to read uploaded file", "error", err)
				return nil
			}

			return &models.AnalyzeRequest{File: &models.FileInput{
				Data:      data,
				MediaType: header.Header.Get("Content-Type"),
				Filename:  header.Filename,
			}}
		}

		if text := r.FormValue("legalText"); text != "" {
			return &models.AnalyzeRequest{Text: &models.TextInput{Text: text}}
		}

		return nil
	}

	var body struct {
		LegalText *string `json:"legalText"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil
	}
	if body.LegalText == nil || *body.LegalText == "" {
		return nil
	}

	return &models.AnalyzeRequest{Text: &models.TextInput{Text: *body.LegalText}}
}

func (h *AnalyzeHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode JSON response", "error", err)
	}
}

func (h *AnalyzeHandler) respondError(w http.ResponseWriter, err error) {
	var status int
	var message string

	switch e := err.(type) {
	case *utils.AppError:
		status = e.StatusCode
		message = e.Message
	default:
		status = http.StatusInternalServerError
		message = utils.MsgAnalysisFailed
	}

	h.logger.Error("Request error", "status", status, "error", message)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
