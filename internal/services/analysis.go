package services

import (
	"context"
	"errors"

	"github.com/legallens/legal-lens-api/internal/extractor"
	"github.com/legallens/legal-lens-api/internal/llm"
	"github.com/legallens/legal-lens-api/internal/models"
	"github.com/legallens/legal-lens-api/internal/prompt"
	"github.com/legallens/legal-lens-api/internal/utils"
)

type AnalysisService interface {
	Analyze(ctx context.Context, req *models.AnalyzeRequest) (*models.AnalysisResponse, error)
}

type analysisService struct {
	registry  extractor.Registry
	generator llm.Generator
	logger    *utils.Logger
}

func NewService(registry extractor.Registry, generator llm.Generator, logger *utils.Logger) AnalysisService {
	return &analysisService{
		registry:  registry,
		generator: generator,
		logger:    logger,
	}
}

// Analyze runs one request through extraction, prompt composition and the
// model call. Every failure is mapped to one of the constant client-visible
// messages here; underlying causes go to the log only.
func (s *analysisService) Analyze(ctx context.Context, req *models.AnalyzeRequest) (*models.AnalysisResponse, error) {
	var legalText string

	switch {
	case req == nil || (req.File == nil && req.Text == nil):
		return nil, utils.NewBadRequestError(utils.MsgNoInput)

	case req.File != nil:
		text, err := s.registry.Extract(req.File.MediaType, req.File.Data)
		if errors.Is(err, extractor.ErrUnsupportedMediaType) {
			s.logger.Warn("Unsupported media type",
				"media_type", req.File.MediaType,
				"filename", req.File.Filename)
			return nil, utils.NewBadRequestError(utils.MsgUnsupportedFile)
		}
		if err != nil {
			s.logger.Error("Failed to extract text",
				"error", err,
				"media_type", req.File.MediaType,
				"filename", req.File.Filename)
			return nil, utils.NewInternalError(utils.MsgAnalysisFailed)
		}
		legalText = text

	default:
		legalText = req.Text.Text
	}

	if legalText == "" {
		return nil, utils.NewInternalError(utils.MsgExtractionEmpty)
	}

	analysis, err := s.generator.Generate(ctx, prompt.Compose(legalText))
	if err != nil {
		s.logger.Error("Model generation failed", "error", err)
		return nil, utils.NewInternalError(utils.MsgAnalysisFailed)
	}

	// The model's markdown goes back verbatim; no trimming or wrapping.
	return &models.AnalysisResponse{Analysis: analysis}, nil
}
