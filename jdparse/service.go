package jdparse

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/candidate-compare/backend/models"
)

// Parser is the AI collaborator that turns JD free text into structure
type Parser interface {
	ParseJD(ctx context.Context, jdText string) (*models.JobDescription, error)
}

// Store is the slice of the storage layer the service needs
type Store interface {
	SetJD(jd *models.JobDescription)
	GetJD() *models.JobDescription
	ClearJD()
}

// Service parses job-description text and keeps the single current JD in
// the store. AI parse failures are absorbed by the regex fallback parser,
// so parsing only fails on empty input.
type Service struct {
	ai        Parser
	store     Store
	logger    *zap.Logger
	aiTimeout time.Duration
	now       func() time.Time
}

// NewService creates a JD parsing service
func NewService(ai Parser, store Store, logger *zap.Logger, aiTimeout time.Duration) *Service {
	return &Service{
		ai:        ai,
		store:     store,
		logger:    logger,
		aiTimeout: aiTimeout,
		now:       time.Now,
	}
}

// ParseAndStoreJD parses the text, stamps identity and metadata, and makes
// the result the current JD. The fresh id also invalidates every cached
// matching record computed against the previous JD.
func (s *Service) ParseAndStoreJD(ctx context.Context, jdText string) (*models.JobDescription, error) {
	pctx, cancel := context.WithTimeout(ctx, s.aiTimeout)
	defer cancel()

	jd, err := s.ai.ParseJD(pctx, jdText)
	if err != nil {
		s.logger.Warn("AI JD parsing failed, using fallback parser", zap.Error(err))
		jd = FallbackParse(jdText)
	}

	jd.ID = "jd_" + uuid.NewString()
	jd.OriginalText = jdText
	jd.ParsedAt = s.now().UTC()

	s.store.SetJD(jd)
	s.logger.Info("JD parsed and stored",
		zap.String("jd", jd.ID), zap.String("title", jd.Title), zap.Int("skills", len(jd.Skills)))

	return jd, nil
}

// CurrentJD returns the current JD, or nil when none is loaded
func (s *Service) CurrentJD() *models.JobDescription {
	return s.store.GetJD()
}

// ClearJD removes the current JD
func (s *Service) ClearJD() {
	s.store.ClearJD()
}
