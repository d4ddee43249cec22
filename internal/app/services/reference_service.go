package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/revams/api/internal/app/models"
)

// ReferenceService serves the lookup tables student forms are built from
type ReferenceService interface {
	ListDegrees(ctx context.Context) ([]models.Degree, error)
	ListPrograms(ctx context.Context) ([]models.Program, error)
	ListMajors(ctx context.Context, programID *int64) ([]models.Major, error)
	ListYearLevels(ctx context.Context) []models.YearLevel
	ListOrganizations(ctx context.Context) ([]models.Organization, error)
}

type referenceServiceImpl struct {
	references    ReferenceStore
	organizations OrganizationStore
	logger        zerolog.Logger
}

// NewReferenceService creates a new ReferenceService
func NewReferenceService(references ReferenceStore, organizations OrganizationStore, logger zerolog.Logger) ReferenceService {
	return &referenceServiceImpl{references: references, organizations: organizations, logger: logger}
}

func (s *referenceServiceImpl) ListDegrees(ctx context.Context) ([]models.Degree, error) {
	degrees, err := s.references.ListDegrees(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing degrees: %w", err)
	}
	return degrees, nil
}

func (s *referenceServiceImpl) ListPrograms(ctx context.Context) ([]models.Program, error) {
	programs, err := s.references.ListPrograms(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing programs: %w", err)
	}
	return programs, nil
}

func (s *referenceServiceImpl) ListMajors(ctx context.Context, programID *int64) ([]models.Major, error) {
	majors, err := s.references.ListMajors(ctx, programID)
	if err != nil {
		return nil, fmt.Errorf("error listing majors: %w", err)
	}
	return majors, nil
}

// ListYearLevels never fails: when the table cannot be read it serves the
// built-in levels.
func (s *referenceServiceImpl) ListYearLevels(ctx context.Context) []models.YearLevel {
	levels, err := s.references.ListYearLevels(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Falling back to default year levels")
		return append([]models.YearLevel(nil), models.DefaultYearLevels...)
	}
	return levels
}

func (s *referenceServiceImpl) ListOrganizations(ctx context.Context) ([]models.Organization, error) {
	orgs, err := s.organizations.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing organizations: %w", err)
	}
	return orgs, nil
}
