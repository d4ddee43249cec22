package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/revams/api/internal/app/models"
)

func TestListYearLevels_FallsBackOnError(t *testing.T) {
	refs := new(MockReferenceStore)
	svc := NewReferenceService(refs, new(MockOrganizationStore), zerolog.Nop())
	refs.On("ListYearLevels", context.Background()).Return(nil, errors.New("relation \"year_levels\" does not exist"))

	levels := svc.ListYearLevels(context.Background())

	assert.Equal(t, models.DefaultYearLevels, levels)
}

func TestListYearLevels_FromStore(t *testing.T) {
	refs := new(MockReferenceStore)
	svc := NewReferenceService(refs, new(MockOrganizationStore), zerolog.Nop())
	stored := []models.YearLevel{{ID: 1, Level: 1, Name: "Freshman"}}
	refs.On("ListYearLevels", context.Background()).Return(stored, nil)

	assert.Equal(t, stored, svc.ListYearLevels(context.Background()))
}
