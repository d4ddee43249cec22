package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	appModels "github.com/revams/api/internal/app/models"
)

// ReferenceStore creates reference rows idempotently.
type ReferenceStore interface {
	EnsureDegree(ctx context.Context, name string) (int64, error)
	EnsureProgram(ctx context.Context, p appModels.Program) (int64, error)
	EnsureMajor(ctx context.Context, m appModels.Major) (int64, error)
	EnsureYearLevel(ctx context.Context, y appModels.YearLevel) (int64, error)
}

// OrganizationStore creates organizations idempotently.
type OrganizationStore interface {
	Ensure(ctx context.Context, o appModels.Organization) (int64, error)
}

type programSeed struct {
	degree string
	code   string
	name   string
	majors []string
}

var defaultPrograms = []programSeed{
	{degree: "Bachelor of Science", code: "BSIT", name: "Bachelor of Science in Information Technology",
		majors: []string{"Web and Mobile Development", "Network and Security"}},
	{degree: "Bachelor of Science", code: "BSCS", name: "Bachelor of Science in Computer Science",
		majors: []string{"Data Science", "Software Engineering"}},
	{degree: "Bachelor of Science", code: "BSIS", name: "Bachelor of Science in Information Systems"},
	{degree: "Bachelor of Arts", code: "ABCOMM", name: "Bachelor of Arts in Communication"},
}

func acronym(s string) *string { return &s }

var defaultOrganizations = []appModels.Organization{
	{Name: "Supreme Student Council", Acronym: acronym("SSC")},
	{Name: "Junior Information Technology Society", Acronym: acronym("JITS")},
	{Name: "Computer Science Guild", Acronym: acronym("CSG")},
}

// CreateDefaultData makes sure degrees, programs, majors, year levels and
// organizations exist. Every failure is logged and collected so one bad row
// does not stop the rest.
func CreateDefaultData(ctx context.Context, refs ReferenceStore, orgs OrganizationStore, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default reference data...")
	var finalErr error

	for _, y := range appModels.DefaultYearLevels {
		if _, err := refs.EnsureYearLevel(ctx, y); err != nil {
			lgr.Error().Err(err).Str("yearLevel", y.Name).Msg("Error creating year level")
			finalErr = errors.Join(finalErr, err)
		}
	}

	degrees := make(map[string]int64)
	for _, p := range defaultPrograms {
		degreeID, ok := degrees[p.degree]
		if !ok {
			id, err := refs.EnsureDegree(ctx, p.degree)
			if err != nil {
				lgr.Error().Err(err).Str("degree", p.degree).Msg("Error creating degree")
				finalErr = errors.Join(finalErr, err)
				continue
			}
			degrees[p.degree] = id
			degreeID = id
		}

		programID, err := refs.EnsureProgram(ctx, appModels.Program{Code: p.code, Name: p.name, DegreeID: &degreeID})
		if err != nil {
			lgr.Error().Err(err).Str("program", p.code).Msg("Error creating program")
			finalErr = errors.Join(finalErr, err)
			continue
		}

		for _, major := range p.majors {
			if _, err := refs.EnsureMajor(ctx, appModels.Major{ProgramID: programID, Name: major}); err != nil {
				lgr.Error().Err(err).Str("program", p.code).Str("major", major).Msg("Error creating major")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	for _, o := range defaultOrganizations {
		if _, err := orgs.Ensure(ctx, o); err != nil {
			lgr.Error().Err(err).Str("organization", o.Name).Msg("Error creating organization")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr != nil {
		return fmt.Errorf("default data incomplete: %w", finalErr)
	}
	lgr.Info().Msg("Default reference data is in place.")
	return nil
}
