package requests

// ListMajorsRequest backs GET /api/majors.
type ListMajorsRequest struct {
	QueryBase
	input struct {
		ProgramID *int64 `form:"program_id" validate:"omitempty,min=1"`
	}
}

func (r *ListMajorsRequest) Rules() any { return &r.input }

func (r *ListMajorsRequest) ProgramID() *int64 {
	r.mustBeValidated()
	return r.input.ProgramID
}
