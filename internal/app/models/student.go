package models

import "time"

// Student is a row of the students table joined with the names of its
// program, major and year level. Fields are declared in JSON key order.
type Student struct {
	CreatedAt     time.Time `json:"created_at"`
	Email         *string   `json:"email"`
	FirstName     string    `json:"first_name"`
	ID            int64     `json:"id"`
	LastName      string    `json:"last_name"`
	MajorID       *int64    `json:"major_id"`
	MajorName     *string   `json:"major_name"`
	MiddleName    *string   `json:"middle_name"`
	ProgramID     int64     `json:"program_id"`
	ProgramName   string    `json:"program_name"`
	StudentNumber string    `json:"student_number"`
	UpdatedAt     time.Time `json:"updated_at"`
	YearLevelID   int64     `json:"year_level_id"`
	YearLevelName string    `json:"year_level_name"`
}

// StudentChanges holds the columns a partial update touches; nil means
// unchanged.
type StudentChanges struct {
	StudentNumber *string
	FirstName     *string
	MiddleName    *string
	LastName      *string
	Email         *string
	ProgramID     *int64
	MajorID       *int64
	YearLevelID   *int64
}
