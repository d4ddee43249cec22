package models

// Program is an academic program a student is enrolled in.
type Program struct {
	Code     string `json:"code"`
	DegreeID *int64 `json:"degree_id"`
	ID       int64  `json:"id"`
	Name     string `json:"name"`
}

// Major is a specialization within a program.
type Major struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ProgramID int64  `json:"program_id"`
}

// Degree is the degree a program confers.
type Degree struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// YearLevel is a student's standing, e.g. "2nd Year".
type YearLevel struct {
	ID    int64  `json:"id"`
	Level int    `json:"level"`
	Name  string `json:"name"`
}

// Organization is a student organization that runs events and keeps an
// org chart.
type Organization struct {
	Acronym *string `json:"acronym"`
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
}

// DefaultYearLevels is served when the year_levels table cannot be read.
var DefaultYearLevels = []YearLevel{
	{ID: 1, Level: 1, Name: "1st Year"},
	{ID: 2, Level: 2, Name: "2nd Year"},
	{ID: 3, Level: 3, Name: "3rd Year"},
	{ID: 4, Level: 4, Name: "4th Year"},
	{ID: 5, Level: 5, Name: "5th Year"},
}
