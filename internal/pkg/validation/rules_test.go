package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type slotInput struct {
	Type        string   `json:"type" validate:"required,oneof=TIME_IN TIME_OUT OPTIONAL"`
	TriggerTime string   `json:"trigger_time" validate:"required,timeofday"`
	FineAmount  *float64 `json:"fine_amount" validate:"omitempty,gte=0,lte=100000"`
}

type studentInput struct {
	StudentNumber string  `json:"student_number" validate:"required,studentnumber"`
	FirstName     string  `json:"first_name" validate:"required,max=100"`
	Email         *string `json:"email" validate:"omitempty,email"`
}

type listQuery struct {
	Limit int `form:"limit" validate:"min=1,max=100"`
}

func TestStruct_Valid(t *testing.T) {
	v := New()
	fine := 50.0
	assert.NoError(t, v.Struct(&slotInput{Type: "TIME_IN", TriggerTime: "07:30", FineAmount: &fine}))
}

func TestStruct_FirstViolationNamesJSONField(t *testing.T) {
	v := New()

	err := v.Struct(&studentInput{StudentNumber: "21-00042"})
	require.Error(t, err)

	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "first_name", fe.Field)
	assert.Equal(t, "first_name is a required field", fe.Message)
}

func TestStruct_OnlyFirstViolationReported(t *testing.T) {
	v := New()

	err := v.Struct(&studentInput{})
	require.Error(t, err)
	assert.Equal(t, "student_number is a required field", err.Error())
}

func TestStruct_CustomRules(t *testing.T) {
	v := New()

	err := v.Struct(&slotInput{Type: "TIME_IN", TriggerTime: "7:30pm"})
	require.Error(t, err)
	assert.Equal(t, "trigger_time must be a time of day in HH:MM or HH:MM:SS format", err.Error())

	err = v.Struct(&studentInput{StudentNumber: "ABC", FirstName: "Ana"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "student_number must be a student number")
}

func TestStruct_EnumAndRange(t *testing.T) {
	v := New()
	fine := -1.0

	err := v.Struct(&slotInput{Type: "LUNCH", TriggerTime: "12:00"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "type must be one of")

	err = v.Struct(&slotInput{Type: "TIME_OUT", TriggerTime: "12:00", FineAmount: &fine})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fine_amount")
}

func TestStruct_QueryFieldNames(t *testing.T) {
	err := New().Struct(&listQuery{Limit: 500})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "limit")
}

type eventInput struct {
	EventDate string `json:"event_date" validate:"required,calendardate"`
	ID        int64  `json:"-" uri:"id" validate:"required,min=1"`
}

func TestStruct_CalendarDateAndPathNames(t *testing.T) {
	v := New()

	err := v.Struct(&eventInput{EventDate: "2024-02-30", ID: 1})
	require.Error(t, err)
	assert.Equal(t, "event_date must be a date in YYYY-MM-DD format", err.Error())

	err = v.Struct(&eventInput{EventDate: "2024-02-29"})
	require.Error(t, err)
	assert.Equal(t, "id is a required field", err.Error())
}
