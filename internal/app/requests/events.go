package requests

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/revams/api/internal/app/models"
	"github.com/revams/api/internal/app/models/dto"
)

// ListEventsRequest backs GET /api/events.
type ListEventsRequest struct {
	QueryBase
	input struct {
		PageQuery
		Search string `form:"search" validate:"max=100"`
		Sort   string `form:"sort,default=event_date" validate:"oneof=event_date name created_at"`
		Order  string `form:"order,default=desc" validate:"oneof=asc desc"`
	}
}

func (r *ListEventsRequest) Rules() any { return &r.input }

func (r *ListEventsRequest) Prepare(*gin.Context) error {
	r.input.Search = strings.TrimSpace(r.input.Search)
	return nil
}

func (r *ListEventsRequest) ListParams() dto.ListParams {
	r.mustBeValidated()
	return dto.ListParams{
		Page:   r.input.Page,
		Limit:  r.input.Limit,
		Search: r.input.Search,
		Sort:   r.input.Sort,
		Order:  r.input.Order,
	}
}

// CreateEventRequest backs POST /api/events.
type CreateEventRequest struct {
	Base
	input struct {
		Name           string  `json:"name" validate:"required,min=1,max=200"`
		Description    *string `json:"description" validate:"omitempty,max=2000"`
		Location       *string `json:"location" validate:"omitempty,max=200"`
		EventDate      string  `json:"event_date" validate:"required,calendardate"`
		OrganizationID *int64  `json:"organization_id" validate:"omitempty,min=1"`
	}
}

func (r *CreateEventRequest) Rules() any { return &r.input }

func (r *CreateEventRequest) Prepare(*gin.Context) error {
	r.input.Name = strings.TrimSpace(r.input.Name)
	return nil
}

func (r *CreateEventRequest) Event() *models.Event {
	r.mustBeValidated()
	in := r.input
	return &models.Event{
		Description:    in.Description,
		EventDate:      in.EventDate,
		Location:       in.Location,
		Name:           in.Name,
		OrganizationID: in.OrganizationID,
	}
}

// UpdateEventRequest backs PATCH /api/events/:id.
type UpdateEventRequest struct {
	Base
	input struct {
		ID             int64   `json:"-" uri:"id" validate:"required,min=1"`
		Name           *string `json:"name" validate:"omitempty,min=1,max=200"`
		Description    *string `json:"description" validate:"omitempty,max=2000"`
		Location       *string `json:"location" validate:"omitempty,max=200"`
		EventDate      *string `json:"event_date" validate:"omitempty,calendardate"`
		OrganizationID *int64  `json:"organization_id" validate:"omitempty,min=1"`
	}
}

func (r *UpdateEventRequest) Rules() any { return &r.input }

func (r *UpdateEventRequest) Prepare(*gin.Context) error {
	trimSet(r.input.Name)
	return nil
}

func (r *UpdateEventRequest) ID() int64 {
	r.mustBeValidated()
	return r.input.ID
}

func (r *UpdateEventRequest) Changes() models.EventChanges {
	r.mustBeValidated()
	in := r.input
	return models.EventChanges{
		Name:           in.Name,
		Description:    in.Description,
		Location:       in.Location,
		EventDate:      in.EventDate,
		OrganizationID: in.OrganizationID,
	}
}
