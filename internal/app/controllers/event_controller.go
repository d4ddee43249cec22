package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/revams/api/internal/app/requests"
	"github.com/revams/api/internal/app/services"
	"github.com/revams/api/internal/middleware"
)

// EventController handles event-related operations
type EventController struct {
	eventService services.EventService
	publicURL    string
}

// NewEventController creates a new EventController
func NewEventController(eventService services.EventService, publicURL string) *EventController {
	return &EventController{eventService: eventService, publicURL: publicURL}
}

// ListEvents returns a page of events
// @Summary List events
// @Tags events
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param search query string false "Matches name or location"
// @Param sort query string false "Sort column" Enums(event_date, name, created_at) default(event_date)
// @Param order query string false "Sort order" Enums(asc, desc) default(desc)
// @Success 200 {object} map[string]interface{} "events and pagination"
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /events [get]
func (c *EventController) ListEvents(ctx *gin.Context) {
	var req requests.ListEventsRequest
	if err := requests.Validate(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	events, pagination, err := c.eventService.ListEvents(ctx, req.ListParams())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"events": events, "pagination": pagination})
}

// GetEvent retrieves an event by ID
// @Summary Get an event
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} map[string]interface{} "event"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{id} [get]
func (c *EventController) GetEvent(ctx *gin.Context) {
	var req requests.ResourceRequest
	if err := requests.Validate(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	event, err := c.eventService.GetEvent(ctx, req.ID())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"event": event})
}

// CreateEvent creates an event
// @Summary Create an event
// @Tags events
// @Accept json
// @Produce json
// @Param request body object true "Event fields"
// @Success 201 {object} map[string]interface{} "event and message"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or unknown organization"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /events [post]
func (c *EventController) CreateEvent(ctx *gin.Context) {
	var req requests.CreateEventRequest
	if err := requests.Validate(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	event, err := c.eventService.CreateEvent(ctx, req.Event())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	setLocation(ctx, c.publicURL, "events", event.ID)
	ctx.JSON(http.StatusCreated, gin.H{"event": event, "message": "Event created successfully"})
}

// UpdateEvent partially updates an event
// @Summary Update an event
// @Tags events
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param request body object true "Fields to change"
// @Success 200 {object} map[string]interface{} "event and message"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{id} [patch]
func (c *EventController) UpdateEvent(ctx *gin.Context) {
	var req requests.UpdateEventRequest
	if err := requests.Validate(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	event, err := c.eventService.UpdateEvent(ctx, req.ID(), req.Changes())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"event": event, "message": "Event updated successfully"})
}

// DeleteEvent deletes an event
// @Summary Delete an event
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} map[string]interface{} "message"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Failure 409 {object} dto.ErrorResponse "Event has attendance slots"
// @Router /events/{id} [delete]
func (c *EventController) DeleteEvent(ctx *gin.Context) {
	var req requests.ResourceRequest
	if err := requests.Validate(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.eventService.DeleteEvent(ctx, req.ID()); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}
