package services

import (
	"context"
	"fmt"

	"github.com/revams/api/internal/app/models"
	"github.com/revams/api/internal/app/models/dto"
	"github.com/revams/api/internal/pkg/apperrors"
	"github.com/revams/api/internal/pkg/helpers"
)

// EventService defines the interface for event operations
type EventService interface {
	ListEvents(ctx context.Context, params dto.ListParams) ([]models.Event, dto.Pagination, error)
	GetEvent(ctx context.Context, id int64) (*models.Event, error)
	CreateEvent(ctx context.Context, event *models.Event) (*models.Event, error)
	UpdateEvent(ctx context.Context, id int64, changes models.EventChanges) (*models.Event, error)
	DeleteEvent(ctx context.Context, id int64) error
}

type eventServiceImpl struct {
	events        EventStore
	organizations OrganizationStore
}

// NewEventService creates a new EventService
func NewEventService(events EventStore, organizations OrganizationStore) EventService {
	return &eventServiceImpl{events: events, organizations: organizations}
}

func (s *eventServiceImpl) ListEvents(ctx context.Context, params dto.ListParams) ([]models.Event, dto.Pagination, error) {
	events, total, err := s.events.List(ctx, params)
	if err != nil {
		return nil, dto.Pagination{}, fmt.Errorf("error listing events: %w", err)
	}
	return events, helpers.NewPagination(total, params.Page, params.Limit), nil
}

func (s *eventServiceImpl) GetEvent(ctx context.Context, id int64) (*models.Event, error) {
	return s.events.GetByID(ctx, id)
}

func (s *eventServiceImpl) checkOrganization(ctx context.Context, organizationID *int64) error {
	if organizationID == nil {
		return nil
	}
	ok, err := s.organizations.Exists(ctx, *organizationID)
	if err != nil {
		return fmt.Errorf("error checking organization: %w", err)
	}
	if !ok {
		return apperrors.NewBadRequestError("Organization not found")
	}
	return nil
}

// CreateEvent creates a new event
func (s *eventServiceImpl) CreateEvent(ctx context.Context, event *models.Event) (*models.Event, error) {
	if err := s.checkOrganization(ctx, event.OrganizationID); err != nil {
		return nil, err
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, err
	}
	return s.events.GetByID(ctx, event.ID)
}

// UpdateEvent applies a partial update
func (s *eventServiceImpl) UpdateEvent(ctx context.Context, id int64, changes models.EventChanges) (*models.Event, error) {
	exists, err := s.events.Exists(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error checking event: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrEventNotFound
	}

	if err := s.checkOrganization(ctx, changes.OrganizationID); err != nil {
		return nil, err
	}
	if err := s.events.Update(ctx, id, changes); err != nil {
		return nil, err
	}
	return s.events.GetByID(ctx, id)
}

// DeleteEvent deletes an event without attendance slots
func (s *eventServiceImpl) DeleteEvent(ctx context.Context, id int64) error {
	exists, err := s.events.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("error checking event: %w", err)
	}
	if !exists {
		return apperrors.ErrEventNotFound
	}

	hasSlots, err := s.events.HasSlots(ctx, id)
	if err != nil {
		return fmt.Errorf("error checking event slots: %w", err)
	}
	if hasSlots {
		return apperrors.ErrEventHasSlots
	}

	return s.events.Delete(ctx, id)
}
