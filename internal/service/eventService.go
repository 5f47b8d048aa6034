package service

import (
	"context"
	"fmt"

	repository "github.com/anjalishikhare80/event-management-system/internal/database/sqlite"
	"github.com/anjalishikhare80/event-management-system/internal/entity"
)

type eventService struct {
	eventRepo repository.EventRepository
}

// NewEventService creates a new instance of EventService
func NewEventService(eventRepo repository.EventRepository) EventService {
	return &eventService{eventRepo: eventRepo}
}

func (s *eventService) CreateEvent(ctx context.Context, req *CreateEventRequest) (*entity.Event, error) {
	status := entity.EventStatus(req.Status)
	if status == "" {
		status = entity.EventStatusUpcoming
	}

	isTeam := entity.TeamEventNo
	if req.IsTeamEvent == string(entity.TeamEventYes) {
		isTeam = entity.TeamEventYes
	}

	event := &entity.Event{
		Title:            req.Title,
		Description:      req.Description,
		Category:         req.Category,
		Date:             req.Date,
		StartTime:        req.StartTime,
		EndTime:          req.EndTime,
		Venue:            req.Venue,
		Deadline:         req.Deadline,
		Fee:              req.Fee,
		IsTeamEvent:      isTeam,
		TeamSize:         req.TeamSize,
		OrganizerName:    req.OrganizerName,
		OrganizerContact: req.OrganizerContact,
		Status:           status,
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return event, nil
}

func (s *eventService) GetEvent(ctx context.Context, id int64) (*entity.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return event, nil
}

func (s *eventService) GetAllEvents(ctx context.Context) ([]*entity.Event, error) {
	events, err := s.eventRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all events: %w", err)
	}

	return events, nil
}
