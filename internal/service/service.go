package service

import (
	"context"
	"io"

	"github.com/anjalishikhare80/event-management-system/internal/entity"
)

type AuthService interface {
	Signup(ctx context.Context, req *SignupRequest) (*entity.User, error)
	Login(ctx context.Context, username, password string) (*entity.User, error)
}

type EventService interface {
	CreateEvent(ctx context.Context, req *CreateEventRequest) (*entity.Event, error)
	GetEvent(ctx context.Context, id int64) (*entity.Event, error)
	GetAllEvents(ctx context.Context) ([]*entity.Event, error)
}

type RegistrationService interface {
	Register(ctx context.Context, req *RegisterRequest, filename string, file io.Reader) (*entity.Registration, error)
	ListParticipants(ctx context.Context, eventID int64) ([]*entity.RegistrationWithUser, error)
	CountParticipants(ctx context.Context, eventID int64) (int, error)
	RemoveParticipant(ctx context.Context, eventID, userID int64) error
	ExportParticipants(ctx context.Context, eventID int64) (path, downloadName string, err error)
}

// SignupRequest represents the data submitted on the signup form
type SignupRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
	Role     string `form:"role"`
}

// CreateEventRequest represents the data submitted on the create-event form
type CreateEventRequest struct {
	Title            string  `form:"title" binding:"required"`
	Description      string  `form:"description"`
	Category         string  `form:"category"`
	Date             string  `form:"date"`
	StartTime        string  `form:"start_time"`
	EndTime          string  `form:"end_time"`
	Venue            string  `form:"venue"`
	Deadline         string  `form:"deadline"`
	Fee              float64 `form:"fee"`
	IsTeamEvent      string  `form:"is_team_event"`
	TeamSize         int     `form:"team_size"`
	OrganizerName    string  `form:"organizer_name"`
	OrganizerContact string  `form:"organizer_contact"`
	Status           string  `form:"status"`
}

// RegisterRequest represents the participant registration form for one event
type RegisterRequest struct {
	EventID  int64
	UserID   int64
	FullName string `form:"full_name" binding:"required"`
	Mobile   string `form:"mobile"`
	Email    string `form:"email"`
	College  string `form:"college"`
	Year     string `form:"year"`
	Branch   string `form:"branch"`
}
