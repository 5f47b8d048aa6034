package repository

import (
	"context"

	"github.com/anjalishikhare80/event-management-system/internal/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByCredentials(ctx context.Context, username, password string) (*entity.User, error)
}

type EventRepository interface {
	Create(ctx context.Context, event *entity.Event) error
	GetByID(ctx context.Context, id int64) (*entity.Event, error)
	GetAll(ctx context.Context) ([]*entity.Event, error)
}

type RegistrationRepository interface {
	Create(ctx context.Context, reg *entity.Registration) error
	GetByEventID(ctx context.Context, eventID int64) ([]*entity.RegistrationWithUser, error)
	GetByEventAndUser(ctx context.Context, eventID, userID int64) (*entity.Registration, error)
	DeleteByEventAndUser(ctx context.Context, eventID, userID int64) error
	CountByEvent(ctx context.Context, eventID int64) (int, error)
}
