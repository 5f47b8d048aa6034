package service

import (
	"context"
	"fmt"
	"io"

	repository "github.com/anjalishikhare80/event-management-system/internal/database/sqlite"
	"github.com/anjalishikhare80/event-management-system/internal/entity"
	"github.com/anjalishikhare80/event-management-system/pkg/storage"
)

type registrationService struct {
	regRepo   repository.RegistrationRepository
	eventRepo repository.EventRepository
	uploads   storage.FileStorage
	exportDir string
}

// NewRegistrationService creates a new instance of RegistrationService
func NewRegistrationService(
	regRepo repository.RegistrationRepository,
	eventRepo repository.EventRepository,
	uploads storage.FileStorage,
	exportDir string,
) RegistrationService {
	return &registrationService{
		regRepo:   regRepo,
		eventRepo: eventRepo,
		uploads:   uploads,
		exportDir: exportDir,
	}
}

func (s *registrationService) Register(ctx context.Context, req *RegisterRequest, filename string, file io.Reader) (*entity.Registration, error) {
	// The event must exist before any file is stored or row inserted.
	if _, err := s.eventRepo.GetByID(ctx, req.EventID); err != nil {
		return nil, err
	}

	if file == nil || filename == "" {
		return nil, entity.ErrPaymentProofMissing
	}

	storedName, err := s.uploads.Save(filename, file)
	if err != nil {
		return nil, err
	}

	reg := &entity.Registration{
		EventID:      req.EventID,
		UserID:       req.UserID,
		FullName:     req.FullName,
		Mobile:       req.Mobile,
		Email:        req.Email,
		College:      req.College,
		Year:         req.Year,
		Branch:       req.Branch,
		PaymentImage: storedName,
	}

	if err := s.regRepo.Create(ctx, reg); err != nil {
		return nil, fmt.Errorf("failed to register: %w", err)
	}

	return reg, nil
}

func (s *registrationService) ListParticipants(ctx context.Context, eventID int64) ([]*entity.RegistrationWithUser, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, err
	}

	return s.regRepo.GetByEventID(ctx, eventID)
}

func (s *registrationService) CountParticipants(ctx context.Context, eventID int64) (int, error) {
	return s.regRepo.CountByEvent(ctx, eventID)
}

func (s *registrationService) RemoveParticipant(ctx context.Context, eventID, userID int64) error {
	reg, err := s.regRepo.GetByEventAndUser(ctx, eventID, userID)
	if err != nil {
		return err
	}

	if err := s.regRepo.DeleteByEventAndUser(ctx, eventID, userID); err != nil {
		return err
	}

	// best effort: colliding filenames mean the proof may belong to another
	// registration, and the row is already gone
	if reg.PaymentImage != "" {
		_ = s.uploads.Delete(reg.PaymentImage)
	}
	return nil
}
