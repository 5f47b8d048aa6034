package service

import (
	"context"
	"fmt"

	"github.com/anjalishikhare80/event-management-system/pkg/export"
)

// ExportParticipants writes the participant list of one event to a temp CSV
// file and returns its path plus the attachment name offered to the browser.
func (s *registrationService) ExportParticipants(ctx context.Context, eventID int64) (string, string, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return "", "", err
	}

	regs, err := s.regRepo.GetByEventID(ctx, eventID)
	if err != nil {
		return "", "", err
	}

	path, err := export.WriteParticipantsCSV(s.exportDir, eventID, regs)
	if err != nil {
		return "", "", err
	}

	return path, fmt.Sprintf("participants_event_%d.csv", eventID), nil
}
