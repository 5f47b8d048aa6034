// Package export serializes registration rows to CSV downloads.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/anjalishikhare80/event-management-system/internal/entity"

	"github.com/google/uuid"
)

// Header is the fixed column order of the participant export.
var Header = []string{"full_name", "mobile", "email", "college", "year", "branch"}

// WriteParticipantsCSV writes one header row plus one row per registration to
// a uniquely named temp file and returns its path. The caller streams the
// file as a download and removes it afterwards.
func WriteParticipantsCSV(tmpDir string, eventID int64, regs []*entity.RegistrationWithUser) (string, error) {
	if tmpDir == "" {
		tmpDir = os.TempDir()
	}

	path := filepath.Join(tmpDir, fmt.Sprintf("participants_event_%d_%s.csv", eventID, uuid.New().String()))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Header); err != nil {
		return "", fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, reg := range regs {
		row := []string{reg.FullName, reg.Mobile, reg.Email, reg.College, reg.Year, reg.Branch}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush csv: %w", err)
	}

	return path, nil
}
