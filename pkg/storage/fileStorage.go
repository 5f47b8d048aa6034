package storage

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/anjalishikhare80/event-management-system/internal/entity"
)

// allowedExtensions is the fixed allow-list for payment-proof uploads.
var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

type FileStorage interface {
	Save(name string, data io.Reader) (string, error)
	Get(name string) (io.ReadCloser, error)
	Delete(name string) error
	Exists(name string) bool
}

type fileStorage struct {
	basePath string
}

func NewFileStorage(basePath string) FileStorage {
	return &fileStorage{basePath: basePath}
}

// Save stores the upload under its sanitized client-supplied name and returns
// the name actually used. Two uploads with the same filename overwrite each
// other (last write wins).
func (s *fileStorage) Save(name string, data io.Reader) (string, error) {
	clean, err := SanitizeFilename(name)
	if err != nil {
		return "", err
	}

	fullPath := filepath.Join(s.basePath, clean)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", err
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	if _, err = io.Copy(file, data); err != nil {
		return "", err
	}
	return clean, nil
}

func (s *fileStorage) Get(name string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.basePath, name))
}

func (s *fileStorage) Delete(name string) error {
	return os.Remove(filepath.Join(s.basePath, name))
}

func (s *fileStorage) Exists(name string) bool {
	_, err := os.Stat(filepath.Join(s.basePath, name))
	return !os.IsNotExist(err)
}

// SanitizeFilename strips any path components from a client-supplied filename
// and validates its extension against the allow-list.
func SanitizeFilename(name string) (string, error) {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "." || base == ".." || base == "" {
		return "", entity.ErrPaymentProofMissing
	}
	if !ValidExtension(base) {
		return "", entity.ErrInvalidFileType
	}
	return base, nil
}

func ValidExtension(name string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(name))]
}
