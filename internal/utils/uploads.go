package utils

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/vaishnav/edutech_backend_v1/internal/models"
)

var ErrFileType = errors.New("file type not allowed")

var allowedExtensions = map[models.UploadKind][]string{
	models.UploadAssignment:  {".pdf", ".doc", ".docx", ".txt"},
	models.UploadLeaveLetter: {".pdf", ".doc", ".docx", ".txt", ".jpg", ".jpeg", ".png"},
	models.UploadODForm:      {".pdf", ".doc", ".docx"},
	models.UploadCertificate: {".pdf", ".jpg", ".jpeg", ".png"},
}

func AllowedExtensions(kind models.UploadKind) []string {
	return append([]string(nil), allowedExtensions[kind]...)
}

// CheckUploadName validates the extension against the kind's allowlist and returns
// the base file name to retain.
func CheckUploadName(kind models.UploadKind, name string) (string, error) {
	base := filepath.Base(strings.ReplaceAll(strings.TrimSpace(name), "\\", "/"))
	if base == "" || base == "." || base == "/" {
		return "", ErrFileType
	}
	ext := strings.ToLower(filepath.Ext(base))
	for _, allowed := range allowedExtensions[kind] {
		if ext == allowed {
			return base, nil
		}
	}
	return "", ErrFileType
}
