package models

import "time"

type UploadKind string

const (
	UploadAssignment  UploadKind = "assignment"
	UploadLeaveLetter UploadKind = "leave_letter"
	UploadODForm      UploadKind = "od_form"
	UploadCertificate UploadKind = "certificate"
)

// Upload records a file-picker selection. Only the name is kept.
type Upload struct {
	ID         int        `json:"id"`
	Kind       UploadKind `json:"kind"`
	FileName   string     `json:"file_name"`
	Username   string     `json:"username"`
	UploadedAt time.Time  `json:"uploaded_at"`
}
