package complaint

import (
	"fmt"
	"time"

	"campusguard/internal/shared/biztime"
)

// Evidence is an append-only pointer to a stored evidentiary file. Rows are
// never edited or deleted; the file bytes live in the external blob store.
type Evidence struct {
	id          uint
	complaintID uint
	fileURL     string
	fileType    string
	uploadedAt  time.Time
}

func NewEvidence(complaintID uint, fileURL, fileType string) (*Evidence, error) {
	if complaintID == 0 {
		return nil, fmt.Errorf("complaint ID is required")
	}
	if len(fileURL) == 0 {
		return nil, fmt.Errorf("file URL is required")
	}

	return &Evidence{
		complaintID: complaintID,
		fileURL:     fileURL,
		fileType:    fileType,
		uploadedAt:  biztime.NowUTC(),
	}, nil
}

func ReconstructEvidence(
	id uint,
	complaintID uint,
	fileURL, fileType string,
	uploadedAt time.Time,
) (*Evidence, error) {
	if id == 0 {
		return nil, fmt.Errorf("evidence ID cannot be zero")
	}
	if complaintID == 0 {
		return nil, fmt.Errorf("complaint ID is required")
	}

	return &Evidence{
		id:          id,
		complaintID: complaintID,
		fileURL:     fileURL,
		fileType:    fileType,
		uploadedAt:  uploadedAt,
	}, nil
}

func (e *Evidence) ID() uint {
	return e.id
}

func (e *Evidence) ComplaintID() uint {
	return e.complaintID
}

func (e *Evidence) FileURL() string {
	return e.fileURL
}

func (e *Evidence) FileType() string {
	return e.fileType
}

func (e *Evidence) UploadedAt() time.Time {
	return e.uploadedAt
}
