package complaint

import (
	"fmt"
	"time"

	"campusguard/internal/shared/biztime"
)

// LogEntry is one row of the immutable audit trail. Every state-changing
// operation on a complaint appends exactly one entry inside the same
// transaction as the change itself.
type LogEntry struct {
	id          uint
	complaintID uint
	actionBy    uint
	description string
	createdAt   time.Time
}

func NewLogEntry(complaintID, actionBy uint, description string) (*LogEntry, error) {
	if actionBy == 0 {
		return nil, fmt.Errorf("acting user ID is required")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("action description is required")
	}

	return &LogEntry{
		complaintID: complaintID,
		actionBy:    actionBy,
		description: description,
		createdAt:   biztime.NowUTC(),
	}, nil
}

func ReconstructLogEntry(
	id uint,
	complaintID uint,
	actionBy uint,
	description string,
	createdAt time.Time,
) (*LogEntry, error) {
	if id == 0 {
		return nil, fmt.Errorf("log ID cannot be zero")
	}

	return &LogEntry{
		id:          id,
		complaintID: complaintID,
		actionBy:    actionBy,
		description: description,
		createdAt:   createdAt,
	}, nil
}

func (l *LogEntry) ID() uint {
	return l.id
}

func (l *LogEntry) ComplaintID() uint {
	return l.complaintID
}

func (l *LogEntry) ActionByUserID() uint {
	return l.actionBy
}

func (l *LogEntry) Description() string {
	return l.description
}

func (l *LogEntry) CreatedAt() time.Time {
	return l.createdAt
}

// BindToComplaint attaches a creation log entry to its parent inside the
// creation transaction.
func (l *LogEntry) BindToComplaint(complaintID uint) error {
	if l.complaintID != 0 {
		return fmt.Errorf("log entry is already bound to complaint %d", l.complaintID)
	}
	if complaintID == 0 {
		return fmt.Errorf("complaint ID cannot be zero")
	}
	l.complaintID = complaintID
	return nil
}
