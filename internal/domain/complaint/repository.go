package complaint

import "context"

// Repository owns complaint records and their child accused, evidence, and
// audit-log records. Writes happen only through the lifecycle engine; the
// multi-record writes of creation and assignment run inside a transaction
// carried in ctx.
type Repository interface {
	Save(ctx context.Context, c *Complaint) error
	Update(ctx context.Context, c *Complaint) error
	GetByID(ctx context.Context, id uint) (*Complaint, error)
	// ListAssigned returns complaints routed to a faculty member,
	// newest first.
	ListAssigned(ctx context.Context, facultyID uint) ([]*Complaint, error)

	SaveAccused(ctx context.Context, a *AccusedParty) error
	ListAccused(ctx context.Context, complaintID uint) ([]*AccusedParty, error)

	SaveEvidence(ctx context.Context, e *Evidence) error
	ListEvidence(ctx context.Context, complaintID uint) ([]*Evidence, error)

	AppendLog(ctx context.Context, entry *LogEntry) error
	ListLogs(ctx context.Context, complaintID uint) ([]*LogEntry, error)
}
