package usecases

import (
	"context"

	"campusguard/internal/application/complaint/dto"
)

// TransactionRunner runs a function inside a database transaction. Satisfied
// by db.TransactionManager; abstracted here so use cases stay mockable.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CreateComplaintExecutor interface {
	Execute(ctx context.Context, cmd CreateComplaintCommand) (*CreateComplaintResult, error)
}

type AttachEvidenceExecutor interface {
	Execute(ctx context.Context, cmd AttachEvidenceCommand) (*AttachEvidenceResult, error)
}

type AssignFacultyExecutor interface {
	Execute(ctx context.Context, cmd AssignFacultyCommand) (*AssignFacultyResult, error)
}

type ListAssignedExecutor interface {
	Execute(ctx context.Context, query ListAssignedQuery) ([]*dto.ComplaintView, error)
}

type GetComplaintExecutor interface {
	Execute(ctx context.Context, query GetComplaintQuery) (*dto.ComplaintView, error)
}
