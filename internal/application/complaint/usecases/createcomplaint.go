package usecases

import (
	"context"
	"time"

	"campusguard/internal/domain/complaint"
	"campusguard/internal/shared/errors"
	"campusguard/internal/shared/logger"
)

type AccusedInput struct {
	UserID       *uint
	Name         *string
	DepartmentID *uint
}

type CreateComplaintCommand struct {
	Title        string
	Description  string
	Severity     string
	Location     *string
	IncidentDate *time.Time
	StudentID    uint
	IsAnonymous  bool
	Accused      []AccusedInput
}

type CreateComplaintResult struct {
	ComplaintID  uint
	Status       string
	AccusedCount int
	CreatedAt    time.Time
}

// CreateComplaintUseCase files a complaint. The complaint row, every
// accused row, and the initial audit entry commit as one transaction; a
// failure on any record aborts the whole creation.
type CreateComplaintUseCase struct {
	complaintRepo complaint.Repository
	lookup        complaint.StatusLookup
	txRunner      TransactionRunner
	logger        logger.Interface
}

func NewCreateComplaintUseCase(
	complaintRepo complaint.Repository,
	lookup complaint.StatusLookup,
	txRunner TransactionRunner,
	logger logger.Interface,
) *CreateComplaintUseCase {
	return &CreateComplaintUseCase{
		complaintRepo: complaintRepo,
		lookup:        lookup,
		txRunner:      txRunner,
		logger:        logger,
	}
}

func (uc *CreateComplaintUseCase) Execute(ctx context.Context, cmd CreateComplaintCommand) (*CreateComplaintResult, error) {
	uc.logger.Infow("executing create complaint use case",
		"student_id", cmd.StudentID,
		"is_anonymous", cmd.IsAnonymous,
		"accused_count", len(cmd.Accused))

	severityID, ok := uc.lookup.SeverityID(cmd.Severity)
	if !ok {
		return nil, errors.NewValidationError("unknown severity level")
	}

	newComplaint, err := complaint.NewComplaint(
		cmd.Title,
		cmd.Description,
		severityID,
		cmd.Location,
		cmd.IncidentDate,
		cmd.StudentID,
		cmd.IsAnonymous,
	)
	if err != nil {
		uc.logger.Errorw("failed to create complaint entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	parties := make([]*complaint.AccusedParty, 0, len(cmd.Accused))
	for _, in := range cmd.Accused {
		if in.UserID != nil && *in.UserID == cmd.StudentID {
			return nil, errors.NewConflictError("a student cannot file a complaint against themselves")
		}

		party, err := complaint.NewAccusedParty(in.UserID, in.Name, in.DepartmentID, cmd.StudentID)
		if err != nil {
			uc.logger.Errorw("invalid accused entry", "error", err)
			return nil, errors.NewValidationError(err.Error())
		}
		parties = append(parties, party)
	}

	err = uc.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.complaintRepo.Save(txCtx, newComplaint); err != nil {
			return err
		}

		for _, party := range parties {
			if err := party.BindToComplaint(newComplaint.ID()); err != nil {
				return errors.NewInternalError(err.Error())
			}
			if err := uc.complaintRepo.SaveAccused(txCtx, party); err != nil {
				return err
			}
		}

		entry, err := complaint.NewLogEntry(newComplaint.ID(), cmd.StudentID, newComplaint.CreationLogDescription())
		if err != nil {
			return errors.NewInternalError(err.Error())
		}
		return uc.complaintRepo.AppendLog(txCtx, entry)
	})
	if err != nil {
		uc.logger.Errorw("failed to save complaint", "error", err)
		return nil, err
	}

	uc.logger.Infow("complaint created successfully",
		"complaint_id", newComplaint.ID(),
		"accused_count", len(parties))

	return &CreateComplaintResult{
		ComplaintID:  newComplaint.ID(),
		Status:       newComplaint.Status().String(),
		AccusedCount: len(parties),
		CreatedAt:    newComplaint.CreatedAt(),
	}, nil
}
