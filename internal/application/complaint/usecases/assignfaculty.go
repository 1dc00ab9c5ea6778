package usecases

import (
	"context"
	"fmt"
	"time"

	"campusguard/internal/domain/complaint"
	vo "campusguard/internal/domain/complaint/valueobjects"
	"campusguard/internal/domain/user"
	"campusguard/internal/shared/errors"
	"campusguard/internal/shared/logger"
)

type AssignFacultyCommand struct {
	ComplaintID uint
	FacultyID   uint
	AssignedBy  uint
}

type AssignFacultyResult struct {
	ComplaintID uint
	FacultyID   uint
	Status      string
	UpdatedAt   time.Time
}

// AssignFacultyUseCase routes a complaint to a faculty reviewer. The
// UNDER_REVIEW status row must be resolvable before any write happens;
// the status update and the audit entry commit together.
type AssignFacultyUseCase struct {
	complaintRepo complaint.Repository
	userRepo      user.Repository
	lookup        complaint.StatusLookup
	txRunner      TransactionRunner
	logger        logger.Interface
}

func NewAssignFacultyUseCase(
	complaintRepo complaint.Repository,
	userRepo user.Repository,
	lookup complaint.StatusLookup,
	txRunner TransactionRunner,
	logger logger.Interface,
) *AssignFacultyUseCase {
	return &AssignFacultyUseCase{
		complaintRepo: complaintRepo,
		userRepo:      userRepo,
		lookup:        lookup,
		txRunner:      txRunner,
		logger:        logger,
	}
}

func (uc *AssignFacultyUseCase) Execute(ctx context.Context, cmd AssignFacultyCommand) (*AssignFacultyResult, error) {
	uc.logger.Infow("executing assign faculty use case",
		"complaint_id", cmd.ComplaintID,
		"faculty_id", cmd.FacultyID,
		"assigned_by", cmd.AssignedBy)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid assign faculty command", "error", err)
		return nil, err
	}

	// The workflow state is configured data. Resolve it up front so a
	// missing row surfaces as a configuration error before any write.
	if _, err := uc.lookup.StatusID(vo.StatusUnderReview); err != nil {
		uc.logger.Errorw("status row missing", "error", err, "status", vo.StatusUnderReview)
		return nil, err
	}

	// The faculty ID is client input: a user that does not exist is as
	// invalid a target as one with the wrong role.
	faculty, err := uc.userRepo.GetByID(ctx, cmd.FacultyID)
	if err != nil {
		uc.logger.Errorw("failed to find faculty user", "error", err, "faculty_id", cmd.FacultyID)
		if errors.IsNotFoundError(err) {
			return nil, errors.NewValidationError("invalid faculty user")
		}
		return nil, err
	}

	if !faculty.IsFaculty() {
		uc.logger.Warnw("assignment target is not faculty",
			"faculty_id", cmd.FacultyID,
			"role", faculty.Role())
		return nil, errors.NewValidationError("assigned user must have the faculty role")
	}

	target, err := uc.complaintRepo.GetByID(ctx, cmd.ComplaintID)
	if err != nil {
		uc.logger.Errorw("failed to find complaint", "error", err, "complaint_id", cmd.ComplaintID)
		return nil, err
	}

	if err := target.AssignTo(cmd.FacultyID); err != nil {
		uc.logger.Errorw("failed to assign complaint", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.complaintRepo.Update(txCtx, target); err != nil {
			return err
		}

		entry, err := complaint.NewLogEntry(
			cmd.ComplaintID,
			cmd.AssignedBy,
			fmt.Sprintf("Assigned to faculty ID %d (%s)", cmd.FacultyID, faculty.FullName()),
		)
		if err != nil {
			return errors.NewInternalError(err.Error())
		}
		return uc.complaintRepo.AppendLog(txCtx, entry)
	})
	if err != nil {
		uc.logger.Errorw("failed to update complaint", "error", err)
		return nil, err
	}

	uc.logger.Infow("complaint assigned successfully",
		"complaint_id", cmd.ComplaintID,
		"faculty_id", cmd.FacultyID)

	return &AssignFacultyResult{
		ComplaintID: target.ID(),
		FacultyID:   cmd.FacultyID,
		Status:      target.Status().String(),
		UpdatedAt:   target.UpdatedAt(),
	}, nil
}

func (uc *AssignFacultyUseCase) validateCommand(cmd AssignFacultyCommand) error {
	if cmd.ComplaintID == 0 {
		return errors.NewValidationError("complaint ID is required")
	}
	if cmd.FacultyID == 0 {
		return errors.NewValidationError("faculty ID is required")
	}
	if cmd.AssignedBy == 0 {
		return errors.NewValidationError("assigning user ID is required")
	}
	return nil
}
