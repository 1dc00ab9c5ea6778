package usecases

import (
	"context"

	"campusguard/internal/application/complaint/dto"
	"campusguard/internal/domain/complaint"
	"campusguard/internal/domain/user"
	"campusguard/internal/shared/errors"
	"campusguard/internal/shared/logger"
)

type ListAssignedQuery struct {
	FacultyID uint
}

// ListAssignedUseCase returns the complaints routed to a faculty member,
// newest first, each run through the read projector.
type ListAssignedUseCase struct {
	complaintRepo complaint.Repository
	userRepo      user.Repository
	deptRepo      user.DepartmentRepository
	assembler     *dto.Assembler
	logger        logger.Interface
}

func NewListAssignedUseCase(
	complaintRepo complaint.Repository,
	userRepo user.Repository,
	deptRepo user.DepartmentRepository,
	assembler *dto.Assembler,
	logger logger.Interface,
) *ListAssignedUseCase {
	return &ListAssignedUseCase{
		complaintRepo: complaintRepo,
		userRepo:      userRepo,
		deptRepo:      deptRepo,
		assembler:     assembler,
		logger:        logger,
	}
}

func (uc *ListAssignedUseCase) Execute(ctx context.Context, query ListAssignedQuery) ([]*dto.ComplaintView, error) {
	uc.logger.Infow("executing list assigned use case", "faculty_id", query.FacultyID)

	if query.FacultyID == 0 {
		return nil, errors.NewValidationError("faculty ID is required")
	}

	complaints, err := uc.complaintRepo.ListAssigned(ctx, query.FacultyID)
	if err != nil {
		uc.logger.Errorw("failed to list assigned complaints", "error", err)
		return nil, err
	}

	views := make([]*dto.ComplaintView, 0, len(complaints))
	for _, c := range complaints {
		view, err := projectComplaint(ctx, uc.complaintRepo, uc.userRepo, uc.deptRepo, uc.assembler, c)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	uc.logger.Infow("assigned complaints listed", "faculty_id", query.FacultyID, "count", len(views))
	return views, nil
}
