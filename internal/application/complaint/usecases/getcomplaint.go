package usecases

import (
	"context"

	"campusguard/internal/application/complaint/dto"
	"campusguard/internal/domain/complaint"
	"campusguard/internal/domain/user"
	"campusguard/internal/shared/authorization"
	"campusguard/internal/shared/errors"
	"campusguard/internal/shared/logger"
)

type GetComplaintQuery struct {
	ComplaintID   uint
	RequesterID   uint
	RequesterRole authorization.Role
}

// GetComplaintUseCase loads a single complaint projection.
type GetComplaintUseCase struct {
	complaintRepo complaint.Repository
	userRepo      user.Repository
	deptRepo      user.DepartmentRepository
	assembler     *dto.Assembler
	logger        logger.Interface
}

func NewGetComplaintUseCase(
	complaintRepo complaint.Repository,
	userRepo user.Repository,
	deptRepo user.DepartmentRepository,
	assembler *dto.Assembler,
	logger logger.Interface,
) *GetComplaintUseCase {
	return &GetComplaintUseCase{
		complaintRepo: complaintRepo,
		userRepo:      userRepo,
		deptRepo:      deptRepo,
		assembler:     assembler,
		logger:        logger,
	}
}

func (uc *GetComplaintUseCase) Execute(ctx context.Context, query GetComplaintQuery) (*dto.ComplaintView, error) {
	if query.ComplaintID == 0 {
		return nil, errors.NewValidationError("complaint ID is required")
	}

	c, err := uc.complaintRepo.GetByID(ctx, query.ComplaintID)
	if err != nil {
		uc.logger.Errorw("failed to find complaint", "error", err, "complaint_id", query.ComplaintID)
		return nil, err
	}

	if !canViewComplaint(c, query.RequesterID, query.RequesterRole) {
		return nil, errors.NewForbiddenError("you do not have access to this complaint")
	}

	return projectComplaint(ctx, uc.complaintRepo, uc.userRepo, uc.deptRepo, uc.assembler, c)
}

// canViewComplaint limits single-complaint reads to the filer, the faculty
// member it is assigned to, and admins.
func canViewComplaint(c *complaint.Complaint, requesterID uint, role authorization.Role) bool {
	if role == authorization.RoleAdmin {
		return true
	}
	if c.StudentID() == requesterID {
		return true
	}
	if assigned := c.AssignedFacultyID(); assigned != nil && *assigned == requesterID {
		return true
	}
	return false
}
