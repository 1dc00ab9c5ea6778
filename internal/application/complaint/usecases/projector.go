package usecases

import (
	"context"

	"campusguard/internal/application/complaint/dto"
	"campusguard/internal/domain/complaint"
	"campusguard/internal/domain/user"
)

// projectComplaint loads the accused, evidence, referenced user profiles,
// and department names for one complaint, then runs the assembler. The
// filer's profile is loaded only for non-anonymous complaints, so redacted
// identities never travel past the repository.
func projectComplaint(
	ctx context.Context,
	complaintRepo complaint.Repository,
	userRepo user.Repository,
	deptRepo user.DepartmentRepository,
	assembler *dto.Assembler,
	c *complaint.Complaint,
) (*dto.ComplaintView, error) {
	accused, err := complaintRepo.ListAccused(ctx, c.ID())
	if err != nil {
		return nil, err
	}

	evidence, err := complaintRepo.ListEvidence(ctx, c.ID())
	if err != nil {
		return nil, err
	}

	userIDs := make([]uint, 0, len(accused)+1)
	if !c.IsAnonymous() {
		userIDs = append(userIDs, c.StudentID())
	}
	for _, party := range accused {
		if party.UserID() != nil {
			userIDs = append(userIDs, *party.UserID())
		}
	}

	users := make(map[uint]*user.User, len(userIDs))
	if len(userIDs) > 0 {
		loaded, err := userRepo.GetByIDs(ctx, userIDs)
		if err != nil {
			return nil, err
		}
		for _, u := range loaded {
			users[u.ID()] = u
		}
	}

	deptIDs := make([]uint, 0, len(users)+len(accused))
	for _, u := range users {
		if u.DepartmentID() != nil {
			deptIDs = append(deptIDs, *u.DepartmentID())
		}
	}
	for _, party := range accused {
		if party.DepartmentID() != nil {
			deptIDs = append(deptIDs, *party.DepartmentID())
		}
	}

	departments := make(map[uint]user.Department)
	if len(deptIDs) > 0 {
		departments, err = deptRepo.GetByIDs(ctx, deptIDs)
		if err != nil {
			return nil, err
		}
	}

	return assembler.ToComplaintView(c, accused, evidence, users, departments), nil
}
