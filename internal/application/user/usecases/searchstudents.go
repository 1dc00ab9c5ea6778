package usecases

import (
	"context"
	"strings"

	"campusguard/internal/domain/user"
	"campusguard/internal/shared/errors"
	"campusguard/internal/shared/logger"
)

type SearchStudentsQuery struct {
	NameQuery string
	RollNo    string
}

type StudentSummary struct {
	UserID       uint    `json:"user_id"`
	FullName     string  `json:"full_name"`
	RollNo       *string `json:"roll_no"`
	DepartmentID *uint   `json:"department_id"`
	Year         *int    `json:"year"`
}

// SearchStudentsUseCase finds students to link as accused parties when
// filing a complaint. Matches by name fragment or exact roll number.
type SearchStudentsUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewSearchStudentsUseCase(userRepo user.Repository, logger logger.Interface) *SearchStudentsUseCase {
	return &SearchStudentsUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *SearchStudentsUseCase) Execute(ctx context.Context, query SearchStudentsQuery) ([]StudentSummary, error) {
	nameQuery := strings.TrimSpace(query.NameQuery)
	rollNo := strings.TrimSpace(query.RollNo)

	if nameQuery == "" && rollNo == "" {
		return nil, errors.NewValidationError("provide a name query or a roll number")
	}

	students, err := uc.userRepo.SearchStudents(ctx, nameQuery, rollNo)
	if err != nil {
		uc.logger.Errorw("failed to search students", "error", err)
		return nil, err
	}

	summaries := make([]StudentSummary, 0, len(students))
	for _, s := range students {
		summaries = append(summaries, StudentSummary{
			UserID:       s.ID(),
			FullName:     s.FullName(),
			RollNo:       s.RollNo(),
			DepartmentID: s.DepartmentID(),
			Year:         s.Year(),
		})
	}

	return summaries, nil
}
