package usecases

import (
	"context"
	"strings"

	"campusguard/internal/domain/user"
	"campusguard/internal/shared/authorization"
	"campusguard/internal/shared/errors"
	"campusguard/internal/shared/logger"
)

type RegisterCommand struct {
	FullName     string
	Email        string
	Password     string
	Role         string
	RollNo       *string
	DepartmentID *uint
	Year         *int
	PhoneNo      *string
}

type RegisterResult struct {
	UserID   uint
	FullName string
	Email    string
	Role     string
}

type RegisterUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewRegisterUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error) {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))

	if err := uc.validateCommand(cmd, email); err != nil {
		uc.logger.Errorw("invalid register command", "error", err)
		return nil, err
	}

	role, _ := authorization.ParseRole(cmd.Role)

	exists, err := uc.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to check email existence", "error", err)
		return nil, err
	}
	if exists {
		return nil, errors.NewConflictError("an account with this email already exists")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to process password")
	}

	newUser, err := user.NewUser(
		cmd.FullName,
		email,
		hash,
		role,
		cmd.RollNo,
		cmd.DepartmentID,
		cmd.Year,
		cmd.PhoneNo,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, err
	}

	uc.logger.Infow("user registered successfully",
		"user_id", newUser.ID(),
		"role", newUser.Role())

	return &RegisterResult{
		UserID:   newUser.ID(),
		FullName: newUser.FullName(),
		Email:    newUser.Email(),
		Role:     string(newUser.Role()),
	}, nil
}

func (uc *RegisterUseCase) validateCommand(cmd RegisterCommand, email string) error {
	if len(cmd.FullName) == 0 {
		return errors.NewValidationError("full name is required")
	}
	if len(email) == 0 || !strings.Contains(email, "@") {
		return errors.NewValidationError("a valid email is required")
	}
	if len(cmd.Password) < 8 {
		return errors.NewValidationError("password must be at least 8 characters")
	}
	if _, ok := authorization.ParseRole(cmd.Role); !ok {
		return errors.NewValidationError("role must be STUDENT, FACULTY, or ADMIN")
	}
	return nil
}
