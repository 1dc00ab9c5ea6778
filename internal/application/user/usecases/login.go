package usecases

import (
	"context"
	"strings"

	"campusguard/internal/domain/user"
	"campusguard/internal/shared/errors"
	"campusguard/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	Token    string
	UserID   uint
	FullName string
	Role     string
}

// LoginUseCase authenticates by email and password. Lookup failures and
// wrong passwords both surface as the same generic unauthorized error so
// the response never reveals whether an email is registered.
type LoginUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))

	if len(email) == 0 || len(cmd.Password) == 0 {
		return nil, errors.NewValidationError("email and password are required")
	}

	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewUnauthorizedError("invalid email or password")
		}
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, err
	}

	if err := uc.hasher.Verify(cmd.Password, existing.PasswordHash()); err != nil {
		uc.logger.Warnw("failed login attempt", "user_id", existing.ID())
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	token, err := uc.tokens.Generate(existing.ID(), existing.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate token", "error", err)
		return nil, errors.NewInternalError("failed to generate token")
	}

	uc.logger.Infow("user logged in", "user_id", existing.ID(), "role", existing.Role())

	return &LoginResult{
		Token:    token,
		UserID:   existing.ID(),
		FullName: existing.FullName(),
		Role:     string(existing.Role()),
	}, nil
}
