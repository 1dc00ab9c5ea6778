package usecases

import (
	"context"

	"campusguard/internal/shared/authorization"
)

// PasswordHasher hashes and verifies login credentials. Satisfied by the
// bcrypt hasher in infrastructure/auth.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// TokenIssuer mints signed access tokens carrying the user's identity and
// role claims.
type TokenIssuer interface {
	Generate(userID uint, role authorization.Role) (string, error)
}

type RegisterExecutor interface {
	Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type SearchStudentsExecutor interface {
	Execute(ctx context.Context, query SearchStudentsQuery) ([]StudentSummary, error)
}
