package usecases

import (
	"context"

	"campusguard/internal/domain/user"
	"campusguard/internal/shared/authorization"
	"campusguard/internal/shared/logger"
)

type mockUserRepository struct {
	CreateFunc         func(ctx context.Context, u *user.User) error
	GetByIDFunc        func(ctx context.Context, id uint) (*user.User, error)
	GetByIDsFunc       func(ctx context.Context, ids []uint) ([]*user.User, error)
	GetByEmailFunc     func(ctx context.Context, email string) (*user.User, error)
	ExistsByEmailFunc  func(ctx context.Context, email string) (bool, error)
	SearchStudentsFunc func(ctx context.Context, nameQuery, rollNo string) ([]*user.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

func (m *mockUserRepository) SearchStudents(ctx context.Context, nameQuery, rollNo string) ([]*user.User, error) {
	if m.SearchStudentsFunc != nil {
		return m.SearchStudentsFunc(ctx, nameQuery, rollNo)
	}
	return nil, nil
}

type mockPasswordHasher struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(password, hash string) error
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *mockPasswordHasher) Verify(password, hash string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(password, hash)
	}
	return nil
}

type mockTokenIssuer struct {
	GenerateFunc func(userID uint, role authorization.Role) (string, error)
}

func (m *mockTokenIssuer) Generate(userID uint, role authorization.Role) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, role)
	}
	return "token", nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                       {}
func (m *mockLogger) Info(msg string, args ...any)                        {}
func (m *mockLogger) Warn(msg string, args ...any)                        {}
func (m *mockLogger) Error(msg string, args ...any)                       {}
func (m *mockLogger) With(args ...any) logger.Interface                   { return m }
func (m *mockLogger) Named(name string) logger.Interface                  { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{})     {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})      {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})      {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{})     {}
