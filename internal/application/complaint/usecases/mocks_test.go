package usecases

import (
	"context"

	"campusguard/internal/domain/complaint"
	vo "campusguard/internal/domain/complaint/valueobjects"
	"campusguard/internal/domain/user"
	"campusguard/internal/shared/logger"
)

type mockComplaintRepository struct {
	SaveFunc         func(ctx context.Context, c *complaint.Complaint) error
	UpdateFunc       func(ctx context.Context, c *complaint.Complaint) error
	GetByIDFunc      func(ctx context.Context, id uint) (*complaint.Complaint, error)
	ListAssignedFunc func(ctx context.Context, facultyID uint) ([]*complaint.Complaint, error)
	SaveAccusedFunc  func(ctx context.Context, a *complaint.AccusedParty) error
	ListAccusedFunc  func(ctx context.Context, complaintID uint) ([]*complaint.AccusedParty, error)
	SaveEvidenceFunc func(ctx context.Context, e *complaint.Evidence) error
	ListEvidenceFunc func(ctx context.Context, complaintID uint) ([]*complaint.Evidence, error)
	AppendLogFunc    func(ctx context.Context, entry *complaint.LogEntry) error
	ListLogsFunc     func(ctx context.Context, complaintID uint) ([]*complaint.LogEntry, error)
}

func (m *mockComplaintRepository) Save(ctx context.Context, c *complaint.Complaint) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockComplaintRepository) Update(ctx context.Context, c *complaint.Complaint) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockComplaintRepository) GetByID(ctx context.Context, id uint) (*complaint.Complaint, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockComplaintRepository) ListAssigned(ctx context.Context, facultyID uint) ([]*complaint.Complaint, error) {
	if m.ListAssignedFunc != nil {
		return m.ListAssignedFunc(ctx, facultyID)
	}
	return nil, nil
}

func (m *mockComplaintRepository) SaveAccused(ctx context.Context, a *complaint.AccusedParty) error {
	if m.SaveAccusedFunc != nil {
		return m.SaveAccusedFunc(ctx, a)
	}
	return nil
}

func (m *mockComplaintRepository) ListAccused(ctx context.Context, complaintID uint) ([]*complaint.AccusedParty, error) {
	if m.ListAccusedFunc != nil {
		return m.ListAccusedFunc(ctx, complaintID)
	}
	return nil, nil
}

func (m *mockComplaintRepository) SaveEvidence(ctx context.Context, e *complaint.Evidence) error {
	if m.SaveEvidenceFunc != nil {
		return m.SaveEvidenceFunc(ctx, e)
	}
	return nil
}

func (m *mockComplaintRepository) ListEvidence(ctx context.Context, complaintID uint) ([]*complaint.Evidence, error) {
	if m.ListEvidenceFunc != nil {
		return m.ListEvidenceFunc(ctx, complaintID)
	}
	return nil, nil
}

func (m *mockComplaintRepository) AppendLog(ctx context.Context, entry *complaint.LogEntry) error {
	if m.AppendLogFunc != nil {
		return m.AppendLogFunc(ctx, entry)
	}
	return nil
}

func (m *mockComplaintRepository) ListLogs(ctx context.Context, complaintID uint) ([]*complaint.LogEntry, error) {
	if m.ListLogsFunc != nil {
		return m.ListLogsFunc(ctx, complaintID)
	}
	return nil, nil
}

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

type mockDepartmentRepository struct {
	GetByIDsFunc func(ctx context.Context, ids []uint) (map[uint]user.Department, error)
}

func (m *mockDepartmentRepository) GetByIDs(ctx context.Context, ids []uint) (map[uint]user.Department, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	return map[uint]user.Department{}, nil
}

type mockStatusLookup struct {
	StatusIDFunc     func(status vo.Status) (uint, error)
	StatusNameFunc   func(id uint) (string, bool)
	SeverityIDFunc   func(name string) (uint, bool)
	SeverityNameFunc func(id uint) (string, bool)
}

func (m *mockStatusLookup) StatusID(status vo.Status) (uint, error) {
	if m.StatusIDFunc != nil {
		return m.StatusIDFunc(status)
	}
	return 1, nil
}

func (m *mockStatusLookup) StatusName(id uint) (string, bool) {
	if m.StatusNameFunc != nil {
		return m.StatusNameFunc(id)
	}
	return "", false
}

func (m *mockStatusLookup) SeverityID(name string) (uint, bool) {
	if m.SeverityIDFunc != nil {
		return m.SeverityIDFunc(name)
	}
	return 1, true
}

func (m *mockStatusLookup) SeverityName(id uint) (string, bool) {
	if m.SeverityNameFunc != nil {
		return m.SeverityNameFunc(id)
	}
	return "", false
}

type mockBlobStore struct {
	PutFunc func(ctx context.Context, name string, data []byte, contentType string) (string, error)
}

func (m *mockBlobStore) Put(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	if m.PutFunc != nil {
		return m.PutFunc(ctx, name, data, contentType)
	}
	return "", nil
}

// mockTxRunner invokes the callback directly with the same context.
type mockTxRunner struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockLogger struct {
	DebugFunc  func(msg string, args ...any)
	InfoFunc   func(msg string, args ...any)
	WarnFunc   func(msg string, args ...any)
	ErrorFunc  func(msg string, args ...any)
	InfowFunc  func(msg string, keysAndValues ...interface{})
	ErrorwFunc func(msg string, keysAndValues ...interface{})
	WarnwFunc  func(msg string, keysAndValues ...interface{})
	DebugwFunc func(msg string, keysAndValues ...interface{})
}

func (m *mockLogger) Debug(msg string, args ...any) {
	if m.DebugFunc != nil {
		m.DebugFunc(msg, args...)
	}
}

func (m *mockLogger) Info(msg string, args ...any) {
	if m.InfoFunc != nil {
		m.InfoFunc(msg, args...)
	}
}

func (m *mockLogger) Warn(msg string, args ...any) {
	if m.WarnFunc != nil {
		m.WarnFunc(msg, args...)
	}
}

func (m *mockLogger) Error(msg string, args ...any) {
	if m.ErrorFunc != nil {
		m.ErrorFunc(msg, args...)
	}
}

func (m *mockLogger) With(args ...any) logger.Interface {
	return m
}

func (m *mockLogger) Named(name string) logger.Interface {
	return m
}

func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {
	if m.InfowFunc != nil {
		m.InfowFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {
	if m.ErrorwFunc != nil {
		m.ErrorwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {
	if m.WarnwFunc != nil {
		m.WarnwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {
	if m.DebugwFunc != nil {
		m.DebugwFunc(msg, keysAndValues...)
	}
}
