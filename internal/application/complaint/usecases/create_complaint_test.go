package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusguard/internal/domain/complaint"
	vo "campusguard/internal/domain/complaint/valueobjects"
	apperrors "campusguard/internal/shared/errors"
)

func uintPtr(v uint) *uint {
	return &v
}

func strPtr(v string) *string {
	return &v
}

func TestCreateComplaintUseCase_Execute_Success(t *testing.T) {
	tests := []struct {
		name    string
		command CreateComplaintCommand
	}{
		{
			name: "named complaint against linked user",
			command: CreateComplaintCommand{
				Title:       "Harassment in hostel block C",
				Description: "Repeated verbal harassment by a senior student",
				Severity:    "HIGH",
				StudentID:   1,
				Accused:     []AccusedInput{{UserID: uintPtr(7)}},
			},
		},
		{
			name: "anonymous complaint with free-text accused",
			command: CreateComplaintCommand{
				Title:       "Ragging near the canteen",
				Description: "Group of seniors forcing juniors to perform errands",
				Severity:    "CRITICAL",
				StudentID:   2,
				IsAnonymous: true,
				Accused: []AccusedInput{
					{Name: strPtr("Unknown senior, red jacket"), DepartmentID: uintPtr(3)},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var savedComplaint *complaint.Complaint
			var savedAccused []*complaint.AccusedParty
			var savedLog *complaint.LogEntry

			mockRepo := &mockComplaintRepository{
				SaveFunc: func(ctx context.Context, c *complaint.Complaint) error {
					require.NoError(t, c.SetID(100))
					savedComplaint = c
					return nil
				},
				SaveAccusedFunc: func(ctx context.Context, a *complaint.AccusedParty) error {
					savedAccused = append(savedAccused, a)
					return nil
				},
				AppendLogFunc: func(ctx context.Context, entry *complaint.LogEntry) error {
					savedLog = entry
					return nil
				},
			}
			mockLookup := &mockStatusLookup{
				SeverityIDFunc: func(name string) (uint, bool) {
					return 4, true
				},
			}

			useCase := NewCreateComplaintUseCase(mockRepo, mockLookup, &mockTxRunner{}, &mockLogger{})
			result, err := useCase.Execute(context.Background(), tt.command)

			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, uint(100), result.ComplaintID)
			assert.Equal(t, vo.StatusOpen.String(), result.Status)
			assert.Equal(t, len(tt.command.Accused), result.AccusedCount)
			assert.NotZero(t, result.CreatedAt)

			require.NotNil(t, savedComplaint)
			assert.Equal(t, tt.command.Title, savedComplaint.Title())
			assert.Equal(t, tt.command.IsAnonymous, savedComplaint.IsAnonymous())

			require.Len(t, savedAccused, len(tt.command.Accused))
			for _, a := range savedAccused {
				assert.Equal(t, uint(100), a.ComplaintID())
			}

			require.NotNil(t, savedLog)
			assert.Equal(t, uint(100), savedLog.ComplaintID())
			assert.Equal(t, tt.command.StudentID, savedLog.ActionByUserID())
			if tt.command.IsAnonymous {
				assert.Equal(t, "Anonymous complaint created", savedLog.Description())
			} else {
				assert.Equal(t, "Complaint created", savedLog.Description())
			}
		})
	}
}

func TestCreateComplaintUseCase_Execute_NoAccused(t *testing.T) {
	accusedSaved := false
	var savedLog *complaint.LogEntry

	mockRepo := &mockComplaintRepository{
		SaveFunc: func(ctx context.Context, c *complaint.Complaint) error {
			require.NoError(t, c.SetID(100))
			return nil
		},
		SaveAccusedFunc: func(ctx context.Context, a *complaint.AccusedParty) error {
			accusedSaved = true
			return nil
		},
		AppendLogFunc: func(ctx context.Context, entry *complaint.LogEntry) error {
			savedLog = entry
			return nil
		},
	}

	useCase := NewCreateComplaintUseCase(mockRepo, &mockStatusLookup{}, &mockTxRunner{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), CreateComplaintCommand{
		Title:       "Threats over messaging app",
		Description: "Screenshots attached separately, sender unknown",
		Severity:    "LOW",
		StudentID:   1,
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 0, result.AccusedCount)
	assert.False(t, accusedSaved)
	require.NotNil(t, savedLog)
}

func TestCreateComplaintUseCase_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name          string
		command       CreateComplaintCommand
		expectedError string
	}{
		{
			name: "empty title",
			command: CreateComplaintCommand{
				Description: "Some description",
				Severity:    "HIGH",
				StudentID:   1,
			},
			expectedError: "title is required",
		},
		{
			name: "title too long",
			command: CreateComplaintCommand{
				Title:       string(make([]byte, 201)),
				Description: "Some description",
				Severity:    "HIGH",
				StudentID:   1,
			},
			expectedError: "title exceeds maximum length",
		},
		{
			name: "unknown severity",
			command: CreateComplaintCommand{
				Title:       "Valid title",
				Description: "Some description",
				Severity:    "EXTREME",
				StudentID:   1,
			},
			expectedError: "unknown severity",
		},
		{
			name: "accused with neither user nor name",
			command: CreateComplaintCommand{
				Title:       "Valid title",
				Description: "Some description",
				Severity:    "HIGH",
				StudentID:   1,
				Accused:     []AccusedInput{{DepartmentID: uintPtr(1)}},
			},
			expectedError: "each accused must have a user ID or a name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockLookup := &mockStatusLookup{
				SeverityIDFunc: func(name string) (uint, bool) {
					if name == "HIGH" {
						return 3, true
					}
					return 0, false
				},
			}

			useCase := NewCreateComplaintUseCase(&mockComplaintRepository{}, mockLookup, &mockTxRunner{}, &mockLogger{})
			result, err := useCase.Execute(context.Background(), tt.command)

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, apperrors.IsValidationError(err))
			assert.Contains(t, err.Error(), tt.expectedError)
		})
	}
}

func TestCreateComplaintUseCase_Execute_SelfAccusation(t *testing.T) {
	useCase := NewCreateComplaintUseCase(&mockComplaintRepository{}, &mockStatusLookup{}, &mockTxRunner{}, &mockLogger{})

	result, err := useCase.Execute(context.Background(), CreateComplaintCommand{
		Title:       "Valid title",
		Description: "Some description",
		Severity:    "HIGH",
		StudentID:   5,
		Accused:     []AccusedInput{{UserID: uintPtr(5)}},
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsConflictError(err))
}

func TestCreateComplaintUseCase_Execute_RollbackOnChildFailure(t *testing.T) {
	saveCalled := false
	mockRepo := &mockComplaintRepository{
		SaveFunc: func(ctx context.Context, c *complaint.Complaint) error {
			saveCalled = true
			require.NoError(t, c.SetID(42))
			return nil
		},
		SaveAccusedFunc: func(ctx context.Context, a *complaint.AccusedParty) error {
			return errors.New("insert failed")
		},
	}

	var txErr error
	txRunner := &mockTxRunner{
		RunFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
			txErr = fn(ctx)
			return txErr
		},
	}

	useCase := NewCreateComplaintUseCase(mockRepo, &mockStatusLookup{}, txRunner, &mockLogger{})
	result, err := useCase.Execute(context.Background(), CreateComplaintCommand{
		Title:       "Valid title",
		Description: "Some description",
		Severity:    "HIGH",
		StudentID:   1,
		Accused:     []AccusedInput{{UserID: uintPtr(9)}},
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, saveCalled)
	assert.Error(t, txErr)
}
