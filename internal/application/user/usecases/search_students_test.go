package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusguard/internal/domain/user"
	"campusguard/internal/shared/authorization"
	"campusguard/internal/shared/biztime"
	apperrors "campusguard/internal/shared/errors"
)

func TestSearchStudentsUseCase_Execute_ByName(t *testing.T) {
	roll := "CS-101"
	now := biztime.NowUTC()
	student, err := user.ReconstructUser(
		1, "Asha Rao", "asha@campus.example", "hash",
		authorization.RoleStudent, &roll, nil, nil, nil, now, now,
	)
	require.NoError(t, err)

	mockRepo := &mockUserRepository{
		SearchStudentsFunc: func(ctx context.Context, nameQuery, rollNo string) ([]*user.User, error) {
			assert.Equal(t, "asha", nameQuery)
			assert.Empty(t, rollNo)
			return []*user.User{student}, nil
		},
	}

	useCase := NewSearchStudentsUseCase(mockRepo, &mockLogger{})
	results, err := useCase.Execute(context.Background(), SearchStudentsQuery{NameQuery: " asha "})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, uint(1), results[0].UserID)
	assert.Equal(t, "Asha Rao", results[0].FullName)
	require.NotNil(t, results[0].RollNo)
	assert.Equal(t, "CS-101", *results[0].RollNo)
}

func TestSearchStudentsUseCase_Execute_EmptyQuery(t *testing.T) {
	useCase := NewSearchStudentsUseCase(&mockUserRepository{}, &mockLogger{})

	results, err := useCase.Execute(context.Background(), SearchStudentsQuery{})

	require.Error(t, err)
	assert.Nil(t, results)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestSearchStudentsUseCase_Execute_NoMatches(t *testing.T) {
	mockRepo := &mockUserRepository{
		SearchStudentsFunc: func(ctx context.Context, nameQuery, rollNo string) ([]*user.User, error) {
			return nil, nil
		},
	}

	useCase := NewSearchStudentsUseCase(mockRepo, &mockLogger{})
	results, err := useCase.Execute(context.Background(), SearchStudentsQuery{RollNo: "ZZ-999"})

	require.NoError(t, err)
	assert.Empty(t, results)
	assert.NotNil(t, results)
}
