package user

import "context"

// Repository defines the interface for user data operations
type Repository interface {
	Create(ctx context.Context, user *User) error

	GetByID(ctx context.Context, id uint) (*User, error)

	// GetByIDs retrieves multiple users by ID, for resolving accused and
	// filer profiles in one round trip.
	GetByIDs(ctx context.Context, ids []uint) ([]*User, error)

	GetByEmail(ctx context.Context, email string) (*User, error)

	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// SearchStudents matches students by case-insensitive name fragment or
	// exact roll number. Either filter may be empty, not both.
	SearchStudents(ctx context.Context, nameQuery, rollNo string) ([]*User, error)
}

// Department is an operator-seeded organizational unit, referenced by
// users and accused parties.
type Department struct {
	ID   uint
	Name string
}

// DepartmentRepository resolves department rows for display.
type DepartmentRepository interface {
	GetByIDs(ctx context.Context, ids []uint) (map[uint]Department, error)
}
