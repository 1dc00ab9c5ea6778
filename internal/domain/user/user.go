package user

import (
	"fmt"
	"time"

	"campusguard/internal/shared/authorization"
	"campusguard/internal/shared/biztime"
)

// User is owned by the identity subsystem and referenced, never mutated,
// by the complaint lifecycle. Role is immutable for the life of the record.
type User struct {
	id           uint
	fullName     string
	email        string
	passwordHash string
	role         authorization.Role
	rollNo       *string
	departmentID *uint
	year         *int
	phoneNo      *string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(
	fullName string,
	email string,
	passwordHash string,
	role authorization.Role,
	rollNo *string,
	departmentID *uint,
	year *int,
	phoneNo *string,
) (*User, error) {
	if len(fullName) == 0 {
		return nil, fmt.Errorf("full name is required")
	}
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := biztime.NowUTC()
	return &User{
		fullName:     fullName,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		rollNo:       rollNo,
		departmentID: departmentID,
		year:         year,
		phoneNo:      phoneNo,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(
	id uint,
	fullName string,
	email string,
	passwordHash string,
	role authorization.Role,
	rollNo *string,
	departmentID *uint,
	year *int,
	phoneNo *string,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:           id,
		fullName:     fullName,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		rollNo:       rollNo,
		departmentID: departmentID,
		year:         year,
		phoneNo:      phoneNo,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) FullName() string {
	return u.fullName
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Role() authorization.Role {
	return u.role
}

func (u *User) RollNo() *string {
	return u.rollNo
}

func (u *User) DepartmentID() *uint {
	return u.departmentID
}

func (u *User) Year() *int {
	return u.year
}

func (u *User) PhoneNo() *string {
	return u.phoneNo
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) IsFaculty() bool {
	return u.role == authorization.RoleFaculty
}

func (u *User) IsStudent() bool {
	return u.role == authorization.RoleStudent
}
