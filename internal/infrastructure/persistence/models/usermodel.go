package models

type UserModel struct {
	ID           uint    `gorm:"primaryKey"`
	FullName     string  `gorm:"size:255;not null"`
	Email        string  `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string  `gorm:"size:255;not null"`
	Role         string  `gorm:"size:20;not null;index"`
	RollNo       *string `gorm:"size:50;index"`
	DepartmentID *uint
	Year         *int
	PhoneNo      *string `gorm:"size:20"`
	CreatedAt    int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64   `gorm:"autoUpdateTime:milli;not null"`
}

func (UserModel) TableName() string {
	return "users"
}

type DepartmentModel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;size:255;not null"`
}

func (DepartmentModel) TableName() string {
	return "departments"
}
