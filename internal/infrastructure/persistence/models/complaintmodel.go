package models

type ComplaintModel struct {
	ID                uint   `gorm:"primaryKey"`
	Title             string `gorm:"size:200;not null"`
	Description       string `gorm:"type:text;not null"`
	SeverityID        uint   `gorm:"not null;index"`
	Location          *string `gorm:"size:255"`
	IncidentDate      *int64
	StudentID         uint `gorm:"not null;index"`
	StatusID          uint `gorm:"not null;index"`
	AssignedFacultyID *uint `gorm:"index"`
	IsAnonymous       bool  `gorm:"not null;default:false"`
	FinalRemark       *string `gorm:"type:text"`
	CreatedAt         int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt         int64 `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (ComplaintModel) TableName() string {
	return "complaints"
}

type AccusedPartyModel struct {
	ID           uint    `gorm:"primaryKey"`
	ComplaintID  uint    `gorm:"not null;index"`
	UserID       *uint   `gorm:"index"`
	AccusedName  *string `gorm:"size:255"`
	DepartmentID *uint
}

func (AccusedPartyModel) TableName() string {
	return "complaint_accused"
}

type EvidenceModel struct {
	ID          uint   `gorm:"primaryKey"`
	ComplaintID uint   `gorm:"not null;index"`
	FileURL     string `gorm:"size:512;not null"`
	FileType    string `gorm:"size:100"`
	UploadedAt  int64  `gorm:"autoCreateTime:milli;not null"`
}

func (EvidenceModel) TableName() string {
	return "evidence"
}

type ComplaintLogModel struct {
	ID                uint   `gorm:"primaryKey"`
	ComplaintID       uint   `gorm:"not null;index"`
	ActionByUserID    uint   `gorm:"not null;index"`
	ActionDescription string `gorm:"size:512;not null"`
	CreatedAt         int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (ComplaintLogModel) TableName() string {
	return "complaint_logs"
}
