package models

// Status and severity rows are operator-configured data seeded by the
// migrate command, not compile-time constants.

type ComplaintStatusModel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;size:50;not null"`
}

func (ComplaintStatusModel) TableName() string {
	return "complaint_statuses"
}

type SeverityLevelModel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;size:50;not null"`
}

func (SeverityLevelModel) TableName() string {
	return "severity_levels"
}
