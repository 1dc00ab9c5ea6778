package dto

import "time"

// ComplaintView is the projection served to faculty and admin readers.
// StudentInfo is nil for anonymous complaints regardless of caller role.
type ComplaintView struct {
	ID           uint          `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Severity     string        `json:"severity"`
	Status       string        `json:"status"`
	Location     *string       `json:"location"`
	IncidentDate *time.Time    `json:"incident_date"`
	IsAnonymous  bool          `json:"is_anonymous"`
	StudentInfo  *UserSummary  `json:"student_info"`
	AssignedTo   *uint         `json:"assigned_faculty_id"`
	FinalRemark  *string       `json:"final_remark"`
	Accused      []AccusedView `json:"accused"`
	Evidence     []EvidenceView `json:"evidence"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// UserSummary is the public slice of a user profile embedded in views.
type UserSummary struct {
	UserID       uint    `json:"user_id"`
	FullName     string  `json:"full_name"`
	RollNo       *string `json:"roll_no"`
	DepartmentID *uint   `json:"department_id"`
	Department   *string `json:"department"`
	Year         *int    `json:"year"`
}

// AccusedView renders one accused party. When the accused is a linked
// platform user, the profile fields come from the user record and take
// precedence over any stored free text; otherwise Name carries the
// free-text fallback and RollNo stays null.
type AccusedView struct {
	ID           uint    `json:"id"`
	UserID       *uint   `json:"user_id"`
	Name         string  `json:"name"`
	RollNo       *string `json:"roll_no"`
	DepartmentID *uint   `json:"department_id"`
	Department   *string `json:"department"`
}

type EvidenceView struct {
	ID         uint      `json:"id"`
	FileURL    string    `json:"file_url"`
	FileType   string    `json:"file_type"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type LogView struct {
	ID          uint      `json:"id"`
	ActionBy    uint      `json:"action_by_user_id"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
