package complaint

import (
	"time"

	"campusguard/internal/application/complaint/usecases"
	"campusguard/internal/shared/biztime"
	"campusguard/internal/shared/errors"
)

type AccusedEntry struct {
	UserID       *uint   `json:"user_id,omitempty"`
	Name         *string `json:"name,omitempty"`
	DepartmentID *uint   `json:"department_id,omitempty"`
}

type CreateComplaintRequest struct {
	Title        string         `json:"title" binding:"required,max=200"`
	Description  string         `json:"description" binding:"required,max=5000"`
	Severity     string         `json:"severity" binding:"required"`
	Location     *string        `json:"location,omitempty"`
	IncidentDate *string        `json:"incident_date,omitempty"`
	IsAnonymous  bool           `json:"is_anonymous"`
	// An empty accused list is accepted: the complaint is filed and the
	// parties can surface later through evidence or review.
	Accused []AccusedEntry `json:"accused" binding:"omitempty,dive"`
}

func (r *CreateComplaintRequest) ToCommand(studentID uint) (usecases.CreateComplaintCommand, error) {
	var incidentDate *time.Time
	if r.IncidentDate != nil && *r.IncidentDate != "" {
		parsed, err := biztime.ParseDateUTC(*r.IncidentDate)
		if err != nil {
			return usecases.CreateComplaintCommand{}, errors.NewValidationError("incident_date must be YYYY-MM-DD")
		}
		incidentDate = &parsed
	}

	accused := make([]usecases.AccusedInput, 0, len(r.Accused))
	for _, entry := range r.Accused {
		accused = append(accused, usecases.AccusedInput{
			UserID:       entry.UserID,
			Name:         entry.Name,
			DepartmentID: entry.DepartmentID,
		})
	}

	return usecases.CreateComplaintCommand{
		Title:        r.Title,
		Description:  r.Description,
		Severity:     r.Severity,
		Location:     r.Location,
		IncidentDate: incidentDate,
		StudentID:    studentID,
		IsAnonymous:  r.IsAnonymous,
		Accused:      accused,
	}, nil
}

type AssignFacultyRequest struct {
	FacultyID uint `json:"faculty_id" binding:"required"`
}
