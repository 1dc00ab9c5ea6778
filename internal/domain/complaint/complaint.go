package complaint

import (
	"fmt"
	"time"

	vo "campusguard/internal/domain/complaint/valueobjects"
	"campusguard/internal/shared/biztime"
)

type Complaint struct {
	id               uint
	title            string
	description      string
	severityID       uint
	location         *string
	incidentDate     *time.Time
	studentID        uint
	status           vo.Status
	assignedFaculty  *uint
	isAnonymous      bool
	finalRemark      *string
	createdAt        time.Time
	updatedAt        time.Time
}

func NewComplaint(
	title string,
	description string,
	severityID uint,
	location *string,
	incidentDate *time.Time,
	studentID uint,
	isAnonymous bool,
) (*Complaint, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	if severityID == 0 {
		return nil, fmt.Errorf("severity is required")
	}
	if studentID == 0 {
		return nil, fmt.Errorf("student ID is required")
	}

	now := biztime.NowUTC()
	return &Complaint{
		title:        title,
		description:  description,
		severityID:   severityID,
		location:     location,
		incidentDate: incidentDate,
		studentID:    studentID,
		status:       vo.StatusOpen,
		isAnonymous:  isAnonymous,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructComplaint(
	id uint,
	title string,
	description string,
	severityID uint,
	location *string,
	incidentDate *time.Time,
	studentID uint,
	status vo.Status,
	assignedFaculty *uint,
	isAnonymous bool,
	finalRemark *string,
	createdAt, updatedAt time.Time,
) (*Complaint, error) {
	if id == 0 {
		return nil, fmt.Errorf("complaint ID cannot be zero")
	}
	if studentID == 0 {
		return nil, fmt.Errorf("student ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &Complaint{
		id:              id,
		title:           title,
		description:     description,
		severityID:      severityID,
		location:        location,
		incidentDate:    incidentDate,
		studentID:       studentID,
		status:          status,
		assignedFaculty: assignedFaculty,
		isAnonymous:     isAnonymous,
		finalRemark:     finalRemark,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (c *Complaint) ID() uint {
	return c.id
}

func (c *Complaint) Title() string {
	return c.title
}

func (c *Complaint) Description() string {
	return c.description
}

func (c *Complaint) SeverityID() uint {
	return c.severityID
}

func (c *Complaint) Location() *string {
	return c.location
}

func (c *Complaint) IncidentDate() *time.Time {
	return c.incidentDate
}

func (c *Complaint) StudentID() uint {
	return c.studentID
}

func (c *Complaint) Status() vo.Status {
	return c.status
}

func (c *Complaint) AssignedFacultyID() *uint {
	return c.assignedFaculty
}

func (c *Complaint) IsAnonymous() bool {
	return c.isAnonymous
}

func (c *Complaint) FinalRemark() *string {
	return c.finalRemark
}

func (c *Complaint) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Complaint) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Complaint) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("complaint ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("complaint ID cannot be zero")
	}
	c.id = id
	return nil
}

// AssignTo routes the complaint to a faculty reviewer and moves it to
// UNDER_REVIEW. Reassignment of an already-assigned complaint is permitted
// and simply overwrites the assignment. Terminal complaints cannot be
// assigned.
func (c *Complaint) AssignTo(facultyID uint) error {
	if facultyID == 0 {
		return fmt.Errorf("faculty ID cannot be zero")
	}
	if !c.status.CanTransitionTo(vo.StatusUnderReview) {
		return fmt.Errorf("cannot assign complaint with status %s", c.status)
	}

	c.assignedFaculty = &facultyID
	c.status = vo.StatusUnderReview
	c.updatedAt = biztime.NowUTC()

	return nil
}

// CanAttachEvidenceBy reports whether userID may append evidence. Only the
// original filer may, regardless of role.
func (c *Complaint) CanAttachEvidenceBy(userID uint) bool {
	return c.studentID == userID
}

// CreationLogDescription is the audit text recorded alongside the initial
// insert. It never includes the filer's identity for anonymous complaints.
func (c *Complaint) CreationLogDescription() string {
	if c.isAnonymous {
		return "Anonymous complaint created"
	}
	return "Complaint created"
}
