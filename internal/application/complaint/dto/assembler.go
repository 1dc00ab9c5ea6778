package dto

import (
	"campusguard/internal/domain/complaint"
	"campusguard/internal/domain/user"
)

// Assembler projects complaint aggregates into read views. It is a pure
// translation layer: all records it renders are loaded by the caller.
type Assembler struct {
	lookup complaint.StatusLookup
}

func NewAssembler(lookup complaint.StatusLookup) *Assembler {
	return &Assembler{lookup: lookup}
}

// ToComplaintView builds the full projection. users maps user IDs (filer
// and linked accused) to their records; departments maps department IDs to
// their rows. Missing entries degrade to null fields, never errors.
func (a *Assembler) ToComplaintView(
	c *complaint.Complaint,
	accused []*complaint.AccusedParty,
	evidence []*complaint.Evidence,
	users map[uint]*user.User,
	departments map[uint]user.Department,
) *ComplaintView {
	if c == nil {
		return nil
	}

	view := &ComplaintView{
		ID:           c.ID(),
		Title:        c.Title(),
		Description:  c.Description(),
		Severity:     a.severityName(c.SeverityID()),
		Status:       c.Status().String(),
		Location:     c.Location(),
		IncidentDate: c.IncidentDate(),
		IsAnonymous:  c.IsAnonymous(),
		AssignedTo:   c.AssignedFacultyID(),
		FinalRemark:  c.FinalRemark(),
		Accused:      make([]AccusedView, 0, len(accused)),
		Evidence:     make([]EvidenceView, 0, len(evidence)),
		CreatedAt:    c.CreatedAt(),
		UpdatedAt:    c.UpdatedAt(),
	}

	if !c.IsAnonymous() {
		if filer, ok := users[c.StudentID()]; ok {
			view.StudentInfo = a.toUserSummary(filer, departments)
		}
	}

	for _, party := range accused {
		view.Accused = append(view.Accused, a.toAccusedView(party, users, departments))
	}

	for _, e := range evidence {
		view.Evidence = append(view.Evidence, EvidenceView{
			ID:         e.ID(),
			FileURL:    e.FileURL(),
			FileType:   e.FileType(),
			UploadedAt: e.UploadedAt(),
		})
	}

	return view
}

func (a *Assembler) toUserSummary(u *user.User, departments map[uint]user.Department) *UserSummary {
	summary := &UserSummary{
		UserID:       u.ID(),
		FullName:     u.FullName(),
		RollNo:       u.RollNo(),
		DepartmentID: u.DepartmentID(),
		Year:         u.Year(),
	}
	if u.DepartmentID() != nil {
		if dept, ok := departments[*u.DepartmentID()]; ok {
			summary.Department = &dept.Name
		}
	}
	return summary
}

// toAccusedView applies the identity precedence rule: a linked user's
// profile wins over stored free text.
func (a *Assembler) toAccusedView(
	party *complaint.AccusedParty,
	users map[uint]*user.User,
	departments map[uint]user.Department,
) AccusedView {
	view := AccusedView{
		ID:     party.ID(),
		UserID: party.UserID(),
	}

	if party.UserID() != nil {
		if linked, ok := users[*party.UserID()]; ok {
			view.Name = linked.FullName()
			view.RollNo = linked.RollNo()
			view.DepartmentID = linked.DepartmentID()
			if linked.DepartmentID() != nil {
				if dept, ok := departments[*linked.DepartmentID()]; ok {
					view.Department = &dept.Name
				}
			}
			return view
		}
	}

	if party.AccusedName() != nil {
		view.Name = *party.AccusedName()
	}
	view.DepartmentID = party.DepartmentID()
	if party.DepartmentID() != nil {
		if dept, ok := departments[*party.DepartmentID()]; ok {
			view.Department = &dept.Name
		}
	}
	return view
}

// ToLogViews renders the audit trail.
func (a *Assembler) ToLogViews(entries []*complaint.LogEntry) []LogView {
	views := make([]LogView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, LogView{
			ID:          entry.ID(),
			ActionBy:    entry.ActionByUserID(),
			Description: entry.Description(),
			CreatedAt:   entry.CreatedAt(),
		})
	}
	return views
}

func (a *Assembler) severityName(id uint) string {
	if name, ok := a.lookup.SeverityName(id); ok {
		return name
	}
	return ""
}
