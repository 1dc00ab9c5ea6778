package mappers

import (
	"time"

	"campusguard/internal/domain/complaint"
	vo "campusguard/internal/domain/complaint/valueobjects"
	"campusguard/internal/infrastructure/persistence/models"
)

// ComplaintMapper handles the conversion between complaint domain entities
// and persistence models. The status column stores an operator-configured
// row id, so the repository resolves names to ids through the lookup cache
// and passes them in.
type ComplaintMapper interface {
	ToModel(c *complaint.Complaint, statusID uint) *models.ComplaintModel
	ToDomain(model *models.ComplaintModel, status vo.Status) (*complaint.Complaint, error)

	AccusedToModel(a *complaint.AccusedParty) *models.AccusedPartyModel
	AccusedToDomain(model *models.AccusedPartyModel) (*complaint.AccusedParty, error)

	EvidenceToModel(e *complaint.Evidence) *models.EvidenceModel
	EvidenceToDomain(model *models.EvidenceModel) (*complaint.Evidence, error)

	LogToModel(l *complaint.LogEntry) *models.ComplaintLogModel
	LogToDomain(model *models.ComplaintLogModel) (*complaint.LogEntry, error)
}

type ComplaintMapperImpl struct{}

func NewComplaintMapper() ComplaintMapper {
	return &ComplaintMapperImpl{}
}

func (m *ComplaintMapperImpl) ToModel(c *complaint.Complaint, statusID uint) *models.ComplaintModel {
	model := &models.ComplaintModel{
		ID:                c.ID(),
		Title:             c.Title(),
		Description:       c.Description(),
		SeverityID:        c.SeverityID(),
		Location:          c.Location(),
		StudentID:         c.StudentID(),
		StatusID:          statusID,
		AssignedFacultyID: c.AssignedFacultyID(),
		IsAnonymous:       c.IsAnonymous(),
		FinalRemark:       c.FinalRemark(),
		CreatedAt:         c.CreatedAt().UnixMilli(),
		UpdatedAt:         c.UpdatedAt().UnixMilli(),
	}

	if c.IncidentDate() != nil {
		incident := c.IncidentDate().UnixMilli()
		model.IncidentDate = &incident
	}

	return model
}

func (m *ComplaintMapperImpl) ToDomain(model *models.ComplaintModel, status vo.Status) (*complaint.Complaint, error) {
	var incidentDate *time.Time
	if model.IncidentDate != nil {
		t := time.UnixMilli(*model.IncidentDate).UTC()
		incidentDate = &t
	}

	return complaint.ReconstructComplaint(
		model.ID,
		model.Title,
		model.Description,
		model.SeverityID,
		model.Location,
		incidentDate,
		model.StudentID,
		status,
		model.AssignedFacultyID,
		model.IsAnonymous,
		model.FinalRemark,
		time.UnixMilli(model.CreatedAt).UTC(),
		time.UnixMilli(model.UpdatedAt).UTC(),
	)
}

func (m *ComplaintMapperImpl) AccusedToModel(a *complaint.AccusedParty) *models.AccusedPartyModel {
	return &models.AccusedPartyModel{
		ID:           a.ID(),
		ComplaintID:  a.ComplaintID(),
		UserID:       a.UserID(),
		AccusedName:  a.AccusedName(),
		DepartmentID: a.DepartmentID(),
	}
}

func (m *ComplaintMapperImpl) AccusedToDomain(model *models.AccusedPartyModel) (*complaint.AccusedParty, error) {
	return complaint.ReconstructAccusedParty(
		model.ID,
		model.ComplaintID,
		model.UserID,
		model.AccusedName,
		model.DepartmentID,
	)
}

func (m *ComplaintMapperImpl) EvidenceToModel(e *complaint.Evidence) *models.EvidenceModel {
	return &models.EvidenceModel{
		ID:          e.ID(),
		ComplaintID: e.ComplaintID(),
		FileURL:     e.FileURL(),
		FileType:    e.FileType(),
		UploadedAt:  e.UploadedAt().UnixMilli(),
	}
}

func (m *ComplaintMapperImpl) EvidenceToDomain(model *models.EvidenceModel) (*complaint.Evidence, error) {
	return complaint.ReconstructEvidence(
		model.ID,
		model.ComplaintID,
		model.FileURL,
		model.FileType,
		time.UnixMilli(model.UploadedAt).UTC(),
	)
}

func (m *ComplaintMapperImpl) LogToModel(l *complaint.LogEntry) *models.ComplaintLogModel {
	return &models.ComplaintLogModel{
		ID:                l.ID(),
		ComplaintID:       l.ComplaintID(),
		ActionByUserID:    l.ActionByUserID(),
		ActionDescription: l.Description(),
		CreatedAt:         l.CreatedAt().UnixMilli(),
	}
}

func (m *ComplaintMapperImpl) LogToDomain(model *models.ComplaintLogModel) (*complaint.LogEntry, error) {
	return complaint.ReconstructLogEntry(
		model.ID,
		model.ComplaintID,
		model.ActionByUserID,
		model.ActionDescription,
		time.UnixMilli(model.CreatedAt).UTC(),
	)
}
