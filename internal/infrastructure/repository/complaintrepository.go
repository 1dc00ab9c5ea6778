package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"campusguard/internal/domain/complaint"
	vo "campusguard/internal/domain/complaint/valueobjects"
	"campusguard/internal/infrastructure/persistence/mappers"
	"campusguard/internal/infrastructure/persistence/models"
	"campusguard/internal/shared/db"
	apperrors "campusguard/internal/shared/errors"
)

type ComplaintRepository struct {
	db     *gorm.DB
	mapper mappers.ComplaintMapper
	lookup complaint.StatusLookup
}

func NewComplaintRepository(database *gorm.DB, lookup complaint.StatusLookup) *ComplaintRepository {
	return &ComplaintRepository{
		db:     database,
		mapper: mappers.NewComplaintMapper(),
		lookup: lookup,
	}
}

func (r *ComplaintRepository) Save(ctx context.Context, c *complaint.Complaint) error {
	statusID, err := r.lookup.StatusID(c.Status())
	if err != nil {
		return err
	}

	model := r.mapper.ToModel(c, statusID)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save complaint: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *ComplaintRepository) Update(ctx context.Context, c *complaint.Complaint) error {
	statusID, err := r.lookup.StatusID(c.Status())
	if err != nil {
		return err
	}

	model := r.mapper.ToModel(c, statusID)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ComplaintModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"status_id":           model.StatusID,
			"assigned_faculty_id": model.AssignedFacultyID,
			"final_remark":        model.FinalRemark,
			"updated_at":          model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update complaint: %w", result.Error)
	}

	return nil
}

func (r *ComplaintRepository) GetByID(ctx context.Context, id uint) (*complaint.Complaint, error) {
	var model models.ComplaintModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("complaint not found")
		}
		return nil, fmt.Errorf("failed to find complaint: %w", err)
	}

	return r.toDomain(&model)
}

func (r *ComplaintRepository) ListAssigned(ctx context.Context, facultyID uint) ([]*complaint.Complaint, error) {
	var rows []models.ComplaintModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("assigned_faculty_id = ?", facultyID).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list assigned complaints: %w", err)
	}

	complaints := make([]*complaint.Complaint, 0, len(rows))
	for i := range rows {
		c, err := r.toDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		complaints = append(complaints, c)
	}

	return complaints, nil
}

func (r *ComplaintRepository) SaveAccused(ctx context.Context, a *complaint.AccusedParty) error {
	model := r.mapper.AccusedToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save accused party: %w", err)
	}

	return nil
}

func (r *ComplaintRepository) ListAccused(ctx context.Context, complaintID uint) ([]*complaint.AccusedParty, error) {
	var rows []models.AccusedPartyModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("complaint_id = ?", complaintID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list accused parties: %w", err)
	}

	accused := make([]*complaint.AccusedParty, 0, len(rows))
	for i := range rows {
		a, err := r.mapper.AccusedToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		accused = append(accused, a)
	}

	return accused, nil
}

func (r *ComplaintRepository) SaveEvidence(ctx context.Context, e *complaint.Evidence) error {
	model := r.mapper.EvidenceToModel(e)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save evidence: %w", err)
	}

	return nil
}

func (r *ComplaintRepository) ListEvidence(ctx context.Context, complaintID uint) ([]*complaint.Evidence, error) {
	var rows []models.EvidenceModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("complaint_id = ?", complaintID).
		Order("uploaded_at ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list evidence: %w", err)
	}

	evidence := make([]*complaint.Evidence, 0, len(rows))
	for i := range rows {
		e, err := r.mapper.EvidenceToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		evidence = append(evidence, e)
	}

	return evidence, nil
}

func (r *ComplaintRepository) AppendLog(ctx context.Context, entry *complaint.LogEntry) error {
	model := r.mapper.LogToModel(entry)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to append complaint log: %w", err)
	}

	return nil
}

func (r *ComplaintRepository) ListLogs(ctx context.Context, complaintID uint) ([]*complaint.LogEntry, error) {
	var rows []models.ComplaintLogModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("complaint_id = ?", complaintID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list complaint logs: %w", err)
	}

	logs := make([]*complaint.LogEntry, 0, len(rows))
	for i := range rows {
		l, err := r.mapper.LogToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}

	return logs, nil
}

func (r *ComplaintRepository) toDomain(model *models.ComplaintModel) (*complaint.Complaint, error) {
	statusName, ok := r.lookup.StatusName(model.StatusID)
	if !ok {
		return nil, apperrors.NewConfigurationError(
			"complaint references an unconfigured status",
			fmt.Sprintf("status_id=%d", model.StatusID),
		)
	}

	return r.mapper.ToDomain(model, vo.Status(statusName))
}
