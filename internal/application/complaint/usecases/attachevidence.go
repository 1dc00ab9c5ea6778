package usecases

import (
	"context"
	"fmt"
	"time"

	"campusguard/internal/domain/complaint"
	"campusguard/internal/shared/biztime"
	"campusguard/internal/shared/errors"
	"campusguard/internal/shared/logger"
)

type AttachEvidenceCommand struct {
	ComplaintID uint
	UserID      uint
	FileName    string
	ContentType string
	Data        []byte
}

type AttachEvidenceResult struct {
	EvidenceID uint
	FileURL    string
	UploadedAt time.Time
}

// AttachEvidenceUseCase uploads an evidence file and records its pointer.
// Only the original filer may attach, the blob upload happens before the
// row insert, and an upload failure leaves no row behind.
type AttachEvidenceUseCase struct {
	complaintRepo complaint.Repository
	blobStore     complaint.BlobStore
	txRunner      TransactionRunner
	maxFileBytes  int64
	logger        logger.Interface
}

func NewAttachEvidenceUseCase(
	complaintRepo complaint.Repository,
	blobStore complaint.BlobStore,
	txRunner TransactionRunner,
	maxFileBytes int64,
	logger logger.Interface,
) *AttachEvidenceUseCase {
	return &AttachEvidenceUseCase{
		complaintRepo: complaintRepo,
		blobStore:     blobStore,
		txRunner:      txRunner,
		maxFileBytes:  maxFileBytes,
		logger:        logger,
	}
}

func (uc *AttachEvidenceUseCase) Execute(ctx context.Context, cmd AttachEvidenceCommand) (*AttachEvidenceResult, error) {
	uc.logger.Infow("executing attach evidence use case",
		"complaint_id", cmd.ComplaintID,
		"user_id", cmd.UserID,
		"file_size", len(cmd.Data))

	if cmd.ComplaintID == 0 {
		return nil, errors.NewValidationError("complaint ID is required")
	}
	if len(cmd.Data) == 0 {
		return nil, errors.NewValidationError("no file uploaded")
	}
	if uc.maxFileBytes > 0 && int64(len(cmd.Data)) > uc.maxFileBytes {
		return nil, errors.NewValidationError(
			fmt.Sprintf("file exceeds maximum size of %d bytes", uc.maxFileBytes))
	}

	target, err := uc.complaintRepo.GetByID(ctx, cmd.ComplaintID)
	if err != nil {
		uc.logger.Errorw("failed to find complaint", "error", err, "complaint_id", cmd.ComplaintID)
		return nil, err
	}

	if !target.CanAttachEvidenceBy(cmd.UserID) {
		uc.logger.Warnw("evidence attach rejected for non-owner",
			"complaint_id", cmd.ComplaintID,
			"user_id", cmd.UserID)
		return nil, errors.NewForbiddenError("only the complaint owner may attach evidence")
	}

	blobName := fmt.Sprintf("complaint-%d-%d", cmd.ComplaintID, biztime.NowUTC().UnixMilli())

	fileURL, err := uc.blobStore.Put(ctx, blobName, cmd.Data, cmd.ContentType)
	if err != nil {
		uc.logger.Errorw("failed to upload evidence file", "error", err)
		return nil, err
	}

	newEvidence, err := complaint.NewEvidence(cmd.ComplaintID, fileURL, cmd.ContentType)
	if err != nil {
		return nil, errors.NewInternalError(err.Error())
	}

	err = uc.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.complaintRepo.SaveEvidence(txCtx, newEvidence); err != nil {
			return err
		}

		entry, err := complaint.NewLogEntry(cmd.ComplaintID, cmd.UserID, "Evidence attached")
		if err != nil {
			return errors.NewInternalError(err.Error())
		}
		return uc.complaintRepo.AppendLog(txCtx, entry)
	})
	if err != nil {
		uc.logger.Errorw("failed to record evidence", "error", err)
		return nil, err
	}

	uc.logger.Infow("evidence attached successfully",
		"complaint_id", cmd.ComplaintID,
		"evidence_id", newEvidence.ID(),
		"file_url", fileURL)

	return &AttachEvidenceResult{
		EvidenceID: newEvidence.ID(),
		FileURL:    fileURL,
		UploadedAt: newEvidence.UploadedAt(),
	}, nil
}
