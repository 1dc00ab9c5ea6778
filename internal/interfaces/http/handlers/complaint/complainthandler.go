package complaint

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"campusguard/internal/application/complaint/usecases"
	"campusguard/internal/shared/authorization"
	"campusguard/internal/shared/errors"
	"campusguard/internal/shared/logger"
	"campusguard/internal/shared/utils"
)

type ComplaintHandler struct {
	createComplaintUC usecases.CreateComplaintExecutor
	attachEvidenceUC  usecases.AttachEvidenceExecutor
	assignFacultyUC   usecases.AssignFacultyExecutor
	listAssignedUC    usecases.ListAssignedExecutor
	getComplaintUC    usecases.GetComplaintExecutor
	maxUploadBytes    int64
	logger            logger.Interface
}

func NewComplaintHandler(
	createComplaintUC usecases.CreateComplaintExecutor,
	attachEvidenceUC usecases.AttachEvidenceExecutor,
	assignFacultyUC usecases.AssignFacultyExecutor,
	listAssignedUC usecases.ListAssignedExecutor,
	getComplaintUC usecases.GetComplaintExecutor,
	maxUploadBytes int64,
) *ComplaintHandler {
	return &ComplaintHandler{
		createComplaintUC: createComplaintUC,
		attachEvidenceUC:  attachEvidenceUC,
		assignFacultyUC:   assignFacultyUC,
		listAssignedUC:    listAssignedUC,
		getComplaintUC:    getComplaintUC,
		maxUploadBytes:    maxUploadBytes,
		logger:            logger.NewLogger(),
	}
}

// CreateComplaint handles POST /complaints
func (h *ComplaintHandler) CreateComplaint(c *gin.Context) {
	var req CreateComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create complaint", "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateBindingError(err))
		return
	}

	userID, _ := c.Get("user_id")
	cmd, err := req.ToCommand(userID.(uint))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createComplaintUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Complaint filed successfully")
}

// AttachEvidence handles POST /complaints/:id/evidence
func (h *ComplaintHandler) AttachEvidence(c *gin.Context) {
	complaintID, err := utils.ParseIDParam(c, "id", "complaint")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("no file uploaded"))
		return
	}
	if h.maxUploadBytes > 0 && fileHeader.Size > h.maxUploadBytes {
		utils.ErrorResponseWithError(c, errors.NewValidationError("file exceeds maximum size"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewInternalError("failed to read uploaded file"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewInternalError("failed to read uploaded file"))
		return
	}

	userID, _ := c.Get("user_id")
	cmd := usecases.AttachEvidenceCommand{
		ComplaintID: complaintID,
		UserID:      userID.(uint),
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	}

	result, err := h.attachEvidenceUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Evidence attached successfully")
}

// AssignFaculty handles PATCH /complaints/:id/assign
func (h *ComplaintHandler) AssignFaculty(c *gin.Context) {
	complaintID, err := utils.ParseIDParam(c, "id", "complaint")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignFacultyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.TranslateBindingError(err))
		return
	}

	userID, _ := c.Get("user_id")
	cmd := usecases.AssignFacultyCommand{
		ComplaintID: complaintID,
		FacultyID:   req.FacultyID,
		AssignedBy:  userID.(uint),
	}

	result, err := h.assignFacultyUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Complaint assigned successfully", result)
}

// ListAssigned handles GET /complaints/assigned
func (h *ComplaintHandler) ListAssigned(c *gin.Context) {
	userID, _ := c.Get("user_id")

	views, err := h.listAssignedUC.Execute(c.Request.Context(), usecases.ListAssignedQuery{
		FacultyID: userID.(uint),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", views)
}

// GetComplaint handles GET /complaints/:id
func (h *ComplaintHandler) GetComplaint(c *gin.Context) {
	complaintID, err := utils.ParseIDParam(c, "id", "complaint")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := c.Get("user_id")

	view, err := h.getComplaintUC.Execute(c.Request.Context(), usecases.GetComplaintQuery{
		ComplaintID:   complaintID,
		RequesterID:   userID.(uint),
		RequesterRole: authorization.Role(c.GetString(authorization.ContextKeyUserRole)),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", view)
}
