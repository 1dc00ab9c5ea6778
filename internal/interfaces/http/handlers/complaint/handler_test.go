package complaint

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	complaintdto "campusguard/internal/application/complaint/dto"
	"campusguard/internal/application/complaint/usecases"
	"campusguard/internal/interfaces/http/handlers/testutil"
	"campusguard/internal/shared/authorization"
	"campusguard/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockCreateComplaintUC struct {
	result *usecases.CreateComplaintResult
	err    error
	gotCmd usecases.CreateComplaintCommand
}

func (m *mockCreateComplaintUC) Execute(_ context.Context, cmd usecases.CreateComplaintCommand) (*usecases.CreateComplaintResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockAttachEvidenceUC struct {
	result *usecases.AttachEvidenceResult
	err    error
	gotCmd usecases.AttachEvidenceCommand
}

func (m *mockAttachEvidenceUC) Execute(_ context.Context, cmd usecases.AttachEvidenceCommand) (*usecases.AttachEvidenceResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockAssignFacultyUC struct {
	result *usecases.AssignFacultyResult
	err    error
	gotCmd usecases.AssignFacultyCommand
}

func (m *mockAssignFacultyUC) Execute(_ context.Context, cmd usecases.AssignFacultyCommand) (*usecases.AssignFacultyResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockListAssignedUC struct {
	result []*complaintdto.ComplaintView
	err    error
}

func (m *mockListAssignedUC) Execute(_ context.Context, _ usecases.ListAssignedQuery) ([]*complaintdto.ComplaintView, error) {
	return m.result, m.err
}

type mockGetComplaintUC struct {
	result *complaintdto.ComplaintView
	err    error
}

func (m *mockGetComplaintUC) Execute(_ context.Context, _ usecases.GetComplaintQuery) (*complaintdto.ComplaintView, error) {
	return m.result, m.err
}

// =====================================================================
// Test helper
// =====================================================================

type testDeps struct {
	createComplaintUC usecases.CreateComplaintExecutor
	attachEvidenceUC  usecases.AttachEvidenceExecutor
	assignFacultyUC   usecases.AssignFacultyExecutor
	listAssignedUC    usecases.ListAssignedExecutor
	getComplaintUC    usecases.GetComplaintExecutor
}

func newTestComplaintHandler(deps testDeps) *ComplaintHandler {
	return NewComplaintHandler(
		deps.createComplaintUC,
		deps.attachEvidenceUC,
		deps.assignFacultyUC,
		deps.listAssignedUC,
		deps.getComplaintUC,
		2*1024*1024,
	)
}

// =====================================================================
// CreateComplaint
// =====================================================================

func TestComplaintHandler_CreateComplaint_Success(t *testing.T) {
	mockUC := &mockCreateComplaintUC{
		result: &usecases.CreateComplaintResult{
			ComplaintID:  1,
			Status:       "OPEN",
			AccusedCount: 1,
			CreatedAt:    time.Now().UTC(),
		},
	}
	handler := newTestComplaintHandler(testDeps{createComplaintUC: mockUC})

	name := "Unknown senior"
	reqBody := CreateComplaintRequest{
		Title:       "Hazing in hostel block C",
		Description: "A group of seniors cornered freshers after curfew",
		Severity:    "HIGH",
		Accused:     []AccusedEntry{{Name: &name}},
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/complaints", reqBody)
	testutil.SetAuthContext(c, 10, authorization.RoleStudent)

	handler.CreateComplaint(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, uint(10), mockUC.gotCmd.StudentID, "filer comes from the auth context, never the body")
}

func TestComplaintHandler_CreateComplaint_EmptyAccused(t *testing.T) {
	mockUC := &mockCreateComplaintUC{
		result: &usecases.CreateComplaintResult{
			ComplaintID: 2,
			Status:      "OPEN",
			CreatedAt:   time.Now().UTC(),
		},
	}
	handler := newTestComplaintHandler(testDeps{createComplaintUC: mockUC})

	reqBody := CreateComplaintRequest{
		Title:       "Threats over messaging app",
		Description: "Sender unknown, screenshots to follow",
		Severity:    "LOW",
		Accused:     []AccusedEntry{},
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/complaints", reqBody)
	testutil.SetAuthContext(c, 10, authorization.RoleStudent)

	handler.CreateComplaint(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Empty(t, mockUC.gotCmd.Accused)
}

func TestComplaintHandler_CreateComplaint_BindError(t *testing.T) {
	handler := newTestComplaintHandler(testDeps{})

	// Missing severity
	reqBody := map[string]string{"title": "only title", "description": "desc"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/complaints", reqBody)
	testutil.SetAuthContext(c, 10, authorization.RoleStudent)

	handler.CreateComplaint(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
}

func TestComplaintHandler_CreateComplaint_BadIncidentDate(t *testing.T) {
	handler := newTestComplaintHandler(testDeps{})

	name := "Unknown"
	badDate := "14-03-2026"
	reqBody := CreateComplaintRequest{
		Title:        "Title",
		Description:  "Description",
		Severity:     "LOW",
		IncidentDate: &badDate,
		Accused:      []AccusedEntry{{Name: &name}},
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/complaints", reqBody)
	testutil.SetAuthContext(c, 10, authorization.RoleStudent)

	handler.CreateComplaint(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Error)
	assert.Contains(t, resp.Error.Message, "incident_date")
}

func TestComplaintHandler_CreateComplaint_UseCaseError(t *testing.T) {
	mockUC := &mockCreateComplaintUC{
		err: errors.NewConflictError("a student cannot file a complaint against themselves"),
	}
	handler := newTestComplaintHandler(testDeps{createComplaintUC: mockUC})

	accusedID := uint(10)
	reqBody := CreateComplaintRequest{
		Title:       "Title",
		Description: "Description",
		Severity:    "LOW",
		Accused:     []AccusedEntry{{UserID: &accusedID}},
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/complaints", reqBody)
	testutil.SetAuthContext(c, 10, authorization.RoleStudent)

	handler.CreateComplaint(c)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
}

// =====================================================================
// AttachEvidence
// =====================================================================

func TestComplaintHandler_AttachEvidence_Success(t *testing.T) {
	mockUC := &mockAttachEvidenceUC{
		result: &usecases.AttachEvidenceResult{
			EvidenceID: 3,
			FileURL:    "https://cdn.example/complaint-7-1700000000000",
			UploadedAt: time.Now().UTC(),
		},
	}
	handler := newTestComplaintHandler(testDeps{attachEvidenceUC: mockUC})

	c, w := testutil.NewMultipartContext(http.MethodPost, "/api/complaints/7/evidence", "file", "photo.png", []byte("png-bytes"))
	testutil.SetAuthContext(c, 10, authorization.RoleStudent)
	testutil.SetURLParam(c, "id", "7")

	handler.AttachEvidence(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(7), mockUC.gotCmd.ComplaintID)
	assert.Equal(t, uint(10), mockUC.gotCmd.UserID)
	assert.Equal(t, []byte("png-bytes"), mockUC.gotCmd.Data)
}

func TestComplaintHandler_AttachEvidence_NoFile(t *testing.T) {
	handler := newTestComplaintHandler(testDeps{})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/complaints/7/evidence", nil)
	testutil.SetAuthContext(c, 10, authorization.RoleStudent)
	testutil.SetURLParam(c, "id", "7")

	handler.AttachEvidence(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Error)
	assert.Contains(t, resp.Error.Message, "no file uploaded")
}

func TestComplaintHandler_AttachEvidence_NonOwnerForbidden(t *testing.T) {
	mockUC := &mockAttachEvidenceUC{
		err: errors.NewForbiddenError("only the complaint owner may attach evidence"),
	}
	handler := newTestComplaintHandler(testDeps{attachEvidenceUC: mockUC})

	c, w := testutil.NewMultipartContext(http.MethodPost, "/api/complaints/7/evidence", "file", "photo.png", []byte("png-bytes"))
	testutil.SetAuthContext(c, 11, authorization.RoleStudent)
	testutil.SetURLParam(c, "id", "7")

	handler.AttachEvidence(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestComplaintHandler_AttachEvidence_InvalidIDParam(t *testing.T) {
	handler := newTestComplaintHandler(testDeps{})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/complaints/abc/evidence", nil)
	testutil.SetAuthContext(c, 10, authorization.RoleStudent)
	testutil.SetURLParam(c, "id", "abc")

	handler.AttachEvidence(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// =====================================================================
// AssignFaculty
// =====================================================================

func TestComplaintHandler_AssignFaculty_Success(t *testing.T) {
	mockUC := &mockAssignFacultyUC{
		result: &usecases.AssignFacultyResult{
			ComplaintID: 7,
			FacultyID:   55,
			Status:      "UNDER_REVIEW",
			UpdatedAt:   time.Now().UTC(),
		},
	}
	handler := newTestComplaintHandler(testDeps{assignFacultyUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPatch, "/api/complaints/7/assign", AssignFacultyRequest{FacultyID: 55})
	testutil.SetAuthContext(c, 1, authorization.RoleAdmin)
	testutil.SetURLParam(c, "id", "7")

	handler.AssignFaculty(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(7), mockUC.gotCmd.ComplaintID)
	assert.Equal(t, uint(55), mockUC.gotCmd.FacultyID)
	assert.Equal(t, uint(1), mockUC.gotCmd.AssignedBy)
}

func TestComplaintHandler_AssignFaculty_TerminalStatus(t *testing.T) {
	mockUC := &mockAssignFacultyUC{
		err: errors.NewValidationError("cannot assign complaint with status RESOLVED"),
	}
	handler := newTestComplaintHandler(testDeps{assignFacultyUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPatch, "/api/complaints/7/assign", AssignFacultyRequest{FacultyID: 55})
	testutil.SetAuthContext(c, 1, authorization.RoleAdmin)
	testutil.SetURLParam(c, "id", "7")

	handler.AssignFaculty(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestComplaintHandler_AssignFaculty_MissingFacultyID(t *testing.T) {
	handler := newTestComplaintHandler(testDeps{})

	c, w := testutil.NewTestContext(http.MethodPatch, "/api/complaints/7/assign", map[string]any{})
	testutil.SetAuthContext(c, 1, authorization.RoleAdmin)
	testutil.SetURLParam(c, "id", "7")

	handler.AssignFaculty(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// =====================================================================
// ListAssigned / GetComplaint
// =====================================================================

func TestComplaintHandler_ListAssigned_Success(t *testing.T) {
	mockUC := &mockListAssignedUC{
		result: []*complaintdto.ComplaintView{
			{ID: 1, Title: "First", Status: "UNDER_REVIEW", IsAnonymous: true},
			{ID: 2, Title: "Second", Status: "UNDER_REVIEW"},
		},
	}
	handler := newTestComplaintHandler(testDeps{listAssignedUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/complaints/assigned", nil)
	testutil.SetAuthContext(c, 55, authorization.RoleFaculty)

	handler.ListAssigned(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
	assert.Contains(t, string(resp.Data), `"student_info":null`, "anonymous complaints carry no filer identity")
}

func TestComplaintHandler_GetComplaint_NotFound(t *testing.T) {
	mockUC := &mockGetComplaintUC{
		err: errors.NewNotFoundError("complaint not found"),
	}
	handler := newTestComplaintHandler(testDeps{getComplaintUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/complaints/999", nil)
	testutil.SetAuthContext(c, 1, authorization.RoleAdmin)
	testutil.SetURLParam(c, "id", "999")

	handler.GetComplaint(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
