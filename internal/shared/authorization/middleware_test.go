package authorization

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performGatedRequest(role string, gate gin.HandlerFunc) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/gated", nil)
	if role != "" {
		c.Set(ContextKeyUserRole, role)
	}

	gate(c)
	if !c.IsAborted() {
		c.Status(http.StatusOK)
	}

	return w
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		required Role
		wantCode int
	}{
		{name: "matching role passes", role: "STUDENT", required: RoleStudent, wantCode: http.StatusOK},
		{name: "wrong role is forbidden", role: "FACULTY", required: RoleAdmin, wantCode: http.StatusForbidden},
		{name: "unknown role is forbidden", role: "SUPERUSER", required: RoleAdmin, wantCode: http.StatusForbidden},
		{name: "missing role is unauthorized", role: "", required: RoleStudent, wantCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performGatedRequest(tt.role, RequireRole(tt.required))
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestRequireOperation(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		op       Operation
		wantCode int
	}{
		{name: "student may create complaints", role: "STUDENT", op: OpCreateComplaint, wantCode: http.StatusOK},
		{name: "student may attach evidence", role: "STUDENT", op: OpAttachEvidence, wantCode: http.StatusOK},
		{name: "faculty may not create complaints", role: "FACULTY", op: OpCreateComplaint, wantCode: http.StatusForbidden},
		{name: "admin may not create complaints", role: "ADMIN", op: OpCreateComplaint, wantCode: http.StatusForbidden},
		{name: "only admin assigns faculty", role: "ADMIN", op: OpAssignFaculty, wantCode: http.StatusOK},
		{name: "faculty may not assign", role: "FACULTY", op: OpAssignFaculty, wantCode: http.StatusForbidden},
		{name: "only faculty lists assigned", role: "FACULTY", op: OpListAssigned, wantCode: http.StatusOK},
		{name: "student may not list assigned", role: "STUDENT", op: OpListAssigned, wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performGatedRequest(tt.role, RequireOperation(tt.op))
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestParseRole(t *testing.T) {
	role, ok := ParseRole("FACULTY")
	assert.True(t, ok)
	assert.Equal(t, RoleFaculty, role)

	_, ok = ParseRole("faculty")
	assert.False(t, ok, "role names are case-sensitive")

	_, ok = ParseRole("")
	assert.False(t, ok)
}

func TestRequiredRole_CoversEveryOperation(t *testing.T) {
	for _, op := range []Operation{OpCreateComplaint, OpAttachEvidence, OpAssignFaculty, OpListAssigned} {
		assert.True(t, RequiredRole(op).IsValid(), "operation %s must map to a role", op)
	}
}
