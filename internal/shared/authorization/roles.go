// Package authorization defines the closed role set and the static
// operation-to-role table every state-changing route is gated by.
package authorization

type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleFaculty Role = "FACULTY"
	RoleAdmin   Role = "ADMIN"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return r == RoleStudent || r == RoleFaculty || r == RoleAdmin
}

// ParseRole returns the role matching s, or an empty role when s names
// no known role. Roles are disjoint capability sets; there is no hierarchy.
func ParseRole(s string) (Role, bool) {
	role := Role(s)
	if role.IsValid() {
		return role, true
	}
	return "", false
}

// Operation names a gated entry point of the complaint lifecycle engine.
type Operation string

const (
	OpCreateComplaint Operation = "complaint.create"
	OpAttachEvidence  Operation = "complaint.attach_evidence"
	OpAssignFaculty   Operation = "complaint.assign_faculty"
	OpListAssigned    Operation = "complaint.list_assigned"
)

// operationRoles maps each gated operation to the single role permitted to
// invoke it. Each lifecycle entry point passes exactly one role check.
var operationRoles = map[Operation]Role{
	OpCreateComplaint: RoleStudent,
	OpAttachEvidence:  RoleStudent,
	OpAssignFaculty:   RoleAdmin,
	OpListAssigned:    RoleFaculty,
}

// RequiredRole returns the role permitted to invoke op.
func RequiredRole(op Operation) Role {
	return operationRoles[op]
}
