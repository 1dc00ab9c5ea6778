package complaint

import "fmt"

// AccusedParty names the subject of a complaint: either a known platform
// user (by ID) or a free-text name. Exactly one of the two identities must
// be present. Accused parties are created only at complaint-creation time.
type AccusedParty struct {
	id           uint
	complaintID  uint
	userID       *uint
	accusedName  *string
	departmentID *uint
}

func NewAccusedParty(
	userID *uint,
	accusedName *string,
	departmentID *uint,
	filerID uint,
) (*AccusedParty, error) {
	hasUser := userID != nil && *userID != 0
	hasName := accusedName != nil && len(*accusedName) > 0

	if !hasUser && !hasName {
		return nil, fmt.Errorf("each accused must have a user ID or a name")
	}
	if hasUser && *userID == filerID {
		return nil, fmt.Errorf("a student cannot accuse themselves")
	}

	a := &AccusedParty{
		departmentID: departmentID,
	}
	if hasUser {
		a.userID = userID
	}
	if hasName {
		a.accusedName = accusedName
	}
	return a, nil
}

func ReconstructAccusedParty(
	id uint,
	complaintID uint,
	userID *uint,
	accusedName *string,
	departmentID *uint,
) (*AccusedParty, error) {
	if id == 0 {
		return nil, fmt.Errorf("accused ID cannot be zero")
	}
	if complaintID == 0 {
		return nil, fmt.Errorf("complaint ID is required")
	}

	return &AccusedParty{
		id:           id,
		complaintID:  complaintID,
		userID:       userID,
		accusedName:  accusedName,
		departmentID: departmentID,
	}, nil
}

func (a *AccusedParty) ID() uint {
	return a.id
}

func (a *AccusedParty) ComplaintID() uint {
	return a.complaintID
}

func (a *AccusedParty) UserID() *uint {
	return a.userID
}

func (a *AccusedParty) AccusedName() *string {
	return a.accusedName
}

func (a *AccusedParty) DepartmentID() *uint {
	return a.departmentID
}

// BindToComplaint attaches the accused record to its parent. The repository
// calls this inside the creation transaction once the complaint row exists.
func (a *AccusedParty) BindToComplaint(complaintID uint) error {
	if a.complaintID != 0 {
		return fmt.Errorf("accused party is already bound to complaint %d", a.complaintID)
	}
	if complaintID == 0 {
		return fmt.Errorf("complaint ID cannot be zero")
	}
	a.complaintID = complaintID
	return nil
}
