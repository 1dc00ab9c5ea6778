package complaint

import vo "campusguard/internal/domain/complaint/valueobjects"

// StatusLookup resolves operator-configured status and severity rows.
// Statuses and severities are data, not compile-time constants: the id
// behind a name is whatever the operator seeded. Resolutions are cached at
// startup; a missing status row is a fatal configuration error reported by
// StatusID.
type StatusLookup interface {
	// StatusID resolves a lifecycle status name to its configured row id.
	// Returns a configuration error when the row is absent.
	StatusID(status vo.Status) (uint, error)
	// StatusName resolves a row id back to its name for display.
	StatusName(id uint) (string, bool)

	// SeverityID resolves a severity label (e.g. "HIGH") to its row id.
	SeverityID(name string) (uint, bool)
	// SeverityName resolves a severity row id back to its label.
	SeverityName(id uint) (string, bool)
}
