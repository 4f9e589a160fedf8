package Models

import (
	"time"
)

// Lift statuses mirror the floor board colors.
const (
	LiftIdle   = "idle"
	LiftGreen  = "green"
	LiftYellow = "yellow"
	LiftRed    = "red"
)

type Lift struct {
	ID               string    `json:"id" gorm:"primaryKey;size:10"`
	Name             string    `json:"name" gorm:"size:255;not null"`
	Status           string    `json:"status" gorm:"size:50;default:idle"`
	TechnicianID     *uint     `json:"technician_id" gorm:"index"`
	IssueDescription string    `json:"issue_description" gorm:"type:text"`
	LastUpdated      time.Time `json:"last_updated"`

	TechnicianName string `json:"technician_name,omitempty" gorm:"->;-:migration"`
}

// LiftUpdate is a partial update: nil fields are left untouched. It replaces
// the ad-hoc SQL clause building the legacy system used for lift edits.
type LiftUpdate struct {
	Status           *string `json:"status"`
	TechnicianID     *uint   `json:"technician_id"`
	IssueDescription *string `json:"issue_description"`
}

// Changes returns the column set for a single parameterized UPDATE,
// or an empty map when the request carries nothing to change.
func (u LiftUpdate) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if u.Status != nil {
		changes["status"] = *u.Status
	}
	if u.TechnicianID != nil {
		changes["technician_id"] = *u.TechnicianID
	}
	if u.IssueDescription != nil {
		changes["issue_description"] = *u.IssueDescription
	}
	if len(changes) > 0 {
		changes["last_updated"] = time.Now()
	}
	return changes
}
