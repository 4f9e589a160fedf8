package Models

import (
	"gorm.io/gorm"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type Withdrawal struct {
	gorm.Model
	EmployeeID uint    `json:"employee_id" gorm:"not null;index"`
	Amount     float64 `json:"amount" gorm:"not null"`
	Reason     string  `json:"reason" gorm:"type:text"`
	Status     string  `json:"status" gorm:"size:50;default:pending"`
	AdminNote  string  `json:"admin_note" gorm:"type:text"`
	Date       string  `json:"date" gorm:"size:50"`

	// Joined for admin listings, not stored
	EmployeeName string `json:"employee_name,omitempty" gorm:"->;-:migration"`
}

type Absence struct {
	gorm.Model
	EmployeeID uint   `json:"employee_id" gorm:"not null;index"`
	Date       string `json:"date" gorm:"size:50;not null"`
	Reason     string `json:"reason" gorm:"type:text"`

	EmployeeName string `json:"employee_name,omitempty" gorm:"->;-:migration"`
}
