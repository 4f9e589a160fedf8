package Models

import (
	"time"

	"gorm.io/gorm"
)

type Attendance struct {
	gorm.Model
	EmployeeID uint       `json:"employee_id" gorm:"not null;index"`
	Date       string     `json:"date" gorm:"size:50;not null;index"`
	CheckIn    time.Time  `json:"check_in"`
	CheckOut   *time.Time `json:"check_out"`
	Status     string     `json:"status" gorm:"size:50;default:present"`
}

type Message struct {
	gorm.Model
	EmployeeID uint   `json:"employee_id" gorm:"not null;index"`
	Sender     string `json:"sender" gorm:"size:50;not null"` // "employee" or "admin"
	Message    string `json:"message" gorm:"type:text;not null"`
	IsRead     bool   `json:"is_read" gorm:"default:false"`
}
