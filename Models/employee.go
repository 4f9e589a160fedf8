package Models

import (
	"gorm.io/gorm"
)

type Section struct {
	gorm.Model
	Name string `json:"name" gorm:"size:255;uniqueIndex;not null"`
}

type Employee struct {
	gorm.Model
	Name       string  `json:"name" gorm:"size:255;not null"`
	SectionID  *uint   `json:"section_id" gorm:"index"`
	Target     float64 `json:"target" gorm:"not null;default:0"`
	BaseSalary float64 `json:"base_salary" gorm:"default:0"`
	IsActive   bool    `json:"is_active" gorm:"default:true"`
	HideIncome bool    `json:"hide_income" gorm:"default:false"`

	// Relationships
	Section Section `json:"section,omitempty" gorm:"foreignKey:SectionID"`
}

// Entry represents a single income record credited to an employee.
type Entry struct {
	gorm.Model
	EmployeeID uint    `json:"employee_id" gorm:"not null;index"`
	SectionID  *uint   `json:"section_id" gorm:"index"`
	Income     float64 `json:"income" gorm:"not null"`
	Details    string  `json:"details" gorm:"type:text"`
}

type EmployeeRequest struct {
	Name       string  `json:"name" validate:"required"`
	SectionID  uint    `json:"section_id" validate:"required"`
	Target     float64 `json:"target" validate:"required"`
	BaseSalary float64 `json:"base_salary"`
	HideIncome bool    `json:"hide_income"`
	Username   string  `json:"username" validate:"required"`
	Password   string  `json:"password" validate:"required"`
}
