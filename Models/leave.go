package Models

import (
	"time"

	"gorm.io/gorm"
)

// AnnualLeaveDays is the yearly allowance every employee draws from.
const AnnualLeaveDays = 21

type LeaveRequest struct {
	gorm.Model
	EmployeeID uint   `json:"employee_id" gorm:"not null;index"`
	LeaveType  string `json:"leave_type" gorm:"size:50;default:annual"`
	StartDate  string `json:"start_date" gorm:"size:50;not null"`
	EndDate    string `json:"end_date" gorm:"size:50;not null"`
	DaysCount  int    `json:"days_count" gorm:"not null"`
	Reason     string `json:"reason" gorm:"type:text"`
	Status     string `json:"status" gorm:"size:50;default:pending"`
	AdminNotes string `json:"admin_notes" gorm:"type:text"`

	EmployeeName string `json:"employee_name,omitempty" gorm:"->;-:migration"`
	SectionName  string `json:"section_name,omitempty" gorm:"->;-:migration"`
}

type LeaveBalance struct {
	Total     int `json:"total"`
	Used      int `json:"used"`
	Remaining int `json:"remaining"`
}

// BusinessDaysBetween counts the days in [start, end] that fall outside the
// Friday/Saturday weekend. Returns 0 when the range is empty or unparsable.
func BusinessDaysBetween(startDate, endDate string) int {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return 0
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return 0
	}

	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() != time.Friday && d.Weekday() != time.Saturday {
			count++
		}
	}
	return count
}

// GetLeaveBalance computes the remaining annual allowance from approved requests.
func GetLeaveBalance(db *gorm.DB, employeeID uint) (LeaveBalance, error) {
	var used int64
	err := db.Model(&LeaveRequest{}).
		Where("employee_id = ? AND status = ?", employeeID, StatusApproved).
		Select("COALESCE(SUM(days_count), 0)").
		Scan(&used).Error
	if err != nil {
		return LeaveBalance{Total: AnnualLeaveDays, Remaining: AnnualLeaveDays}, err
	}

	return LeaveBalance{
		Total:     AnnualLeaveDays,
		Used:      int(used),
		Remaining: AnnualLeaveDays - int(used),
	}, nil
}
