package Models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusinessDaysBetween(t *testing.T) {
	// 2026-08-30 is a Sunday; the range spans one Friday and one Saturday.
	assert.Equal(t, 5, BusinessDaysBetween("2026-08-30", "2026-09-05"))

	// Single working day
	assert.Equal(t, 1, BusinessDaysBetween("2026-08-31", "2026-08-31"))

	// Weekend only
	assert.Equal(t, 0, BusinessDaysBetween("2026-09-04", "2026-09-05"))

	// Inverted or malformed ranges count zero days
	assert.Equal(t, 0, BusinessDaysBetween("2026-09-05", "2026-09-01"))
	assert.Equal(t, 0, BusinessDaysBetween("not-a-date", "2026-09-01"))
}

func TestGetLeaveBalanceCountsApprovedOnly(t *testing.T) {
	db := openTestDB(t, "leave_balance")

	employee := Employee{Name: "سعيد"}
	require.NoError(t, db.Create(&employee).Error)

	requests := []LeaveRequest{
		{EmployeeID: employee.ID, StartDate: "2026-01-04", EndDate: "2026-01-08", DaysCount: 5, Status: StatusApproved},
		{EmployeeID: employee.ID, StartDate: "2026-02-01", EndDate: "2026-02-03", DaysCount: 3, Status: StatusPending},
		{EmployeeID: employee.ID, StartDate: "2026-03-01", EndDate: "2026-03-02", DaysCount: 2, Status: StatusRejected},
	}
	for i := range requests {
		require.NoError(t, db.Create(&requests[i]).Error)
	}

	balance, err := GetLeaveBalance(db, employee.ID)
	require.NoError(t, err)
	assert.Equal(t, AnnualLeaveDays, balance.Total)
	assert.Equal(t, 5, balance.Used)
	assert.Equal(t, AnnualLeaveDays-5, balance.Remaining)
}
