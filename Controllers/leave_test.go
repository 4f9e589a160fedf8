package Controllers

import (
	"encoding/json"
	"io"
	"testing"

	"Warsha/Models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newLeaveApp(t *testing.T, name string) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := openTestDB(t, name)
	controller := NewLeaveController(db)

	app := fiber.New()
	app.Post("/api/leave-requests", controller.CreateLeaveRequest)
	return app, db
}

func TestCreateLeaveRequestCountsBusinessDays(t *testing.T) {
	app, db := newLeaveApp(t, "ctrl_leave_days")

	employee := Models.Employee{Name: "موظف"}
	require.NoError(t, db.Create(&employee).Error)

	// 2026-08-30 (Sunday) through 2026-09-05 spans one Friday and one Saturday
	body := map[string]interface{}{
		"employee_id": employee.ID,
		"start_date":  "2026-08-30",
		"end_date":    "2026-09-05",
	}
	resp, err := app.Test(jsonRequest("POST", "/api/leave-requests", body))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var created struct {
		DaysCount int `json:"days_count"`
	}
	require.NoError(t, json.Unmarshal(raw, &created))
	assert.Equal(t, 5, created.DaysCount)
}

func TestCreateLeaveRequestRejectsWeekendOnlyRange(t *testing.T) {
	app, db := newLeaveApp(t, "ctrl_leave_weekend")

	employee := Models.Employee{Name: "موظف"}
	require.NoError(t, db.Create(&employee).Error)

	body := map[string]interface{}{
		"employee_id": employee.ID,
		"start_date":  "2026-09-04",
		"end_date":    "2026-09-05",
	}
	resp, err := app.Test(jsonRequest("POST", "/api/leave-requests", body))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateLeaveRequestEnforcesBalanceForEveryType(t *testing.T) {
	app, db := newLeaveApp(t, "ctrl_leave_balance")

	employee := Models.Employee{Name: "موظف"}
	require.NoError(t, db.Create(&employee).Error)

	// Burn 20 of the 21 annual days
	used := Models.LeaveRequest{
		EmployeeID: employee.ID,
		StartDate:  "2026-01-04",
		EndDate:    "2026-01-29",
		DaysCount:  20,
		Status:     Models.StatusApproved,
	}
	require.NoError(t, db.Create(&used).Error)

	// A non-annual request draws from the same balance
	body := map[string]interface{}{
		"employee_id": employee.ID,
		"leave_type":  "sick",
		"start_date":  "2026-08-30",
		"end_date":    "2026-09-02",
	}
	resp, err := app.Test(jsonRequest("POST", "/api/leave-requests", body))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// One remaining day still fits
	body["start_date"] = "2026-08-31"
	body["end_date"] = "2026-08-31"
	resp, err = app.Test(jsonRequest("POST", "/api/leave-requests", body))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}
