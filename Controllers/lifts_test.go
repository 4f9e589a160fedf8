package Controllers

import (
	"net/http/httptest"
	"testing"

	"Warsha/Models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newLiftApp(t *testing.T, name string) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := openTestDB(t, name)
	require.NoError(t, db.Create(&Models.Lift{ID: "A", Name: "رافعة A", Status: Models.LiftIdle}).Error)

	controller := NewLiftController(db)
	app := fiber.New()
	app.Get("/api/lifts", controller.GetLifts)
	app.Put("/api/lifts/:id", controller.UpdateLift)
	app.Post("/api/lifts/:id/release", controller.ReleaseLift)
	return app, db
}

func TestUpdateLiftPartialFields(t *testing.T) {
	app, db := newLiftApp(t, "ctrl_lifts_update")

	technician := Models.Employee{Name: "فني الرافعة"}
	require.NoError(t, db.Create(&technician).Error)

	body := map[string]interface{}{
		"status":        Models.LiftRed,
		"technician_id": technician.ID,
	}
	resp, err := app.Test(jsonRequest("PUT", "/api/lifts/A", body))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var lift Models.Lift
	require.NoError(t, db.First(&lift, "id = ?", "A").Error)
	assert.Equal(t, Models.LiftRed, lift.Status)
	require.NotNil(t, lift.TechnicianID)
	assert.Equal(t, technician.ID, *lift.TechnicianID)
	assert.False(t, lift.LastUpdated.IsZero())

	// Updating only the status keeps the assignment
	resp, err = app.Test(jsonRequest("PUT", "/api/lifts/A", map[string]interface{}{"status": Models.LiftYellow}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NoError(t, db.First(&lift, "id = ?", "A").Error)
	assert.Equal(t, Models.LiftYellow, lift.Status)
	require.NotNil(t, lift.TechnicianID)
}

func TestUpdateLiftRejectsEmptyBody(t *testing.T) {
	app, _ := newLiftApp(t, "ctrl_lifts_empty")

	resp, err := app.Test(jsonRequest("PUT", "/api/lifts/A", map[string]interface{}{}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUpdateLiftUnknownID(t *testing.T) {
	app, _ := newLiftApp(t, "ctrl_lifts_404")

	resp, err := app.Test(jsonRequest("PUT", "/api/lifts/Z", map[string]interface{}{"status": Models.LiftGreen}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestReleaseLift(t *testing.T) {
	app, db := newLiftApp(t, "ctrl_lifts_release")

	technician := Models.Employee{Name: "فني"}
	require.NoError(t, db.Create(&technician).Error)

	body := map[string]interface{}{
		"status":            Models.LiftGreen,
		"technician_id":     technician.ID,
		"issue_description": "صيانة دورية",
	}
	resp, err := app.Test(jsonRequest("PUT", "/api/lifts/A", body))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("POST", "/api/lifts/A/release", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var lift Models.Lift
	require.NoError(t, db.First(&lift, "id = ?", "A").Error)
	assert.Equal(t, Models.LiftIdle, lift.Status)
	assert.Nil(t, lift.TechnicianID)
	assert.Empty(t, lift.IssueDescription)
}
