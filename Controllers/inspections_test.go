package Controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"Warsha/Models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, Models.Migrate(db))
	return db
}

func newInspectionApp(t *testing.T, name string) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := openTestDB(t, name)
	controller := NewInspectionController(db)

	app := fiber.New()
	app.Post("/api/inspections", controller.CreateInspection)
	app.Put("/api/inspections/:id", controller.UpdateInspection)
	app.Get("/api/inspections/terms", controller.GetInspectionTerms)
	app.Get("/api/inspections/:id", controller.GetInspection)
	return app, db
}

func jsonRequest(method, target string, body interface{}) *http.Request {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(method, target, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}

func TestCreateInspectionRoundTrip(t *testing.T) {
	app, _ := newInspectionApp(t, "ctrl_inspections")

	body := map[string]interface{}{
		"inspector_id":   1,
		"customer_name":  "خالد العتيبي",
		"customer_phone": "0551112222",
		"plate_number":   "ن ص ق 4321",
		"total_amount":   300,
		"final_amount":   345,
		"items": []map[string]interface{}{
			{"category": "مكانيكا", "service_description": "غيار زيت الماكينة", "quantity": 1, "price": 300, "total": 300},
		},
	}

	resp, err := app.Test(jsonRequest("POST", "/api/inspections", body))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created struct {
		ID   uint `json:"id"`
		Data struct {
			Status string `json:"status"`
		} `json:"data"`
	}
	decodeBody(t, resp, &created)
	require.NotZero(t, created.ID)
	assert.Equal(t, "new", created.Data.Status)

	resp, err = app.Test(httptest.NewRequest("GET", fmt.Sprintf("/api/inspections/%d", created.ID), nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var fetched Models.Inspection
	decodeBody(t, resp, &fetched)
	assert.Equal(t, "خالد العتيبي", fetched.CustomerName)
	require.Len(t, fetched.Items, 1)
	assert.Equal(t, "غيار زيت الماكينة", fetched.Items[0].ServiceDescription)
}

func TestCreateInspectionRejectsMissingInspector(t *testing.T) {
	app, _ := newInspectionApp(t, "ctrl_inspections_missing")

	body := map[string]interface{}{"customer_name": "بدون فاحص"}
	resp, err := app.Test(jsonRequest("POST", "/api/inspections", body))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUpdateInspectionNotFound(t *testing.T) {
	app, _ := newInspectionApp(t, "ctrl_inspections_404")

	body := map[string]interface{}{"inspector_id": 1}
	resp, err := app.Test(jsonRequest("PUT", "/api/inspections/12345", body))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestInspectionTermsAccumulate(t *testing.T) {
	app, _ := newInspectionApp(t, "ctrl_inspections_terms")

	body := map[string]interface{}{
		"inspector_id": 1,
		"items": []map[string]interface{}{
			{"category": "كشف", "service_description": "كشف على نظام التعليق", "quantity": 1},
		},
	}
	resp, err := app.Test(jsonRequest("POST", "/api/inspections", body))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/inspections/terms", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var terms []string
	decodeBody(t, resp, &terms)
	assert.Contains(t, terms, "كشف على نظام التعليق")
}
