package Controllers

import (
	"errors"
	"strconv"

	"Warsha/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// InspectionController exposes the inspection record store over HTTP.
type InspectionController struct {
	Store *Models.InspectionStore
}

func NewInspectionController(db *gorm.DB) *InspectionController {
	return &InspectionController{Store: Models.NewInspectionStore(db)}
}

// CreateInspection creates an inspection with its line items.
// POST /api/inspections
func (ic *InspectionController) CreateInspection(c *fiber.Ctx) error {
	var req Models.InspectionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid request body",
			"message": err.Error(),
		})
	}

	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"message": "inspector_id is required",
		})
	}

	inspection, err := ic.Store.Create(&req)
	if err != nil {
		if errors.Is(err, Models.ErrInspectorRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   "Validation failed",
				"message": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to create inspection",
			"message": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Inspection created successfully",
		"id":      inspection.ID,
		"data":    inspection,
	})
}

// UpdateInspection overwrites the header and replaces the item set wholesale.
// PUT /api/inspections/:id
func (ic *InspectionController) UpdateInspection(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid ID",
			"message": "ID must be a valid number",
		})
	}

	var req Models.InspectionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid request body",
			"message": err.Error(),
		})
	}

	inspection, err := ic.Store.Update(uint(id), &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error":   "Inspection not found",
				"message": "The specified inspection does not exist",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to update inspection",
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Inspection updated successfully",
		"id":      inspection.ID,
		"data":    inspection,
	})
}

// GetInspection returns the header with its current items.
// GET /api/inspections/:id
func (ic *InspectionController) GetInspection(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid ID",
			"message": "ID must be a valid number",
		})
	}

	inspection, err := ic.Store.Get(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error":   "Inspection not found",
				"message": "The specified inspection does not exist",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Database error",
			"message": err.Error(),
		})
	}

	return c.JSON(inspection)
}

// GetAllInspections returns a page of inspections, newest first.
// GET /api/inspections?page=1&limit=10
func (ic *InspectionController) GetAllInspections(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	inspections, total, err := ic.Store.List((page-1)*limit, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Database error",
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"data": inspections,
		"pagination": fiber.Map{
			"page":       page,
			"limit":      limit,
			"total":      total,
			"totalPages": (total + int64(limit) - 1) / int64(limit),
		},
	})
}

// SearchInspections matches id, customer phone and plate number.
// GET /api/inspections/search?query=
func (ic *InspectionController) SearchInspections(c *fiber.Ctx) error {
	inspections, err := ic.Store.Search(c.Query("query"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Database error",
			"message": err.Error(),
		})
	}

	return c.JSON(inspections)
}

// GetInspectionsByInspector lists an inspector's inspections, newest first.
// GET /api/inspections/inspector/:id
func (ic *InspectionController) GetInspectionsByInspector(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid ID",
			"message": "ID must be a valid number",
		})
	}

	inspections, err := ic.Store.ByInspector(uint(id))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Database error",
			"message": err.Error(),
		})
	}

	return c.JSON(inspections)
}

// GetInspectorStats counts the inspector's inspections this calendar month.
// GET /api/inspections/inspector/:id/stats
func (ic *InspectionController) GetInspectorStats(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid ID",
			"message": "ID must be a valid number",
		})
	}

	count, err := ic.Store.MonthlyCount(uint(id))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Database error",
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"count": count})
}

// GetInspectionTerms returns the autocomplete vocabulary.
// GET /api/inspection-terms (also mounted at /api/inspections/terms)
func (ic *InspectionController) GetInspectionTerms(c *fiber.Ctx) error {
	terms, err := ic.Store.Terms()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Database error",
			"message": err.Error(),
		})
	}

	return c.JSON(terms)
}
