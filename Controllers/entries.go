package Controllers

import (
	"strconv"

	"Warsha/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type EntryController struct {
	DB *gorm.DB
}

func NewEntryController(db *gorm.DB) *EntryController {
	return &EntryController{DB: db}
}

type entryRequest struct {
	EmployeeID uint    `json:"employee_id"`
	SectionID  *uint   `json:"section_id"`
	Income     float64 `json:"income"`
	Details    string  `json:"details"`
}

// CreateEntry records an income entry for an employee.
// POST /api/entries
func (ec *EntryController) CreateEntry(c *fiber.Ctx) error {
	var req entryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if req.EmployeeID == 0 || req.Income <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "الرجاء التأكد من إدخال الدخل بشكل صحيح.",
		})
	}

	entry := Models.Entry{
		EmployeeID: req.EmployeeID,
		SectionID:  req.SectionID,
		Income:     req.Income,
		Details:    req.Details,
	}
	if err := ec.DB.Create(&entry).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "خطأ في تسجيل الدخل",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "تم تسجيل الدخل بنجاح",
		"id":      entry.ID,
	})
}

// ReplaceEmployeeIncome wipes the employee's entries and records one new one.
// PUT /api/employees/:id/income
func (ec *EntryController) ReplaceEmployeeIncome(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid ID"})
	}

	var req entryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if req.Income <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "الرجاء التأكد من إدخال الدخل بشكل صحيح.",
		})
	}

	txErr := ec.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("employee_id = ?", uint(id)).Delete(&Models.Entry{}).Error; err != nil {
			return err
		}

		sectionID := req.SectionID
		if sectionID == nil {
			var employee Models.Employee
			if err := tx.First(&employee, uint(id)).Error; err == nil {
				sectionID = employee.SectionID
			}
		}

		entry := Models.Entry{
			EmployeeID: uint(id),
			SectionID:  sectionID,
			Income:     req.Income,
			Details:    req.Details,
		}
		return tx.Create(&entry).Error
	})
	if txErr != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "خطأ في تحديث الدخل",
		})
	}

	return c.JSON(fiber.Map{
		"message": "تم تحديث الدخل بنجاح (تم استبدال القيم السابقة)",
	})
}

// UpdateEntry edits the amount and details of one entry.
// PUT /api/entries/:id
func (ec *EntryController) UpdateEntry(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid ID"})
	}

	var req entryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if req.Income <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "الرجاء التأكد من إدخال الدخل بشكل صحيح.",
		})
	}

	result := ec.DB.Model(&Models.Entry{}).Where("id = ?", uint(id)).
		Updates(map[string]interface{}{"income": req.Income, "details": req.Details})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "خطأ في تحديث الدخل",
		})
	}

	return c.JSON(fiber.Map{"message": "تم تحديث الدخل بنجاح"})
}

// DeleteEntry removes one entry.
// DELETE /api/entries/:id
func (ec *EntryController) DeleteEntry(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid ID"})
	}

	if err := ec.DB.Unscoped().Delete(&Models.Entry{}, uint(id)).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "خطأ في حذف الدخل",
		})
	}

	return c.JSON(fiber.Map{"message": "تم حذف الدخل بنجاح"})
}

// GetEmployeeEntries lists one employee's income entries.
// GET /api/employees/:id/entries
func (ec *EntryController) GetEmployeeEntries(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid ID"})
	}

	entries := []Models.Entry{}
	if err := ec.DB.Where("employee_id = ?", uint(id)).Order("created_at DESC").Find(&entries).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "خطأ في جلب دخل الموظف",
		})
	}

	return c.JSON(entries)
}
