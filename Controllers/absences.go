package Controllers

import (
	"Warsha/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AbsenceController struct {
	DB *gorm.DB
}

func NewAbsenceController(db *gorm.DB) *AbsenceController {
	return &AbsenceController{DB: db}
}

type absenceRequest struct {
	EmployeeID uint   `json:"employee_id"`
	Date       string `json:"date"`
	Reason     string `json:"reason"`
}

// POST /api/absences
func (ac *AbsenceController) CreateAbsence(c *fiber.Ctx) error {
	var req absenceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if req.EmployeeID == 0 || req.Date == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "الرجاء إدخال الموظف والتاريخ.",
		})
	}

	absence := Models.Absence{
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
		Reason:     req.Reason,
	}
	if err := ac.DB.Create(&absence).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "خطأ في تسجيل الغياب",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "تم تسجيل الغياب بنجاح",
		"id":      absence.ID,
	})
}

// GetAbsences lists absences, optionally filtered by date range and employee.
// GET /api/absences?from=&to=&employee_id=
func (ac *AbsenceController) GetAbsences(c *fiber.Ctx) error {
	query := ac.DB.Model(&Models.Absence{}).
		Select("absences.*, employees.name AS employee_name").
		Joins("JOIN employees ON absences.employee_id = employees.id")

	if from := c.Query("from"); from != "" {
		query = query.Where("absences.date >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		query = query.Where("absences.date <= ?", to)
	}
	if employeeID := c.Query("employee_id"); employeeID != "" {
		query = query.Where("absences.employee_id = ?", employeeID)
	}

	absences := []Models.Absence{}
	if err := query.Order("absences.date DESC").Scan(&absences).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "خطأ في جلب سجل الغياب",
		})
	}

	return c.JSON(absences)
}
