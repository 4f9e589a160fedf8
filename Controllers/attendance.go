package Controllers

import (
	"strconv"
	"time"

	"Warsha/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

type attendanceRequest struct {
	EmployeeID uint `json:"employee_id"`
}

// CheckIn marks an employee present, once per calendar day.
// POST /api/attendance/check-in
func (ac *AttendanceController) CheckIn(c *fiber.Ctx) error {
	var req attendanceRequest
	if err := c.BodyParser(&req); err != nil || req.EmployeeID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	today := time.Now().Format("2006-01-02")

	var existing Models.Attendance
	err := ac.DB.Where("employee_id = ? AND date = ?", req.EmployeeID, today).
		First(&existing).Error
	if err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "تم تسجيل الحضور مسبقاً لهذا اليوم",
		})
	}
	if err != gorm.ErrRecordNotFound {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "خطأ في تسجيل الحضور",
		})
	}

	attendance := Models.Attendance{
		EmployeeID: req.EmployeeID,
		Date:       today,
		CheckIn:    time.Now(),
		Status:     "present",
	}
	if err := ac.DB.Create(&attendance).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "خطأ في تسجيل الحضور",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "تم تسجيل الحضور بنجاح",
	})
}

// CheckOut closes today's attendance record.
// POST /api/attendance/check-out
func (ac *AttendanceController) CheckOut(c *fiber.Ctx) error {
	var req attendanceRequest
	if err := c.BodyParser(&req); err != nil || req.EmployeeID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	today := time.Now().Format("2006-01-02")

	var attendance Models.Attendance
	err := ac.DB.Where("employee_id = ? AND date = ?", req.EmployeeID, today).
		First(&attendance).Error
	if err == gorm.ErrRecordNotFound {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "يجب تسجيل الحضور أولاً",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "خطأ في تسجيل الانصراف",
		})
	}

	if attendance.CheckOut != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "تم تسجيل الانصراف مسبقاً",
		})
	}

	now := time.Now()
	if err := ac.DB.Model(&attendance).Update("check_out", &now).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "خطأ في تسجيل الانصراف",
		})
	}

	return c.JSON(fiber.Map{"message": "تم تسجيل الانصراف بنجاح"})
}

// GetStatus reports today's attendance for an employee, or not_marked.
// GET /api/attendance/status/:employee_id
func (ac *AttendanceController) GetStatus(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("employee_id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid ID"})
	}

	today := time.Now().Format("2006-01-02")

	var attendance Models.Attendance
	err = ac.DB.Where("employee_id = ? AND date = ?", uint(id), today).
		First(&attendance).Error
	if err == gorm.ErrRecordNotFound {
		return c.JSON(fiber.Map{"status": "not_marked"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "خطأ في جلب حالة الحضور",
		})
	}

	return c.JSON(attendance)
}
