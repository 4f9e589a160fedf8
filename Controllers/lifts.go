package Controllers

import (
	"time"

	"Warsha/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type LiftController struct {
	DB *gorm.DB
}

func NewLiftController(db *gorm.DB) *LiftController {
	return &LiftController{DB: db}
}

// GetLifts lists the floor board with assigned technician names.
// GET /api/lifts
func (lc *LiftController) GetLifts(c *fiber.Ctx) error {
	lifts := []Models.Lift{}
	err := lc.DB.Model(&Models.Lift{}).
		Select("lifts.*, employees.name AS technician_name").
		Joins("LEFT JOIN employees ON lifts.technician_id = employees.id").
		Order("lifts.id").
		Scan(&lifts).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "خطأ في جلب الرافعات",
		})
	}

	return c.JSON(lifts)
}

// UpdateLift applies a partial update to a lift. Absent fields keep their
// current value.
// PUT /api/lifts/:id
func (lc *LiftController) UpdateLift(c *fiber.Ctx) error {
	id := c.Params("id")

	var lift Models.Lift
	if err := lc.DB.First(&lift, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "الرافعة غير موجودة",
		})
	}

	var update Models.LiftUpdate
	if err := c.BodyParser(&update); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	changes := update.Changes()
	if len(changes) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "لا توجد بيانات للتحديث",
		})
	}

	if err := lc.DB.Model(&lift).Updates(changes).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "خطأ في تحديث الرافعة",
		})
	}

	return c.JSON(fiber.Map{"message": "تم تحديث الرافعة بنجاح"})
}

// ReleaseLift returns a lift to idle and clears its assignment.
// POST /api/lifts/:id/release
func (lc *LiftController) ReleaseLift(c *fiber.Ctx) error {
	id := c.Params("id")

	var lift Models.Lift
	if err := lc.DB.First(&lift, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "الرافعة غير موجودة",
		})
	}

	err := lc.DB.Model(&lift).Updates(map[string]interface{}{
		"status":            Models.LiftIdle,
		"technician_id":     nil,
		"issue_description": "",
		"last_updated":      time.Now(),
	}).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "خطأ في تحرير الرافعة",
		})
	}

	return c.JSON(fiber.Map{"message": "تم تحرير الرافعة بنجاح"})
}
