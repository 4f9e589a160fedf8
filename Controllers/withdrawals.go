package Controllers

import (
	"fmt"
	"strconv"
	"time"

	"Warsha/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type WithdrawalController struct {
	DB *gorm.DB
}

func NewWithdrawalController(db *gorm.DB) *WithdrawalController {
	return &WithdrawalController{DB: db}
}

type withdrawalRequest struct {
	EmployeeID uint    `json:"employee_id"`
	Amount     float64 `json:"amount"`
	Reason     string  `json:"reason"`
	Date       string  `json:"date"`
	Status     string  `json:"status"`
}

// CreateWithdrawal records a withdrawal; employee requests default to pending.
// POST /api/withdrawals
func (wc *WithdrawalController) CreateWithdrawal(c *fiber.Ctx) error {
	var req withdrawalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if req.EmployeeID == 0 || req.Amount <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "الرجاء التأكد من إدخال المبلغ بشكل صحيح.",
		})
	}

	withdrawal := Models.Withdrawal{
		EmployeeID: req.EmployeeID,
		Amount:     req.Amount,
		Reason:     req.Reason,
		Status:     req.Status,
		Date:       req.Date,
	}
	if withdrawal.Status == "" {
		withdrawal.Status = Models.StatusPending
	}
	if withdrawal.Date == "" {
		withdrawal.Date = time.Now().Format("2006-01-02")
	}

	if err := wc.DB.Create(&withdrawal).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "خطأ في تسجيل السحب",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "تم تسجيل السحب بنجاح",
		"id":      withdrawal.ID,
	})
}

type withdrawalStatusRequest struct {
	Status    string `json:"status"`
	AdminNote string `json:"admin_note"`
}

// UpdateWithdrawalStatus approves or rejects a withdrawal.
// PUT /api/withdrawals/:id/status
func (wc *WithdrawalController) UpdateWithdrawalStatus(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid ID"})
	}

	var req withdrawalStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if req.Status != Models.StatusApproved && req.Status != Models.StatusRejected {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "حالة غير صالحة.",
		})
	}

	result := wc.DB.Model(&Models.Withdrawal{}).Where("id = ?", uint(id)).
		Updates(map[string]interface{}{"status": req.Status, "admin_note": req.AdminNote})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "خطأ في تحديث حالة السحب",
		})
	}

	return c.JSON(fiber.Map{"message": "تم تحديث حالة السحب بنجاح"})
}

// GetPendingWithdrawals lists pending withdrawals with employee names.
// GET /api/withdrawals/pending
func (wc *WithdrawalController) GetPendingWithdrawals(c *fiber.Ctx) error {
	return wc.listWithdrawals(c, wc.DB.Where("withdrawals.status = ?", Models.StatusPending))
}

// GetAllWithdrawals lists the full withdrawal history.
// GET /api/withdrawals
func (wc *WithdrawalController) GetAllWithdrawals(c *fiber.Ctx) error {
	return wc.listWithdrawals(c, wc.DB)
}

func (wc *WithdrawalController) listWithdrawals(c *fiber.Ctx, scope *gorm.DB) error {
	withdrawals := []Models.Withdrawal{}
	err := scope.Model(&Models.Withdrawal{}).
		Select("withdrawals.*, employees.name AS employee_name").
		Joins("JOIN employees ON withdrawals.employee_id = employees.id").
		Order("withdrawals.created_at DESC").
		Scan(&withdrawals).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "خطأ في جلب سجل السحوبات",
		})
	}

	return c.JSON(withdrawals)
}

// GetEmployeeWithdrawals lists one employee's withdrawals.
// GET /api/employees/:id/withdrawals
func (wc *WithdrawalController) GetEmployeeWithdrawals(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid ID"})
	}

	withdrawals := []Models.Withdrawal{}
	if err := wc.DB.Where("employee_id = ?", uint(id)).Order("date DESC").Find(&withdrawals).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "خطأ في جلب سحوبات الموظف",
		})
	}

	return c.JSON(withdrawals)
}

type batchWithdrawalRequest struct {
	EmployeeIDs []uint  `json:"employee_ids"`
	Amount      float64 `json:"amount"`
	Reason      string  `json:"reason"`
	Date        string  `json:"date"`
}

// CreateBatchWithdrawals records one approved withdrawal per listed employee,
// all or nothing.
// POST /api/withdrawals/batch
func (wc *WithdrawalController) CreateBatchWithdrawals(c *fiber.Ctx) error {
	var req batchWithdrawalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if len(req.EmployeeIDs) == 0 || req.Amount <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "بيانات غير صالحة.",
		})
	}

	date := req.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	txErr := wc.DB.Transaction(func(tx *gorm.DB) error {
		for _, employeeID := range req.EmployeeIDs {
			withdrawal := Models.Withdrawal{
				EmployeeID: employeeID,
				Amount:     req.Amount,
				Reason:     req.Reason,
				Date:       date,
				Status:     Models.StatusApproved,
			}
			if err := tx.Create(&withdrawal).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "خطأ في إضافة السحوبات الجماعية",
		})
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("تم إضافة السحوبات لـ %d موظف بنجاح", len(req.EmployeeIDs)),
	})
}
