package Controllers

import (
	"strconv"
	"strings"

	"Warsha/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type MessageController struct {
	DB *gorm.DB
}

func NewMessageController(db *gorm.DB) *MessageController {
	return &MessageController{DB: db}
}

// GetMessages returns an employee's thread, oldest first.
// GET /api/messages/:employee_id
func (mc *MessageController) GetMessages(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("employee_id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid ID"})
	}

	messages := []Models.Message{}
	if err := mc.DB.Where("employee_id = ?", uint(id)).
		Order("created_at ASC").Find(&messages).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "خطأ في جلب الرسائل",
		})
	}

	return c.JSON(messages)
}

type messageRequest struct {
	EmployeeID uint   `json:"employee_id"`
	Sender     string `json:"sender"`
	Message    string `json:"message"`
}

// POST /api/messages
func (mc *MessageController) CreateMessage(c *fiber.Ctx) error {
	var req messageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if req.EmployeeID == 0 || strings.TrimSpace(req.Message) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "الرسالة فارغة",
		})
	}

	message := Models.Message{
		EmployeeID: req.EmployeeID,
		Sender:     req.Sender,
		Message:    strings.TrimSpace(req.Message),
	}
	if err := mc.DB.Create(&message).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "خطأ في إرسال الرسالة",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "تم إرسال الرسالة بنجاح",
		"id":      message.ID,
	})
}

// GetNotifications counts items awaiting admin action.
// GET /api/notifications
func (mc *MessageController) GetNotifications(c *fiber.Ctx) error {
	var pendingWithdrawals int64
	if err := mc.DB.Model(&Models.Withdrawal{}).
		Where("status = ?", Models.StatusPending).
		Count(&pendingWithdrawals).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "خطأ في جلب الإشعارات",
		})
	}

	var pendingLeaves int64
	if err := mc.DB.Model(&Models.LeaveRequest{}).
		Where("status = ?", Models.StatusPending).
		Count(&pendingLeaves).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "خطأ في جلب الإشعارات",
		})
	}

	return c.JSON(fiber.Map{
		"withdrawals": pendingWithdrawals,
		"leaves":      pendingLeaves,
		"total":       pendingWithdrawals + pendingLeaves,
	})
}
