package Controllers

import (
	"fmt"
	"strconv"

	"Warsha/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type LeaveController struct {
	DB *gorm.DB
}

func NewLeaveController(db *gorm.DB) *LeaveController {
	return &LeaveController{DB: db}
}

type leaveRequestBody struct {
	EmployeeID uint   `json:"employee_id"`
	LeaveType  string `json:"leave_type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Reason     string `json:"reason"`
}

// CreateLeaveRequest files a leave request. The day count excludes the
// Friday/Saturday weekend, and every request is capped by the yearly balance.
// POST /api/leave-requests
func (lc *LeaveController) CreateLeaveRequest(c *fiber.Ctx) error {
	var req leaveRequestBody
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if req.EmployeeID == 0 || req.StartDate == "" || req.EndDate == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "الرجاء إدخال جميع البيانات المطلوبة.",
		})
	}

	daysCount := Models.BusinessDaysBetween(req.StartDate, req.EndDate)
	if daysCount <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "التواريخ غير صحيحة",
		})
	}

	leaveType := req.LeaveType
	if leaveType == "" {
		leaveType = "annual"
	}

	// The yearly balance caps every request, whatever its type.
	balance, err := Models.GetLeaveBalance(lc.DB, req.EmployeeID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "خطأ في حساب رصيد الإجازات",
		})
	}
	if daysCount > balance.Remaining {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": fmt.Sprintf("رصيدك غير كافٍ. المتبقي: %d يوم", balance.Remaining),
		})
	}

	leave := Models.LeaveRequest{
		EmployeeID: req.EmployeeID,
		LeaveType:  leaveType,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		DaysCount:  daysCount,
		Reason:     req.Reason,
		Status:     Models.StatusPending,
	}
	if err := lc.DB.Create(&leave).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "خطأ في تقديم طلب الإجازة",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "تم تقديم طلب الإجازة بنجاح",
		"id":         leave.ID,
		"days_count": daysCount,
	})
}

// GetLeaveRequests lists requests with employee and section names, optionally
// filtered by status and employee.
// GET /api/leave-requests?status=&employee_id=
func (lc *LeaveController) GetLeaveRequests(c *fiber.Ctx) error {
	query := lc.DB.Model(&Models.LeaveRequest{}).
		Select("leave_requests.*, employees.name AS employee_name, sections.name AS section_name").
		Joins("JOIN employees ON leave_requests.employee_id = employees.id").
		Joins("LEFT JOIN sections ON employees.section_id = sections.id")

	if status := c.Query("status"); status != "" {
		query = query.Where("leave_requests.status = ?", status)
	}
	if employeeID := c.Query("employee_id"); employeeID != "" {
		query = query.Where("leave_requests.employee_id = ?", employeeID)
	}

	requests := []Models.LeaveRequest{}
	if err := query.Order("leave_requests.created_at DESC").Scan(&requests).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "خطأ في جلب طلبات الإجازات",
		})
	}

	return c.JSON(requests)
}

// GET /api/leave-requests/employee/:id
func (lc *LeaveController) GetEmployeeLeaveRequests(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid ID"})
	}

	requests := []Models.LeaveRequest{}
	if err := lc.DB.Where("employee_id = ?", uint(id)).
		Order("created_at DESC").Find(&requests).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "خطأ في جلب طلبات الإجازات",
		})
	}

	return c.JSON(requests)
}

type leaveStatusRequest struct {
	Status     string `json:"status"`
	AdminNotes string `json:"admin_notes"`
}

// UpdateLeaveStatus approves or rejects a leave request.
// PUT /api/leave-requests/:id
func (lc *LeaveController) UpdateLeaveStatus(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid ID"})
	}

	var req leaveStatusRequest
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

	var leave Models.LeaveRequest
	if err := lc.DB.First(&leave, uint(id)).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "طلب الإجازة غير موجود",
		})
	}

	leave.Status = req.Status
	leave.AdminNotes = req.AdminNotes
	if err := lc.DB.Save(&leave).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "خطأ في تحديث طلب الإجازة",
		})
	}

	return c.JSON(fiber.Map{"message": "تم تحديث طلب الإجازة بنجاح"})
}

// GET /api/leave-balance/:employee_id
func (lc *LeaveController) GetLeaveBalance(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("employee_id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid ID"})
	}

	balance, err := Models.GetLeaveBalance(lc.DB, uint(id))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "خطأ في حساب رصيد الإجازات",
		})
	}

	return c.JSON(balance)
}

type employeeLeaveBalance struct {
	EmployeeID   uint   `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Total        int    `json:"total"`
	Used         int    `json:"used"`
	Remaining    int    `json:"remaining"`
}

// GetLeaveBalances reports the annual balance of every active employee.
// GET /api/leave-balances
func (lc *LeaveController) GetLeaveBalances(c *fiber.Ctx) error {
	employees := []Models.Employee{}
	if err := lc.DB.Where("is_active = ?", true).Order("name").Find(&employees).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "خطأ في جلب الموظفين",
		})
	}

	balances := make([]employeeLeaveBalance, 0, len(employees))
	for _, employee := range employees {
		balance, err := Models.GetLeaveBalance(lc.DB, employee.ID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "خطأ في حساب رصيد الإجازات",
			})
		}
		balances = append(balances, employeeLeaveBalance{
			EmployeeID:   employee.ID,
			EmployeeName: employee.Name,
			Total:        balance.Total,
			Used:         balance.Used,
			Remaining:    balance.Remaining,
		})
	}

	return c.JSON(balances)
}
