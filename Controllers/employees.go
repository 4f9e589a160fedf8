package Controllers

import (
	"strconv"

	"Warsha/Models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type EmployeeController struct {
	DB *gorm.DB
}

func NewEmployeeController(db *gorm.DB) *EmployeeController {
	return &EmployeeController{DB: db}
}

// EmployeeSummary is the admin listing row: employee plus account name and
// income/withdrawal aggregates.
type EmployeeSummary struct {
	ID              uint    `json:"id"`
	Name            string  `json:"name"`
	Target          float64 `json:"target"`
	BaseSalary      float64 `json:"base_salary"`
	HideIncome      bool    `json:"hide_income"`
	SectionID       *uint   `json:"section_id"`
	SectionName     string  `json:"section_name"`
	Username        string  `json:"username"`
	TotalIncome     float64 `json:"total_income"`
	TotalWithdrawal float64 `json:"total_withdrawal"`
}

// CreateEmployee adds the employee and their login account in one transaction.
// POST /api/employees
func (ec *EmployeeController) CreateEmployee(c *fiber.Ctx) error {
	var req Models.EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "الرجاء إدخال جميع البيانات المطلوبة.",
		})
	}

	passwordByte, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "خطأ في إضافة الموظف",
		})
	}

	employee := Models.Employee{
		Name:       req.Name,
		SectionID:  &req.SectionID,
		Target:     req.Target,
		BaseSalary: req.BaseSalary,
		HideIncome: req.HideIncome,
		IsActive:   true,
	}

	txErr := ec.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&employee).Error; err != nil {
			return err
		}
		user := Models.User{
			EmployeeID: &employee.ID,
			Name:       req.Name,
			Username:   req.Username,
			Password:   passwordByte,
			Permission: 1,
		}
		return tx.Create(&user).Error
	})
	if txErr != nil {
		if isUniqueViolation(txErr) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "اسم المستخدم موجود بالفعل.",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "خطأ في إضافة الموظف",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "تمت إضافة الموظف بنجاح",
		"id":      employee.ID,
	})
}

// UpdateEmployee edits the employee row and, when a linked account exists, its
// username and password. The seeded admin has no employee link and is skipped.
// PUT /api/employees/:id
func (ec *EmployeeController) UpdateEmployee(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid ID"})
	}

	var employee Models.Employee
	if err := ec.DB.First(&employee, uint(id)).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "لم يتم العثور على الموظف"})
	}

	var req Models.EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	employee.Name = req.Name
	if req.SectionID != 0 {
		employee.SectionID = &req.SectionID
	}
	employee.Target = req.Target
	employee.BaseSalary = req.BaseSalary
	employee.HideIncome = req.HideIncome

	txErr := ec.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&employee).Error; err != nil {
			return err
		}

		var user Models.User
		if err := tx.Where("employee_id = ?", employee.ID).First(&user).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil
			}
			return err
		}

		user.Name = req.Name
		if req.Username != "" {
			user.Username = req.Username
		}
		if req.Password != "" {
			passwordByte, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			user.Password = passwordByte
		}
		return tx.Save(&user).Error
	})
	if txErr != nil {
		if isUniqueViolation(txErr) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "اسم المستخدم موجود بالفعل.",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "خطأ في تحديث بيانات الموظف",
		})
	}

	return c.JSON(fiber.Map{"message": "تم تحديث بيانات الموظف بنجاح"})
}

// DeleteEmployee hard-deletes the employee and everything tied to them.
// DELETE /api/employees/:id
func (ec *EmployeeController) DeleteEmployee(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid ID"})
	}

	txErr := ec.DB.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&Models.Entry{}, &Models.Withdrawal{}, &Models.Absence{},
			&Models.LeaveRequest{}, &Models.Attendance{}, &Models.Message{},
		} {
			if err := tx.Unscoped().Where("employee_id = ?", uint(id)).Delete(model).Error; err != nil {
				return err
			}
		}
		if err := tx.Unscoped().Where("employee_id = ?", uint(id)).Delete(&Models.User{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&Models.Employee{}, uint(id)).Error
	})
	if txErr != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "خطأ في حذف الموظف",
		})
	}

	return c.JSON(fiber.Map{"message": "تم حذف الموظف وجميع بياناته بنجاح"})
}

// GetEmployees lists active employees with their performance summary.
// GET /api/employees
func (ec *EmployeeController) GetEmployees(c *fiber.Ctx) error {
	summaries := []EmployeeSummary{}
	err := ec.DB.Model(&Models.Employee{}).
		Select(`employees.id, employees.name, employees.target, employees.base_salary,
			employees.hide_income, employees.section_id,
			sections.name AS section_name, users.username,
			(SELECT COALESCE(SUM(income), 0) FROM entries WHERE entries.employee_id = employees.id AND entries.deleted_at IS NULL) AS total_income,
			(SELECT COALESCE(SUM(amount), 0) FROM withdrawals WHERE withdrawals.employee_id = employees.id AND withdrawals.status = 'approved' AND withdrawals.deleted_at IS NULL) AS total_withdrawal`).
		Joins("LEFT JOIN sections ON employees.section_id = sections.id").
		Joins("LEFT JOIN users ON users.employee_id = employees.id").
		Where("employees.is_active = ?", true).
		Order("employees.id").
		Scan(&summaries).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "خطأ في جلب بيانات الموظفين",
		})
	}

	return c.JSON(summaries)
}

// GetEmployeeStats returns the employee page payload. When the hide-income
// flag is set, the income total is replaced by -1 and entries are withheld.
// GET /api/employees/:id/stats
func (ec *EmployeeController) GetEmployeeStats(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid ID"})
	}

	var employee Models.Employee
	if err := ec.DB.Preload("Section").Where("is_active = ?", true).First(&employee, uint(id)).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "لم يتم العثور على الموظف أو أنه غير نشط.",
		})
	}

	var totalIncome float64
	ec.DB.Model(&Models.Entry{}).Where("employee_id = ?", employee.ID).
		Select("COALESCE(SUM(income), 0)").Scan(&totalIncome)

	var totalWithdrawal float64
	ec.DB.Model(&Models.Withdrawal{}).
		Where("employee_id = ? AND status = ?", employee.ID, Models.StatusApproved).
		Select("COALESCE(SUM(amount), 0)").Scan(&totalWithdrawal)

	withdrawals := []Models.Withdrawal{}
	ec.DB.Where("employee_id = ?", employee.ID).Order("created_at DESC").Find(&withdrawals)

	absences := []Models.Absence{}
	ec.DB.Where("employee_id = ?", employee.ID).Order("date DESC").Find(&absences)

	if employee.HideIncome {
		return c.JSON(fiber.Map{
			"info":             employee,
			"total_income":     -1,
			"total_withdrawal": totalWithdrawal,
			"entries":          []Models.Entry{},
			"withdrawals":      withdrawals,
			"absences":         absences,
			"income_hidden":    true,
		})
	}

	entries := []Models.Entry{}
	ec.DB.Where("employee_id = ?", employee.ID).Order("created_at DESC").Find(&entries)

	return c.JSON(fiber.Map{
		"info":             employee,
		"total_income":     totalIncome,
		"total_withdrawal": totalWithdrawal,
		"entries":          entries,
		"withdrawals":      withdrawals,
		"absences":         absences,
		"income_hidden":    false,
	})
}

// GetSections lists the workshop sections.
// GET /api/sections
func (ec *EmployeeController) GetSections(c *fiber.Ctx) error {
	sections := []Models.Section{}
	if err := ec.DB.Order("id").Find(&sections).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "خطأ في جلب الأقسام",
		})
	}

	return c.JSON(sections)
}

// SectionSummary aggregates headcount, target and income per section.
type SectionSummary struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	EmployeeCount int     `json:"employee_count"`
	TotalTarget   float64 `json:"total_target"`
	TotalIncome   float64 `json:"total_income"`
}

// GetSectionsSummary returns per-section aggregates for the dashboard.
// GET /api/sections/summary
func (ec *EmployeeController) GetSectionsSummary(c *fiber.Ctx) error {
	summaries := []SectionSummary{}
	err := ec.DB.Model(&Models.Section{}).
		Select(`sections.id, sections.name,
			COUNT(employees.id) AS employee_count,
			COALESCE(SUM(employees.target), 0) AS total_target,
			(SELECT COALESCE(SUM(income), 0) FROM entries
				JOIN employees e2 ON entries.employee_id = e2.id
				WHERE e2.section_id = sections.id AND e2.is_active = 1 AND entries.deleted_at IS NULL) AS total_income`).
		Joins("LEFT JOIN employees ON sections.id = employees.section_id AND employees.is_active = 1 AND employees.deleted_at IS NULL").
		Group("sections.id").
		Order("sections.id").
		Scan(&summaries).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "خطأ في جلب ملخص الأقسام",
		})
	}

	return c.JSON(summaries)
}
