package Controllers

import (
	"strconv"

	"Warsha/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ServiceController manages the priced service catalog.
type ServiceController struct {
	DB *gorm.DB
}

func NewServiceController(db *gorm.DB) *ServiceController {
	return &ServiceController{DB: db}
}

// GetServices lists the catalog ordered by category then name.
// GET /api/services
func (sc *ServiceController) GetServices(c *fiber.Ctx) error {
	services := []Models.Service{}
	if err := sc.DB.Order("category, name").Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Database error",
			"message": err.Error(),
		})
	}

	return c.JSON(services)
}

// CreateService adds a catalog entry; (category, name) must be unique.
// POST /api/services
func (sc *ServiceController) CreateService(c *fiber.Ctx) error {
	var input Models.Service
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid request body",
			"message": err.Error(),
		})
	}

	if input.Name == "" || input.Category == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "category and name are required",
		})
	}

	service := Models.Service{
		Category: input.Category,
		Name:     input.Name,
		Price:    input.Price,
	}

	if err := sc.DB.Create(&service).Error; err != nil {
		if isUniqueViolation(err) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "A service with this name already exists in this category",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create service",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(service)
}

// UpdateService edits a catalog entry.
// PUT /api/services/:id
func (sc *ServiceController) UpdateService(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid service ID"})
	}

	var service Models.Service
	if err := sc.DB.First(&service, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found"})
	}

	var input Models.Service
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	service.Category = input.Category
	service.Name = input.Name
	service.Price = input.Price

	if err := sc.DB.Save(&service).Error; err != nil {
		if isUniqueViolation(err) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "A service with this name already exists in this category",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update service",
		})
	}

	return c.JSON(service)
}

// DeleteService removes a catalog entry.
// DELETE /api/services/:id
func (sc *ServiceController) DeleteService(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid service ID"})
	}

	var service Models.Service
	if err := sc.DB.First(&service, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found"})
	}

	// Hard delete so the (category, name) slot can be reused.
	if err := sc.DB.Unscoped().Delete(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete service",
		})
	}

	return c.JSON(fiber.Map{"message": "Service deleted successfully"})
}
