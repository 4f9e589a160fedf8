package Controllers

import (
	"strconv"

	"Warsha/Models"
	"Warsha/Seeder"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// BundleController manages the named item templates used to pre-fill a draft
// inspection's line items.
type BundleController struct {
	DB *gorm.DB
}

func NewBundleController(db *gorm.DB) *BundleController {
	return &BundleController{DB: db}
}

// GetBundles returns every bundle with its nested items.
// GET /api/inspection-bundles
func (bc *BundleController) GetBundles(c *fiber.Ctx) error {
	bundles := []Models.InspectionBundle{}
	if err := bc.DB.Preload("Items").Order("id").Find(&bundles).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Database error",
			"message": err.Error(),
		})
	}

	return c.JSON(bundles)
}

// CreateBundle persists a bundle and its items atomically.
// POST /api/inspection-bundles
func (bc *BundleController) CreateBundle(c *fiber.Ctx) error {
	var req Models.BundleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid request body",
			"message": err.Error(),
		})
	}

	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"message": "name is required",
		})
	}

	bundle := Models.InspectionBundle{
		Name:  req.Name,
		Icon:  req.Icon,
		Items: bundleItems(req.Items),
	}

	if err := bc.DB.Create(&bundle).Error; err != nil {
		if isUniqueViolation(err) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "A bundle with this name already exists",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to create bundle",
			"message": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Bundle created successfully",
		"id":      bundle.ID,
	})
}

// UpdateBundle overwrites the name and icon and replaces the item list.
// PUT /api/inspection-bundles/:id
func (bc *BundleController) UpdateBundle(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid ID",
			"message": "ID must be a valid number",
		})
	}

	var bundle Models.InspectionBundle
	if err := bc.DB.First(&bundle, uint(id)).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Bundle not found",
		})
	}

	var req Models.BundleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid request body",
			"message": err.Error(),
		})
	}

	bundle.Name = req.Name
	bundle.Icon = req.Icon

	txErr := bc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&bundle).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("bundle_id = ?", bundle.ID).Delete(&Models.InspectionBundleItem{}).Error; err != nil {
			return err
		}
		for _, item := range bundleItems(req.Items) {
			item.BundleID = bundle.ID
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		if isUniqueViolation(txErr) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "A bundle with this name already exists",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to update bundle",
			"message": txErr.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Bundle updated successfully",
		"id":      bundle.ID,
	})
}

// DeleteBundle removes the bundle; its items go with it.
// DELETE /api/inspection-bundles/:id
func (bc *BundleController) DeleteBundle(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid ID",
			"message": "ID must be a valid number",
		})
	}

	var bundle Models.InspectionBundle
	if err := bc.DB.First(&bundle, uint(id)).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Bundle not found",
		})
	}

	txErr := bc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("bundle_id = ?", bundle.ID).Delete(&Models.InspectionBundleItem{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&bundle).Error
	})
	if txErr != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to delete bundle",
			"message": txErr.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Bundle deleted successfully",
	})
}

// RegenerateBundles rebuilds the periodic-maintenance range, replacing any
// existing periodic bundles. Explicit and admin-only; startup only seeds when
// nothing exists yet.
// POST /api/inspection-bundles/regenerate
func (bc *BundleController) RegenerateBundles(c *fiber.Ctx) error {
	if err := Seeder.RegeneratePeriodicBundles(bc.DB); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to regenerate bundles",
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Periodic maintenance bundles regenerated",
	})
}

func bundleItems(items []Models.BundleItemRequest) []Models.InspectionBundleItem {
	rows := make([]Models.InspectionBundleItem, 0, len(items))
	for _, item := range items {
		if item.ServiceDescription == "" {
			continue
		}
		rows = append(rows, Models.InspectionBundleItem{
			ServiceDescription: item.ServiceDescription,
			Category:           item.Category,
		})
	}
	return rows
}
