package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/example/lavega/internal/models"
)

// CatalogHandler manages categories and product mappings.
type CatalogHandler struct {
	db *gorm.DB
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(db *gorm.DB) *CatalogHandler {
	return &CatalogHandler{db: db}
}

// ListCategories returns all categories ordered for display.
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	var categories []models.Category
	if err := h.db.Order("display_order, name").Find(&categories).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": categories})
}

type createCategoryRequest struct {
	Name string `json:"name"`
}

// CreateCategory persists a new category at the end of the display order.
func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	var req createCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name is required")
	}

	var maxOrder int
	if err := h.db.Model(&models.Category{}).
		Select("COALESCE(MAX(display_order), 0)").
		Scan(&maxOrder).Error; err != nil {
		return err
	}

	category := models.Category{Name: req.Name, DisplayOrder: maxOrder + 1}
	if err := h.db.Create(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fiber.NewError(fiber.StatusConflict, "category already exists")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": category})
}

// UncategorizedProducts lists distinct line-item products that have no
// category mapping yet.
func (h *CatalogHandler) UncategorizedProducts(c *fiber.Ctx) error {
	var products []string
	err := h.db.Raw(`
		SELECT DISTINCT li.product
		FROM line_items li
		LEFT JOIN product_categories pc ON li.product = pc.product
		WHERE pc.id IS NULL
		ORDER BY li.product`).Scan(&products).Error
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": products})
}

type assignCategoryRequest struct {
	Product    string `json:"product"`
	CategoryID string `json:"category_id"`
}

// AssignCategory maps a product to a category, replacing any previous
// mapping for that product.
func (h *CatalogHandler) AssignCategory(c *fiber.Ctx) error {
	var req assignCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Product == "" {
		return fiber.NewError(fiber.StatusBadRequest, "product is required")
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid category_id")
	}

	var category models.Category
	if err := h.db.First(&category, "id = ?", categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "category not found")
		}
		return err
	}

	mapping := models.ProductCategory{Product: req.Product, CategoryID: categoryID}
	if err := h.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "product"}},
		DoUpdates: clause.AssignmentColumns([]string{"category_id", "updated_at"}),
	}).Create(&mapping).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": mapping})
}
