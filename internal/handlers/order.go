package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/lavega/internal/models"
	"github.com/example/lavega/internal/services"
	"github.com/example/lavega/internal/utils"
)

// OrderHandler manages order queries and lifecycle actions.
type OrderHandler struct {
	db      *gorm.DB
	reports *services.ReportService
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(db *gorm.DB) *OrderHandler {
	return &OrderHandler{db: db, reports: services.NewReportService(db)}
}

// ListOrders returns orders filtered by delivery date and/or status.
func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)
	query := h.db.Model(&models.Order{})

	if date := c.Query("date"); date != "" {
		query = query.Where("delivery_date = ?", date)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	var orders []models.Order
	if err := query.Preload("Items").
		Order("delivery_date, order_number").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&orders).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    orders,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

// PendingDates returns delivery dates that still have pending orders.
func (h *OrderHandler) PendingDates(c *fiber.Ctx) error {
	dates, err := h.reports.PendingDates()
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": dates})
}

// Stats returns the dashboard counters.
func (h *OrderHandler) Stats(c *fiber.Ctx) error {
	var pending int64
	if err := h.db.Model(&models.Order{}).
		Where("status = ?", models.StatusPending).
		Count(&pending).Error; err != nil {
		return err
	}

	var pendingDates int64
	if err := h.db.Model(&models.Order{}).
		Where("status = ?", models.StatusPending).
		Distinct("delivery_date").
		Count(&pendingDates).Error; err != nil {
		return err
	}

	today := time.Now().Format("2006-01-02")
	var dueToday int64
	if err := h.db.Model(&models.Order{}).
		Where("delivery_date = ? AND status = ?", today, models.StatusPending).
		Count(&dueToday).Error; err != nil {
		return err
	}

	var uncategorized int64
	if err := h.db.Raw(`
		SELECT COUNT(DISTINCT li.product)
		FROM line_items li
		LEFT JOIN product_categories pc ON li.product = pc.product
		WHERE pc.id IS NULL`).Scan(&uncategorized).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"pending_orders":         pending,
			"pending_dates":          pendingDates,
			"due_today":              dueToday,
			"uncategorized_products": uncategorized,
			"today":                  today,
		},
	})
}

// CompleteOrder marks a pending order as completed. The transition is
// one-directional; completing an already completed order is a no-op.
func (h *OrderHandler) CompleteOrder(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var order models.Order
	if err := h.db.First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "order not found")
		}
		return err
	}

	if order.Status != models.StatusCompleted {
		if err := h.db.Model(&order).
			Update("status", models.StatusCompleted).Error; err != nil {
			return err
		}
	}

	return c.JSON(fiber.Map{"success": true, "data": order})
}

// DeleteOrder removes an order and all of its line items.
func (h *OrderHandler) DeleteOrder(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&models.LineItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Order{}, "id = ?", id).Error
	})
	if err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
