package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/lavega/internal/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler serves the shopping list and picking manifest.
type ReportHandler struct {
	reports *services.ReportService
}

// NewReportHandler constructs ReportHandler.
func NewReportHandler(db *gorm.DB) *ReportHandler {
	return &ReportHandler{reports: services.NewReportService(db)}
}

// ShoppingList returns the aggregated shopping list for a date.
func (h *ReportHandler) ShoppingList(c *fiber.Ctx) error {
	sections, err := h.reports.ShoppingList(c.Params("date"))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": sections})
}

// DownloadShoppingList streams the shopping list as an xlsx file.
func (h *ReportHandler) DownloadShoppingList(c *fiber.Ctx) error {
	date := c.Params("date")
	sections, err := h.reports.ShoppingList(date)
	if err != nil {
		return err
	}

	document, err := services.ShoppingListWorkbook(date, sections)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="lista_compras_%s.xlsx"`, date))
	return c.Send(document)
}

// DownloadPickingManifest streams the per-order picking sheets as an xlsx
// file.
func (h *ReportHandler) DownloadPickingManifest(c *fiber.Ctx) error {
	date := c.Params("date")
	orders, err := h.reports.PickingManifest(date)
	if err != nil {
		return err
	}

	document, err := services.PickingWorkbook(date, orders)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="pedidos_armado_%s.xlsx"`, date))
	return c.Send(document)
}
