package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/lavega/internal/services"
	"github.com/example/lavega/internal/shopify"
)

// ImportHandler ingests Shopify export uploads.
type ImportHandler struct {
	ingest *services.IngestService
}

// NewImportHandler constructs ImportHandler.
func NewImportHandler(db *gorm.DB) *ImportHandler {
	return &ImportHandler{ingest: services.NewIngestService(db)}
}

// Upload parses a multipart CSV export and runs it through the
// deduplication gate. A malformed order inside the file only affects that
// order; the rest of the batch still goes through.
func (h *ImportHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "file is required")
	}

	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".csv") {
		return fiber.NewError(fiber.StatusBadRequest, "file must be a CSV")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not read uploaded file")
	}
	defer file.Close()

	orders, err := shopify.ParseExport(file)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not parse export: "+err.Error())
	}

	summary, err := h.ingest.Ingest(orders)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": summary})
}
