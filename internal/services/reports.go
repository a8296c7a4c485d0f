package services

import (
	"gorm.io/gorm"

	"github.com/example/lavega/internal/models"
)

// UncategorizedName is the synthetic bucket for products without a
// category mapping. Its sort key places it after every real category.
const (
	UncategorizedName  = "Sin Categoría"
	uncategorizedOrder = 999
)

// ReportService computes the shopping list and picking manifest for a
// delivery date.
type ReportService struct {
	db *gorm.DB
}

// NewReportService constructs ReportService.
func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

// ShoppingItem is one product line of the shopping list with quantities
// summed across all pending orders for the date.
type ShoppingItem struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

// ShoppingSection groups shopping-list products under one category.
type ShoppingSection struct {
	Category string         `json:"category"`
	Products []ShoppingItem `json:"products"`
}

// ShoppingList aggregates line items of pending orders due on the given
// date. Sections come back ordered by category display order (name as tie
// break) with "Sin Categoría" last; products are alphabetical within a
// section.
func (s *ReportService) ShoppingList(date string) ([]ShoppingSection, error) {
	var rows []struct {
		Product       string
		TotalQuantity int
		Category      string
		CategoryOrder int
	}

	err := s.db.Raw(`
		SELECT li.product,
		       SUM(li.quantity)              AS total_quantity,
		       COALESCE(c.name, ?)           AS category,
		       COALESCE(c.display_order, ?)  AS category_order
		FROM line_items li
		JOIN orders o ON li.order_id = o.id
		LEFT JOIN product_categories pc ON li.product = pc.product
		LEFT JOIN categories c ON pc.category_id = c.id
		WHERE o.delivery_date = ? AND o.status = ?
		GROUP BY li.product, c.name, c.display_order
		ORDER BY category_order, category, li.product`,
		UncategorizedName, uncategorizedOrder, date, models.StatusPending,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	var sections []ShoppingSection
	for _, row := range rows {
		if len(sections) == 0 || sections[len(sections)-1].Category != row.Category {
			sections = append(sections, ShoppingSection{Category: row.Category})
		}
		last := &sections[len(sections)-1]
		last.Products = append(last.Products, ShoppingItem{
			Product:  row.Product,
			Quantity: row.TotalQuantity,
		})
	}

	return sections, nil
}

// PickingManifest lists pending orders due on the given date with their
// full item lists, ordered by delivery date then order number. Quantities
// are listed per order, never summed across orders.
func (s *ReportService) PickingManifest(date string) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Preload("Items").
		Where("delivery_date = ? AND status = ?", date, models.StatusPending).
		Order("delivery_date, order_number").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// PendingDates returns each delivery date that still has pending orders,
// with the number of orders due, ascending by date.
func (s *ReportService) PendingDates() ([]DateCount, error) {
	var dates []DateCount
	err := s.db.Model(&models.Order{}).
		Select("delivery_date AS date, COUNT(*) AS count").
		Where("status = ?", models.StatusPending).
		Group("delivery_date").
		Order("delivery_date").
		Scan(&dates).Error
	if err != nil {
		return nil, err
	}
	return dates, nil
}

// DateCount pairs a delivery date with its pending order count.
type DateCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}
