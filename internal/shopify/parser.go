package shopify

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/example/lavega/internal/models"
)

// createdAtLayout is the timestamp format Shopify uses in the "Created at"
// column, once the trailing timezone offset is stripped.
const createdAtLayout = "2006-01-02 15:04:05"

// ParseExport reads a Shopify order export and folds its line-item rows
// into one candidate order per distinct order number, preserving the order
// numbers' first appearance. Rows with an empty "Name" column are skipped;
// the first row of an order establishes its scalar fields and later rows
// only contribute their line item.
func ParseExport(r io.Reader) ([]models.Order, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	// Excel exports prefix the first header cell with a UTF-8 BOM.
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}

	var (
		orders []models.Order
		index  = make(map[string]int)
	)

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		field := func(name string) string {
			i, ok := columns[name]
			if !ok || i >= len(record) {
				return ""
			}
			return record[i]
		}

		orderNumber := field("Name")
		if orderNumber == "" {
			continue
		}

		pos, seen := index[orderNumber]
		if !seen {
			notes := ExtractNoteFields(field("Note Attributes"))

			customerName := field("Shipping Name")
			if customerName == "" {
				customerName = field("Billing Name")
			}
			phone := field("Phone")
			if phone == "" {
				phone = field("Shipping Phone")
			}

			order := models.Order{
				OrderNumber:  orderNumber,
				Email:        field("Email"),
				Commune:      notes.Commune,
				DeliveryDate: notes.DeliveryDate,
				CustomerName: customerName,
				Address:      field("Shipping Address1"),
				Phone:        phone,
				Total:        parseFloat(field("Total")),
				PlacedAt:     parseCreatedAt(field("Created at")),
				Status:       models.StatusPending,
			}

			pos = len(orders)
			index[orderNumber] = pos
			orders = append(orders, order)
		}

		if product := field("Lineitem name"); product != "" {
			orders[pos].Items = append(orders[pos].Items, models.LineItem{
				Product:  product,
				Quantity: parseQuantity(field("Lineitem quantity")),
				Price:    parseFloat(field("Lineitem price")),
				SKU:      field("Lineitem sku"),
			})
		}
	}

	return orders, nil
}

// parseCreatedAt parses the export timestamp, dropping a trailing
// " -0400" / " +0000" style offset. An unparseable value is tolerated and
// leaves the timestamp unset.
func parseCreatedAt(value string) *time.Time {
	if value == "" {
		return nil
	}

	if i := strings.Index(value, " -"); i >= 0 {
		value = value[:i]
	}
	if i := strings.Index(value, " +"); i >= 0 {
		value = value[:i]
	}

	parsed, err := time.Parse(createdAtLayout, value)
	if err != nil {
		return nil
	}
	return &parsed
}

func parseQuantity(value string) int {
	if parsed, err := strconv.Atoi(strings.TrimSpace(value)); err == nil && parsed > 0 {
		return parsed
	}
	return 1
}

func parseFloat(value string) float64 {
	if parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
		return parsed
	}
	return 0
}
