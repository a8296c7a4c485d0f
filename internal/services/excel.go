package services

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/example/lavega/internal/models"
)

// Workbook layouts mirror the printed sheets used in the warehouse: a
// title row, a colored header, section rows per category or order, and a
// checkbox column to tick items off by hand.

var thinBorder = []excelize.Border{
	{Type: "left", Style: 1, Color: "000000"},
	{Type: "right", Style: 1, Color: "000000"},
	{Type: "top", Style: 1, Color: "000000"},
	{Type: "bottom", Style: 1, Color: "000000"},
}

// ShoppingListWorkbook renders the shopping list for a date as an xlsx
// document.
func ShoppingListWorkbook(date string, sections []ShoppingSection) ([]byte, error) {
	f := excelize.NewFile()
	const sheet = "Lista de Compras"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4CAF50"}, Pattern: 1},
		Border:    thinBorder,
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}
	categoryStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 11},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E8F5E9"}, Pattern: 1},
		Border: thinBorder,
	})
	if err != nil {
		return nil, err
	}
	cellStyle, err := f.NewStyle(&excelize.Style{Border: thinBorder})
	if err != nil {
		return nil, err
	}
	centeredStyle, err := f.NewStyle(&excelize.Style{
		Border:    thinBorder,
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}

	f.MergeCell(sheet, "A1", "C1")
	f.SetCellValue(sheet, "A1", fmt.Sprintf("Lista de Compras - %s", date))
	f.SetCellStyle(sheet, "A1", "C1", titleStyle)

	f.SetCellValue(sheet, "A3", "Producto")
	f.SetCellValue(sheet, "B3", "Cantidad")
	f.SetCellValue(sheet, "C3", "✓")
	f.SetCellStyle(sheet, "A3", "C3", headerStyle)

	row := 4
	for _, section := range sections {
		f.MergeCell(sheet, cell("A", row), cell("C", row))
		f.SetCellValue(sheet, cell("A", row), section.Category)
		f.SetCellStyle(sheet, cell("A", row), cell("C", row), categoryStyle)
		row++

		for _, product := range section.Products {
			f.SetCellValue(sheet, cell("A", row), product.Product)
			f.SetCellValue(sheet, cell("B", row), product.Quantity)
			f.SetCellValue(sheet, cell("C", row), "☐")
			f.SetCellStyle(sheet, cell("A", row), cell("A", row), cellStyle)
			f.SetCellStyle(sheet, cell("B", row), cell("C", row), centeredStyle)
			row++
		}
	}

	f.SetColWidth(sheet, "A", "A", 50)
	f.SetColWidth(sheet, "B", "B", 12)
	f.SetColWidth(sheet, "C", "C", 8)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// PickingWorkbook renders the picking manifest for a date as an xlsx
// document, one section per order.
func PickingWorkbook(date string, orders []models.Order) ([]byte, error) {
	f := excelize.NewFile()
	const sheet = "Pedidos para Armar"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}
	subtitleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Italic: true}})
	if err != nil {
		return nil, err
	}
	orderStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 11},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E3F2FD"}, Pattern: 1},
		Border: thinBorder,
	})
	if err != nil {
		return nil, err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 11, Color: "FFFFFF"},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"2196F3"}, Pattern: 1},
		Border: thinBorder,
	})
	if err != nil {
		return nil, err
	}
	cellStyle, err := f.NewStyle(&excelize.Style{Border: thinBorder})
	if err != nil {
		return nil, err
	}
	centeredStyle, err := f.NewStyle(&excelize.Style{
		Border:    thinBorder,
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}

	f.MergeCell(sheet, "A1", "D1")
	f.SetCellValue(sheet, "A1", fmt.Sprintf("Pedidos para Armar - %s", date))
	f.SetCellStyle(sheet, "A1", "D1", titleStyle)

	f.SetCellValue(sheet, "A2", fmt.Sprintf("Total: %d pedidos", len(orders)))
	f.SetCellStyle(sheet, "A2", "A2", subtitleStyle)

	row := 4
	for _, order := range orders {
		f.MergeCell(sheet, cell("A", row), cell("D", row))
		f.SetCellValue(sheet, cell("A", row),
			fmt.Sprintf("%s | %s | %s", order.OrderNumber, order.CustomerName, order.Commune))
		f.SetCellStyle(sheet, cell("A", row), cell("D", row), orderStyle)
		row++

		if order.Address != "" {
			f.SetCellValue(sheet, cell("A", row), fmt.Sprintf("📍 %s", order.Address))
			row++
		}

		f.SetCellValue(sheet, cell("A", row), "Producto")
		f.SetCellValue(sheet, cell("B", row), "Cant.")
		f.SetCellValue(sheet, cell("C", row), "✓")
		f.SetCellStyle(sheet, cell("A", row), cell("C", row), headerStyle)
		row++

		for _, item := range order.Items {
			f.SetCellValue(sheet, cell("A", row), item.Product)
			f.SetCellValue(sheet, cell("B", row), item.Quantity)
			f.SetCellValue(sheet, cell("C", row), "☐")
			f.SetCellStyle(sheet, cell("A", row), cell("A", row), cellStyle)
			f.SetCellStyle(sheet, cell("B", row), cell("C", row), centeredStyle)
			row++
		}

		row++
	}

	f.SetColWidth(sheet, "A", "A", 50)
	f.SetColWidth(sheet, "B", "B", 8)
	f.SetColWidth(sheet, "C", "C", 6)
	f.SetColWidth(sheet, "D", "D", 20)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func cell(column string, row int) string {
	return fmt.Sprintf("%s%d", column, row)
}
