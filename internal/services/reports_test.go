package services

import (
	"testing"

	"gorm.io/gorm"

	"github.com/example/lavega/internal/models"
)

func seedCategory(t *testing.T, db *gorm.DB, name string, order int) models.Category {
	t.Helper()
	category := models.Category{Name: name, DisplayOrder: order}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("seed category %s: %v", name, err)
	}
	return category
}

func mapProduct(t *testing.T, db *gorm.DB, product string, category models.Category) {
	t.Helper()
	mapping := models.ProductCategory{Product: product, CategoryID: category.ID}
	if err := db.Create(&mapping).Error; err != nil {
		t.Fatalf("map %s: %v", product, err)
	}
}

func seedOrder(t *testing.T, db *gorm.DB, order models.Order) models.Order {
	t.Helper()
	if order.Status == "" {
		order.Status = models.StatusPending
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("seed order %s: %v", order.OrderNumber, err)
	}
	return order
}

func TestShoppingListAggregatesByCategory(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReportService(db)

	frutas := seedCategory(t, db, "Frutas", 1)
	verduras := seedCategory(t, db, "Verduras", 2)
	otros := seedCategory(t, db, "Otros", 99)

	mapProduct(t, db, "Manzana", frutas)
	mapProduct(t, db, "Pera", frutas)
	mapProduct(t, db, "Zanahoria", verduras)
	mapProduct(t, db, "Velas", otros)

	// Insertion order deliberately scrambled relative to category order.
	seedOrder(t, db, candidate("#1001", "2024-05-10",
		item("Zanahoria", 4), item("Pera", 2), item("Pan Amasado", 1)))
	seedOrder(t, db, candidate("#1002", "2024-05-10",
		item("Manzana", 3), item("Pera", 1), item("Velas", 1)))

	// Out of scope: other date, and a completed order on the target date.
	seedOrder(t, db, candidate("#1003", "2024-05-11", item("Manzana", 10)))
	done := candidate("#1004", "2024-05-10", item("Manzana", 7))
	done.Status = models.StatusCompleted
	seedOrder(t, db, done)

	sections, err := svc.ShoppingList("2024-05-10")
	if err != nil {
		t.Fatalf("ShoppingList: %v", err)
	}

	wantCategories := []string{"Frutas", "Verduras", "Otros", UncategorizedName}
	if len(sections) != len(wantCategories) {
		t.Fatalf("got %d sections (%+v), want %d", len(sections), sections, len(wantCategories))
	}
	for i, want := range wantCategories {
		if sections[i].Category != want {
			t.Errorf("section[%d] = %q, want %q", i, sections[i].Category, want)
		}
	}

	frutasSection := sections[0]
	if len(frutasSection.Products) != 2 {
		t.Fatalf("Frutas has %d products, want 2", len(frutasSection.Products))
	}
	if frutasSection.Products[0].Product != "Manzana" || frutasSection.Products[0].Quantity != 3 {
		t.Errorf("Frutas[0] = %+v, want Manzana x3", frutasSection.Products[0])
	}
	if frutasSection.Products[1].Product != "Pera" || frutasSection.Products[1].Quantity != 3 {
		t.Errorf("Frutas[1] = %+v, want Pera summed to 3 across orders", frutasSection.Products[1])
	}

	uncategorized := sections[len(sections)-1]
	if len(uncategorized.Products) != 1 || uncategorized.Products[0].Product != "Pan Amasado" {
		t.Errorf("uncategorized section = %+v, want Pan Amasado", uncategorized)
	}
}

func TestShoppingListUnmappedProductFallsToUncategorized(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReportService(db)

	seedOrder(t, db, candidate("#2002", "2024-05-10", item("Leche", 1)))

	sections, err := svc.ShoppingList("2024-05-10")
	if err != nil {
		t.Fatalf("ShoppingList: %v", err)
	}
	if len(sections) != 1 || sections[0].Category != UncategorizedName {
		t.Fatalf("sections = %+v, want only %s", sections, UncategorizedName)
	}

	// After mapping the product, it moves into its category.
	lacteos := seedCategory(t, db, "Lácteos", 5)
	mapProduct(t, db, "Leche", lacteos)

	sections, err = svc.ShoppingList("2024-05-10")
	if err != nil {
		t.Fatalf("ShoppingList: %v", err)
	}
	if len(sections) != 1 || sections[0].Category != "Lácteos" {
		t.Fatalf("sections = %+v, want only Lácteos", sections)
	}
	if sections[0].Products[0].Product != "Leche" || sections[0].Products[0].Quantity != 1 {
		t.Errorf("products = %+v, want Leche x1", sections[0].Products)
	}
}

func TestShoppingListEmptyDate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReportService(db)

	sections, err := svc.ShoppingList("2024-05-10")
	if err != nil {
		t.Fatalf("ShoppingList: %v", err)
	}
	if len(sections) != 0 {
		t.Fatalf("sections = %+v, want none", sections)
	}
}

func TestPickingManifestListsPerOrder(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReportService(db)

	seedOrder(t, db, candidate("#1002", "2024-05-10", item("Manzana", 2)))
	seedOrder(t, db, candidate("#1001", "2024-05-10", item("Manzana", 3), item("Pera", 1)))
	seedOrder(t, db, candidate("#1003", "2024-05-11", item("Leche", 1)))

	orders, err := svc.PickingManifest("2024-05-10")
	if err != nil {
		t.Fatalf("PickingManifest: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("got %d orders, want 2", len(orders))
	}
	if orders[0].OrderNumber != "#1001" || orders[1].OrderNumber != "#1002" {
		t.Errorf("order numbers = [%s, %s], want ascending [#1001, #1002]",
			orders[0].OrderNumber, orders[1].OrderNumber)
	}

	// Quantities stay per order, never summed across orders.
	if len(orders[0].Items) != 2 {
		t.Errorf("#1001 has %d items, want 2", len(orders[0].Items))
	}
	if len(orders[1].Items) != 1 || orders[1].Items[0].Quantity != 2 {
		t.Errorf("#1002 items = %+v, want Manzana x2", orders[1].Items)
	}
}

func TestPendingDates(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReportService(db)

	seedOrder(t, db, candidate("#1001", "2024-05-11", item("Manzana", 1)))
	seedOrder(t, db, candidate("#1002", "2024-05-10", item("Pera", 1)))
	seedOrder(t, db, candidate("#1003", "2024-05-10", item("Leche", 1)))
	done := candidate("#1004", "2024-05-12", item("Pan", 1))
	done.Status = models.StatusCompleted
	seedOrder(t, db, done)

	dates, err := svc.PendingDates()
	if err != nil {
		t.Fatalf("PendingDates: %v", err)
	}
	want := []DateCount{{Date: "2024-05-10", Count: 2}, {Date: "2024-05-11", Count: 1}}
	if len(dates) != len(want) {
		t.Fatalf("dates = %+v, want %+v", dates, want)
	}
	for i := range want {
		if dates[i] != want[i] {
			t.Errorf("dates[%d] = %+v, want %+v", i, dates[i], want[i])
		}
	}
}
