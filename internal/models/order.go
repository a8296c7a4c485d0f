package models

import (
	"time"

	"github.com/google/uuid"
)

// Order statuses. An order starts pending and can only move to completed.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

type Order struct {
	BaseModel
	OrderNumber  string     `gorm:"uniqueIndex;not null" json:"order_number"`
	Email        string     `json:"email"`
	CustomerName string     `json:"customer_name"`
	Commune      string     `json:"commune"`
	DeliveryDate string     `gorm:"index" json:"delivery_date"`
	Address      string     `json:"address"`
	Phone        string     `json:"phone"`
	Total        float64    `json:"total"`
	PlacedAt     *time.Time `json:"placed_at"`
	ImportedAt   time.Time  `gorm:"autoCreateTime" json:"imported_at"`
	Status       string     `gorm:"index;default:pending" json:"status"`
	Items        []LineItem `gorm:"constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

type LineItem struct {
	BaseModel
	OrderID  uuid.UUID `gorm:"type:uuid;index" json:"order_id"`
	Product  string    `gorm:"not null" json:"product"`
	Quantity int       `gorm:"not null" json:"quantity"`
	Price    float64   `json:"price"`
	SKU      string    `json:"sku"`
}
