package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/example/lavega/internal/models"
)

// IngestService decides which parsed candidate orders make it into the
// store.
type IngestService struct {
	db *gorm.DB
}

// NewIngestService constructs IngestService.
func NewIngestService(db *gorm.DB) *IngestService {
	return &IngestService{db: db}
}

// ImportSummary reports the outcome of one export file ingestion.
type ImportSummary struct {
	Accepted   int `json:"new"`
	Duplicates int `json:"duplicates"`
	NoDate     int `json:"no_date"`
	Total      int `json:"total"`
}

// Ingest examines candidates in input order. Orders whose number is
// already stored count as duplicates, orders without a delivery date are
// dropped (they cannot be placed into any aggregation bucket), and the
// rest are persisted as pending together with their line items in a single
// transaction. Re-submitting the same export is a no-op.
func (s *IngestService) Ingest(candidates []models.Order) (ImportSummary, error) {
	summary := ImportSummary{Total: len(candidates)}

	for _, candidate := range candidates {
		var count int64
		if err := s.db.Model(&models.Order{}).
			Where("order_number = ?", candidate.OrderNumber).
			Count(&count).Error; err != nil {
			return summary, err
		}
		if count > 0 {
			summary.Duplicates++
			continue
		}

		if candidate.DeliveryDate == "" {
			summary.NoDate++
			continue
		}

		candidate.Status = models.StatusPending
		err := s.db.Transaction(func(tx *gorm.DB) error {
			return tx.Create(&candidate).Error
		})
		if err != nil {
			// A concurrent ingest may have inserted the same order number
			// between the existence check and the insert; the unique
			// constraint makes that a duplicate, not a failure.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				summary.Duplicates++
				continue
			}
			return summary, err
		}

		summary.Accepted++
	}

	return summary, nil
}
