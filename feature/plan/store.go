package plan

import (
	"context"
	"fmt"

	"nomo-governance/core/database"
	"nomo-governance/core/network"
	"nomo-governance/feature/plan/models"

	"gorm.io/gorm"
)

// Store persists plan records.
type Store interface {
	// Save inserts record.
	Save(ctx context.Context, record *models.PlanRecord) error
	// History returns the latest records of n, newest first.
	History(ctx context.Context, n network.Network, limit int) ([]models.PlanRecord, error)
}

// GormStore is a Store backed by the plan_records table.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore returns a store using db.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// EnsureSchema migrates plan_records when the table is missing or lacks a
// column. It reports whether a migration ran.
func (s *GormStore) EnsureSchema() (bool, error) {
	missing, err := database.MissingColumns(s.db, models.PlanRecord{}.TableName(), models.PlanRecordColumns...)
	if err == nil && len(missing) == 0 {
		return false, nil
	}
	if err := s.db.AutoMigrate(&models.PlanRecord{}); err != nil {
		return false, fmt.Errorf("failed to migrate plan records: %w", err)
	}
	return true, nil
}

// Save inserts record.
func (s *GormStore) Save(ctx context.Context, record *models.PlanRecord) error {
	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to save plan record: %w", err)
	}
	return nil
}

// History returns the latest records of n, newest first.
func (s *GormStore) History(ctx context.Context, n network.Network, limit int) ([]models.PlanRecord, error) {
	var records []models.PlanRecord
	err := s.db.WithContext(ctx).
		Where("network = ?", n.String()).
		Order("created_at DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load plan history: %w", err)
	}
	return records, nil
}
