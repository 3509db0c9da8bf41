package labels

import (
	"context"
	"fmt"

	"github.com/killallgit/labeler-api/internal/models"
	"gorm.io/gorm"
)

// RepositoryImpl implements the Repository interface
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new training data repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// Create inserts a labeled entry. Each append is an independent insert, so
// concurrent appends never clobber each other.
func (r *RepositoryImpl) Create(ctx context.Context, entry *models.LabeledEntry) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("creating labeled entry: %w", err)
	}
	return nil
}

// DeleteAll removes every labeled entry. Irreversible.
func (r *RepositoryImpl) DeleteAll(ctx context.Context) error {
	if err := r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Unscoped().
		Delete(&models.LabeledEntry{}).Error; err != nil {
		return fmt.Errorf("clearing labeled entries: %w", err)
	}
	return nil
}

// DeleteByID removes a single labeled entry
func (r *RepositoryImpl) DeleteByID(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Unscoped().Delete(&models.LabeledEntry{}, id)
	if result.Error != nil {
		return fmt.Errorf("deleting labeled entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// List returns a page of entries in insertion order plus the total count
func (r *RepositoryImpl) List(ctx context.Context, offset, limit int) ([]models.LabeledEntry, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.LabeledEntry{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting labeled entries: %w", err)
	}

	var entries []models.LabeledEntry
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, 0, fmt.Errorf("listing labeled entries: %w", err)
	}
	return entries, total, nil
}

// CountByLabel returns entry counts grouped by label
func (r *RepositoryImpl) CountByLabel(ctx context.Context) (map[string]int64, error) {
	type row struct {
		Label string
		Count int64
	}
	var rows []row
	if err := r.db.WithContext(ctx).
		Model(&models.LabeledEntry{}).
		Select("label, count(*) as count").
		Group("label").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("counting by label: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Label] = r.Count
	}
	return counts, nil
}

// All returns every entry in insertion order
func (r *RepositoryImpl) All(ctx context.Context) ([]models.LabeledEntry, error) {
	var entries []models.LabeledEntry
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("loading labeled entries: %w", err)
	}
	return entries, nil
}
