package labels

import (
	"context"

	"github.com/killallgit/labeler-api/internal/models"
)

// Stats summarizes the training data by label.
type Stats struct {
	TotalEntries int64            `json:"total_entries"`
	LabelCounts  map[string]int64 `json:"label_counts"`
	UniqueLabels int              `json:"unique_labels"`
}

// Page is one page of labeled entries.
type Page struct {
	Entries      []models.LabeledEntry `json:"entries"`
	TotalEntries int64                 `json:"total_entries"`
	Page         int                   `json:"page"`
	Limit        int                   `json:"limit"`
	TotalPages   int                   `json:"total_pages"`
}

// Service defines the interface for training data business logic.
// Append validates and persists one (text, label) pair; Export streams the
// whole store as tab-separated text\tlabel lines in insertion order.
type Service interface {
	Append(ctx context.Context, text, label string) (*models.LabeledEntry, error)
	Clear(ctx context.Context) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, page, limit int) (*Page, error)
	Stats(ctx context.Context) (*Stats, error)
	Export(ctx context.Context) (string, error)
}

// Repository defines the interface for training data access
type Repository interface {
	Create(ctx context.Context, entry *models.LabeledEntry) error
	DeleteAll(ctx context.Context) error
	DeleteByID(ctx context.Context, id uint) error
	List(ctx context.Context, offset, limit int) ([]models.LabeledEntry, int64, error)
	CountByLabel(ctx context.Context) (map[string]int64, error)
	All(ctx context.Context) ([]models.LabeledEntry, error)
}
