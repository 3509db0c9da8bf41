package labels

import (
	"context"
	"errors"
	"strings"

	apperrors "github.com/killallgit/labeler-api/pkg/errors"

	"github.com/killallgit/labeler-api/internal/models"
	"gorm.io/gorm"
)

// ServiceImpl implements Service over the relational repository.
type ServiceImpl struct {
	repository Repository
}

// NewService creates a new training data service
func NewService(repository Repository) Service {
	return &ServiceImpl{repository: repository}
}

// cleanText squashes tabs, newlines and carriage returns to spaces so the
// text stays a single TSV column on export.
func cleanText(text string) string {
	replacer := strings.NewReplacer("\t", " ", "\n", " ", "\r", " ")
	return strings.TrimSpace(replacer.Replace(text))
}

func validate(text, label string) (string, string, error) {
	text = cleanText(text)
	label = strings.TrimSpace(label)
	if text == "" {
		return "", "", apperrors.MissingFieldError("text")
	}
	if label == "" {
		return "", "", apperrors.MissingFieldError("label")
	}
	if !models.IsValidCategory(label) {
		return "", "", apperrors.ValidationError("label", "must be one of: "+strings.Join(models.Categories, ", "))
	}
	return text, label, nil
}

// Append validates and persists one (text, label) pair
func (s *ServiceImpl) Append(ctx context.Context, text, label string) (*models.LabeledEntry, error) {
	text, label, err := validate(text, label)
	if err != nil {
		return nil, err
	}

	entry := &models.LabeledEntry{Text: text, Label: label}
	if err := s.repository.Create(ctx, entry); err != nil {
		return nil, apperrors.DatabaseError("append label", err)
	}
	return entry, nil
}

// Clear removes all training data
func (s *ServiceImpl) Clear(ctx context.Context) error {
	if err := s.repository.DeleteAll(ctx); err != nil {
		return apperrors.DatabaseError("clear labels", err)
	}
	return nil
}

// Delete removes a single entry by ID
func (s *ServiceImpl) Delete(ctx context.Context, id uint) error {
	if err := s.repository.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("labeled entry", id)
		}
		return apperrors.DatabaseError("delete label", err)
	}
	return nil
}

// List returns a page of entries in insertion order
func (s *ServiceImpl) List(ctx context.Context, page, limit int) (*Page, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 50
	}

	entries, total, err := s.repository.List(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, apperrors.DatabaseError("list labels", err)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &Page{
		Entries:      entries,
		TotalEntries: total,
		Page:         page,
		Limit:        limit,
		TotalPages:   totalPages,
	}, nil
}

// Stats returns totals and per-label counts
func (s *ServiceImpl) Stats(ctx context.Context) (*Stats, error) {
	counts, err := s.repository.CountByLabel(ctx)
	if err != nil {
		return nil, apperrors.DatabaseError("label stats", err)
	}

	var total int64
	for _, count := range counts {
		total += count
	}
	return &Stats{
		TotalEntries: total,
		LabelCounts:  counts,
		UniqueLabels: len(counts),
	}, nil
}

// Export renders the entire store as tab-separated text\tlabel lines in
// insertion order.
func (s *ServiceImpl) Export(ctx context.Context) (string, error) {
	entries, err := s.repository.All(ctx)
	if err != nil {
		return "", apperrors.DatabaseError("export labels", err)
	}

	var b strings.Builder
	for _, entry := range entries {
		b.WriteString(entry.Text)
		b.WriteByte('\t')
		b.WriteString(entry.Label)
		b.WriteByte('\n')
	}
	return b.String(), nil
}
