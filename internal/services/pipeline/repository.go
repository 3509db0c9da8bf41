package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/killallgit/labeler-api/internal/models"
	"gorm.io/gorm"
)

// RepositoryImpl implements the Repository interface
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new pipeline repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// CreateParagraphWithSentences inserts a paragraph and its sentences in one
// transaction so a partial ingest never becomes visible.
func (r *RepositoryImpl) CreateParagraphWithSentences(ctx context.Context, paragraph *models.Paragraph, sentences []models.Sentence) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(paragraph).Error; err != nil {
			return fmt.Errorf("creating paragraph: %w", err)
		}
		for i := range sentences {
			sentences[i].ParagraphID = paragraph.ID
		}
		if len(sentences) > 0 {
			if err := tx.Create(&sentences).Error; err != nil {
				return fmt.Errorf("creating sentences: %w", err)
			}
		}
		return nil
	})
}

// NextUnused returns the first sentence with is_used=false in paragraph
// then position order, without claiming it. Returns gorm.ErrRecordNotFound
// when none remain.
func (r *RepositoryImpl) NextUnused(ctx context.Context) (*models.Sentence, error) {
	var sentence models.Sentence
	err := r.db.WithContext(ctx).
		Where("is_used = ?", false).
		Order("paragraph_id ASC, position ASC").
		First(&sentence).Error
	if err != nil {
		return nil, err
	}
	return &sentence, nil
}

// GetSentenceByID retrieves a sentence by its ID
func (r *RepositoryImpl) GetSentenceByID(ctx context.Context, id uint) (*models.Sentence, error) {
	var sentence models.Sentence
	if err := r.db.WithContext(ctx).First(&sentence, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("getting sentence: %w", err)
	}
	return &sentence, nil
}

// MarkSentenceUsed sets is_used on a sentence. Marking an already-used
// sentence is a no-op write, keeping the operation idempotent.
func (r *RepositoryImpl) MarkSentenceUsed(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).
		Model(&models.Sentence{}).
		Where("id = ?", id).
		Update("is_used", true)
	if result.Error != nil {
		return fmt.Errorf("marking sentence used: %w", result.Error)
	}
	return nil
}

// CountUnused counts sentences not yet consumed
func (r *RepositoryImpl) CountUnused(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Sentence{}).
		Where("is_used = ?", false).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("counting unused sentences: %w", err)
	}
	return count, nil
}
