package pipeline

import (
	"context"
	"errors"
	"strings"

	apperrors "github.com/killallgit/labeler-api/pkg/errors"

	"github.com/killallgit/labeler-api/internal/models"
	"gorm.io/gorm"
)

// relationalService implements Service over individually addressable
// sentence rows with an is_used flag (the "flagged" policy).
//
// Next deliberately does not claim the row it returns; MarkUsed is a
// separate operation invoked only after the caller records a label or an
// explicit skip. Two concurrent Next calls can therefore observe the same
// row. This is an accepted at-least-once consumption semantic. Hardening
// to exactly-once would take a compare-and-swap claim during fetch
// (UPDATE ... WHERE id = ? AND is_used = false).
type relationalService struct {
	repository Repository
}

// NewRelationalService creates the flagged-policy pipeline service.
func NewRelationalService(repository Repository) Service {
	return &relationalService{repository: repository}
}

// Ingest splits rawText and stores the paragraph verbatim with one row per
// sentence. A paragraph that yields zero valid sentences is still stored.
func (s *relationalService) Ingest(ctx context.Context, rawText string) (*IngestResult, error) {
	trimmed := strings.TrimSpace(rawText)
	if trimmed == "" {
		return nil, apperrors.MissingFieldError("text")
	}

	fragments := SplitSentences(trimmed)
	sentences := make([]models.Sentence, 0, len(fragments))
	for i, fragment := range fragments {
		sentences = append(sentences, models.Sentence{
			Content:  fragment,
			Position: i,
			IsUsed:   false,
		})
	}

	paragraph := &models.Paragraph{Content: trimmed}
	if err := s.repository.CreateParagraphWithSentences(ctx, paragraph, sentences); err != nil {
		return nil, apperrors.DatabaseError("ingest", err)
	}

	ids := make([]uint, len(sentences))
	for i := range sentences {
		ids[i] = sentences[i].ID
	}

	return &IngestResult{
		ParagraphID:   paragraph.ID,
		SentenceIDs:   ids,
		SentenceCount: len(sentences),
		WordCount:     CountWords(trimmed),
		CharCount:     len(rawText),
	}, nil
}

// Next returns the first unused sentence without marking it.
func (s *relationalService) Next(ctx context.Context) (*models.Sentence, bool, error) {
	sentence, err := s.repository.NextUnused(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, apperrors.DatabaseError("next", err)
	}
	return sentence, true, nil
}

// MarkUsed flags a sentence as consumed. Marking twice succeeds without
// changing anything, tolerating at-least-once retries from the API layer.
func (s *relationalService) MarkUsed(ctx context.Context, sentenceID uint) error {
	if _, err := s.repository.GetSentenceByID(ctx, sentenceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("sentence", sentenceID)
		}
		return apperrors.DatabaseError("mark used", err)
	}
	if err := s.repository.MarkSentenceUsed(ctx, sentenceID); err != nil {
		return apperrors.DatabaseError("mark used", err)
	}
	return nil
}

// Skip consumes a sentence without a label. Same removal as MarkUsed; the
// caller is responsible for not writing a LabeledEntry.
func (s *relationalService) Skip(ctx context.Context, sentenceID uint) error {
	return s.MarkUsed(ctx, sentenceID)
}

// Remaining counts sentences not yet consumed. A sentence that has been
// served but not finalized still counts as remaining.
func (s *relationalService) Remaining(ctx context.Context) (int64, error) {
	count, err := s.repository.CountUnused(ctx)
	if err != nil {
		return 0, apperrors.DatabaseError("remaining", err)
	}
	return count, nil
}
