package pipeline

import (
	"context"

	"github.com/killallgit/labeler-api/internal/models"
)

// IngestResult reports what one ingestion created.
type IngestResult struct {
	ParagraphID   uint   `json:"paragraph_id"`
	SentenceIDs   []uint `json:"sentence_ids,omitempty"`
	SentenceCount int    `json:"sentence_count"`
	WordCount     int    `json:"word_count"`
	CharCount     int    `json:"char_count"`
}

// Service is the sentence supply pipeline: it ingests raw paragraphs,
// serves unconsumed sentences one at a time and records consumption.
//
// Next never returns a sentence from a fully consumed paragraph. Whether
// serving a sentence also consumes it depends on the backend policy: the
// flagged (relational) policy defers consumption to MarkUsed and accepts
// an at-least-once window between the two; the fifo/random (blob) policies
// consume inside Next.
type Service interface {
	// Ingest splits rawText into sentences and persists them with their
	// source paragraph. A paragraph yielding zero valid sentences is still
	// stored.
	Ingest(ctx context.Context, rawText string) (*IngestResult, error)

	// Next returns the next unconsumed sentence per the active policy.
	// ok=false means no sentences are available, which is not an error.
	Next(ctx context.Context) (sentence *models.Sentence, ok bool, err error)

	// MarkUsed durably records consumption of a sentence. Idempotent:
	// marking an already-used sentence succeeds without effect.
	MarkUsed(ctx context.Context, sentenceID uint) error

	// Skip consumes a sentence without labeling it. Never re-queues.
	Skip(ctx context.Context, sentenceID uint) error

	// Remaining counts sentences not yet consumed.
	Remaining(ctx context.Context) (int64, error)
}

// Repository defines relational data access for paragraphs and sentences.
type Repository interface {
	CreateParagraphWithSentences(ctx context.Context, paragraph *models.Paragraph, sentences []models.Sentence) error
	NextUnused(ctx context.Context) (*models.Sentence, error)
	GetSentenceByID(ctx context.Context, id uint) (*models.Sentence, error)
	MarkSentenceUsed(ctx context.Context, id uint) error
	CountUnused(ctx context.Context) (int64, error)
}
