package pipeline

import (
	"context"
	"math/rand"
	"strings"
	"time"

	apperrors "github.com/killallgit/labeler-api/pkg/errors"

	"github.com/killallgit/labeler-api/internal/models"
	"github.com/killallgit/labeler-api/internal/storage"
)

// TextFileName is the single blob holding all unconsumed paragraphs,
// separated by blank lines.
const TextFileName = "saved_texts.txt"

// Policy selects how a blob-backed source picks the next sentence.
type Policy string

const (
	// PolicyFIFO serves sentences in storage order.
	PolicyFIFO Policy = "fifo"
	// PolicyRandom serves a uniformly random sentence.
	PolicyRandom Policy = "random"
)

// blobService implements Service over a single flat text blob (local file
// or object storage). Every Next is a read-all, mutate, write-all round
// trip with no locking; concurrent writers can lose updates. Acceptable
// only under single-writer discipline.
//
// Paragraph boundaries are re-derived by splitting on every read: after a
// sentence is removed its paragraph is rewritten as the remaining
// sentences joined by spaces, and that rewritten text becomes the new
// source of truth. If re-splitting it later yields a different sentence
// set, the new set wins; there is no de-duplication against prior
// identities.
type blobService struct {
	store  storage.Store
	policy Policy
	rng    *rand.Rand
}

// NewBlobService creates a pipeline service over store with the given
// pick policy.
func NewBlobService(store storage.Store, policy Policy) Service {
	return &blobService{
		store:  store,
		policy: policy,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Ingest appends the trimmed paragraph to the text blob, separated from
// existing content by a blank line. The raw text is stored verbatim;
// splitting happens on read.
func (s *blobService) Ingest(ctx context.Context, rawText string) (*IngestResult, error) {
	trimmed := strings.TrimSpace(rawText)
	if trimmed == "" {
		return nil, apperrors.MissingFieldError("text")
	}

	existing, ok, err := s.store.Read(ctx, TextFileName)
	if err != nil {
		return nil, apperrors.StorageError("ingest", err)
	}

	content := trimmed
	if ok && len(strings.TrimSpace(string(existing))) > 0 {
		content = string(existing) + "\n\n" + trimmed
	}

	if err := s.store.Write(ctx, TextFileName, []byte(content)); err != nil {
		return nil, apperrors.StorageError("ingest", err)
	}

	return &IngestResult{
		SentenceCount: len(SplitSentences(trimmed)),
		WordCount:     CountWords(trimmed),
		CharCount:     len(rawText),
	}, nil
}

// Next picks a sentence per the policy, removes it from its owning
// paragraph and writes the rebuilt blob back before returning. Consumption
// is complete once Next returns; there is no separate mark step.
func (s *blobService) Next(ctx context.Context) (*models.Sentence, bool, error) {
	paragraphs, err := s.load(ctx)
	if err != nil {
		return nil, false, err
	}

	type tracked struct {
		sentence  string
		paragraph int
		position  int
	}
	var pool []tracked
	split := make([][]string, len(paragraphs))
	for i, paragraph := range paragraphs {
		split[i] = SplitSentences(paragraph)
		for j, sentence := range split[i] {
			pool = append(pool, tracked{sentence: sentence, paragraph: i, position: j})
		}
	}

	if len(pool) == 0 {
		return nil, false, nil
	}

	idx := 0
	if s.policy == PolicyRandom {
		idx = s.rng.Intn(len(pool))
	}
	selected := pool[idx]

	// Rebuild the owning paragraph without the selected sentence
	remaining := make([]string, 0, len(split[selected.paragraph])-1)
	for j, sentence := range split[selected.paragraph] {
		if j != selected.position {
			remaining = append(remaining, sentence)
		}
	}

	rebuilt := make([]string, 0, len(paragraphs))
	for i := range paragraphs {
		if i == selected.paragraph {
			if len(remaining) > 0 {
				rebuilt = append(rebuilt, strings.Join(remaining, " "))
			}
			continue
		}
		rebuilt = append(rebuilt, paragraphs[i])
	}

	if err := s.store.Write(ctx, TextFileName, []byte(strings.Join(rebuilt, "\n\n"))); err != nil {
		return nil, false, apperrors.StorageError("next", err)
	}

	return &models.Sentence{
		Content:  selected.sentence,
		Position: selected.position,
	}, true, nil
}

// MarkUsed is a no-op success for blob-backed sources: consumption already
// happened inside Next. Kept idempotent so the API contract is uniform
// across backends.
func (s *blobService) MarkUsed(ctx context.Context, sentenceID uint) error {
	return nil
}

// Skip is likewise a no-op; the sentence was removed when served.
func (s *blobService) Skip(ctx context.Context, sentenceID uint) error {
	return nil
}

// Remaining counts sentences currently derivable from the blob.
func (s *blobService) Remaining(ctx context.Context) (int64, error) {
	paragraphs, err := s.load(ctx)
	if err != nil {
		return 0, err
	}
	var count int64
	for _, paragraph := range paragraphs {
		count += int64(len(SplitSentences(paragraph)))
	}
	return count, nil
}

// load reads the blob and returns its non-empty paragraphs.
func (s *blobService) load(ctx context.Context) ([]string, error) {
	data, ok, err := s.store.Read(ctx, TextFileName)
	if err != nil {
		return nil, apperrors.StorageError("read", err)
	}
	if !ok {
		return nil, nil
	}

	var paragraphs []string
	for _, block := range strings.Split(string(data), "\n\n") {
		if trimmed := strings.TrimSpace(block); trimmed != "" {
			paragraphs = append(paragraphs, trimmed)
		}
	}
	return paragraphs, nil
}
