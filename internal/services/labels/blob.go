package labels

import (
	"context"
	"strings"

	apperrors "github.com/killallgit/labeler-api/pkg/errors"

	"github.com/killallgit/labeler-api/internal/models"
	"github.com/killallgit/labeler-api/internal/storage"
)

// DataFileName is the single TSV blob holding all labeled entries.
const DataFileName = "training_data.csv"

// blobService implements Service over a flat tab-separated blob. Each
// Append is a read-existing-then-write-all round trip, which is NOT safe
// under concurrent writers; a lost update is possible when two appends
// race. Known limitation of the blob variant; the relational store is the
// concurrent-safe default.
type blobService struct {
	store storage.Store
}

// NewBlobService creates a training data service over a blob store.
func NewBlobService(store storage.Store) Service {
	return &blobService{store: store}
}

func (s *blobService) read(ctx context.Context) (string, error) {
	data, ok, err := s.store.Read(ctx, DataFileName)
	if err != nil {
		return "", apperrors.StorageError("read labels", err)
	}
	if !ok {
		return "", nil
	}
	return string(data), nil
}

func (s *blobService) entries(ctx context.Context) ([]models.LabeledEntry, error) {
	content, err := s.read(ctx)
	if err != nil {
		return nil, err
	}

	var entries []models.LabeledEntry
	for i, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) < 2 {
			continue
		}
		text := strings.TrimSpace(parts[0])
		label := strings.TrimSpace(parts[1])
		if text == "" || label == "" {
			continue
		}
		entry := models.LabeledEntry{Text: text, Label: label}
		entry.ID = uint(i + 1)
		entries = append(entries, entry)
	}
	return entries, nil
}

// Append validates the pair and rewrites the blob with the new row added.
func (s *blobService) Append(ctx context.Context, text, label string) (*models.LabeledEntry, error) {
	text, label, err := validate(text, label)
	if err != nil {
		return nil, err
	}

	content, err := s.read(ctx)
	if err != nil {
		return nil, err
	}

	content += text + "\t" + label + "\n"
	if err := s.store.Write(ctx, DataFileName, []byte(content)); err != nil {
		return nil, apperrors.StorageError("append label", err)
	}
	return &models.LabeledEntry{Text: text, Label: label}, nil
}

// Clear replaces the blob with an empty file so it keeps existing but
// holds nothing.
func (s *blobService) Clear(ctx context.Context) error {
	if err := s.store.Remove(ctx, DataFileName); err != nil {
		return apperrors.StorageError("clear labels", err)
	}
	if err := s.store.Write(ctx, DataFileName, []byte{}); err != nil {
		return apperrors.StorageError("clear labels", err)
	}
	return nil
}

// Delete is not supported on the blob variant: rows have no stable
// identity in a rewritten flat file.
func (s *blobService) Delete(ctx context.Context, id uint) error {
	return apperrors.New(apperrors.ErrCodeInvalidInput, "per-row delete is only supported on the relational backend")
}

// List returns a page of parsed entries
func (s *blobService) List(ctx context.Context, page, limit int) (*Page, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 50
	}

	all, err := s.entries(ctx)
	if err != nil {
		return nil, err
	}

	total := int64(len(all))
	offset := (page - 1) * limit
	if offset > len(all) {
		offset = len(all)
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &Page{
		Entries:      all[offset:end],
		TotalEntries: total,
		Page:         page,
		Limit:        limit,
		TotalPages:   totalPages,
	}, nil
}

// Stats parses the blob and counts entries per label
func (s *blobService) Stats(ctx context.Context) (*Stats, error) {
	all, err := s.entries(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64)
	for _, entry := range all {
		counts[entry.Label]++
	}
	return &Stats{
		TotalEntries: int64(len(all)),
		LabelCounts:  counts,
		UniqueLabels: len(counts),
	}, nil
}

// Export returns the raw TSV content
func (s *blobService) Export(ctx context.Context) (string, error) {
	return s.read(ctx)
}
