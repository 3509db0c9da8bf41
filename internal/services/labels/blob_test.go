package labels

import (
	"context"
	"testing"

	"github.com/killallgit/labeler-api/internal/models"
	"github.com/killallgit/labeler-api/internal/storage"
	apperrors "github.com/killallgit/labeler-api/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBlobTestService(t *testing.T) (Service, storage.Store) {
	t.Helper()
	store := storage.NewFilesystemStore(afero.NewMemMapFs(), "/data")
	return NewBlobService(store), store
}

func TestBlobAppend(t *testing.T) {
	ctx := context.Background()
	service, store := newBlobTestService(t)

	_, err := service.Append(ctx, "first entry text", models.CategoryNormal)
	require.NoError(t, err)
	_, err = service.Append(ctx, "second entry text", models.CategoryOffensive)
	require.NoError(t, err)

	data, ok, err := store.Read(ctx, DataFileName)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t,
		"first entry text\tnormal\nsecond entry text\toffensive\n",
		string(data))
}

func TestBlobAppendValidation(t *testing.T) {
	ctx := context.Background()
	service, _ := newBlobTestService(t)

	_, err := service.Append(ctx, "", models.CategoryNormal)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeMissingField))

	_, err = service.Append(ctx, "some text", "not_a_category")
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeValidation))
}

func TestBlobAppendCleansText(t *testing.T) {
	ctx := context.Background()
	service, _ := newBlobTestService(t)

	_, err := service.Append(ctx, "line\none\ttab", models.CategoryNormal)
	require.NoError(t, err)

	content, err := service.Export(ctx)
	require.NoError(t, err)

	// The stored row stays a single TSV line
	assert.Equal(t, "line one tab\tnormal\n", content)
}

func TestBlobClear(t *testing.T) {
	ctx := context.Background()
	service, store := newBlobTestService(t)

	_, err := service.Append(ctx, "first entry text", models.CategoryNormal)
	require.NoError(t, err)

	require.NoError(t, service.Clear(ctx))

	// The file still exists but holds nothing
	data, ok, err := store.Read(ctx, DataFileName)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, data)

	stats, err := service.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalEntries)
}

func TestBlobDeleteUnsupported(t *testing.T) {
	ctx := context.Background()
	service, _ := newBlobTestService(t)

	err := service.Delete(ctx, 1)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeInvalidInput))
}

func TestBlobListAndStats(t *testing.T) {
	ctx := context.Background()
	service, _ := newBlobTestService(t)

	_, err := service.Append(ctx, "first entry text", models.CategoryNormal)
	require.NoError(t, err)
	_, err = service.Append(ctx, "second entry text", models.CategoryNormal)
	require.NoError(t, err)
	_, err = service.Append(ctx, "third entry text", models.CategoryHateSpeech)
	require.NoError(t, err)

	page, err := service.List(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.TotalEntries)
	assert.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Entries, 2)
	assert.Equal(t, "first entry text", page.Entries[0].Text)

	page, err = service.List(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, page.Entries, 1)
	assert.Equal(t, "third entry text", page.Entries[0].Text)

	stats, err := service.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalEntries)
	assert.Equal(t, 2, stats.UniqueLabels)
	assert.Equal(t, int64(2), stats.LabelCounts[models.CategoryNormal])
}

func TestBlobExportRoundTrip(t *testing.T) {
	ctx := context.Background()
	service, _ := newBlobTestService(t)

	content, err := service.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", content)

	_, err = service.Append(ctx, "only entry text", models.CategoryPoliticalHate)
	require.NoError(t, err)

	content, err = service.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, "only entry text\tpolitical_hate\n", content)
}
