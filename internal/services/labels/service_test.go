package labels

import (
	"context"
	"errors"
	"testing"

	"github.com/killallgit/labeler-api/internal/models"
	apperrors "github.com/killallgit/labeler-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, entry *models.LabeledEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRepository) DeleteByID(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) List(ctx context.Context, offset, limit int) ([]models.LabeledEntry, int64, error) {
	args := m.Called(ctx, offset, limit)
	return args.Get(0).([]models.LabeledEntry), args.Get(1).(int64), args.Error(2)
}

func (m *MockRepository) CountByLabel(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

func (m *MockRepository) All(ctx context.Context) ([]models.LabeledEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LabeledEntry), args.Error(1)
}

func TestServiceAppend(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a valid pair", func(t *testing.T) {
		mockRepo := new(MockRepository)
		service := NewService(mockRepo)

		mockRepo.On("Create", ctx, mock.AnythingOfType("*models.LabeledEntry")).Return(nil)

		entry, err := service.Append(ctx, "some offensive text", models.CategoryOffensive)
		require.NoError(t, err)
		assert.Equal(t, "some offensive text", entry.Text)
		assert.Equal(t, models.CategoryOffensive, entry.Label)
		mockRepo.AssertExpectations(t)
	})

	t.Run("cleans embedded tabs and newlines", func(t *testing.T) {
		mockRepo := new(MockRepository)
		service := NewService(mockRepo)

		mockRepo.On("Create", ctx, mock.AnythingOfType("*models.LabeledEntry")).Return(nil)

		entry, err := service.Append(ctx, "text\twith\nbreaks\r", models.CategoryNormal)
		require.NoError(t, err)
		assert.Equal(t, "text with breaks", entry.Text)
	})

	t.Run("rejects empty text", func(t *testing.T) {
		service := NewService(new(MockRepository))

		_, err := service.Append(ctx, "  ", models.CategoryNormal)
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrCodeMissingField))
	})

	t.Run("rejects empty label", func(t *testing.T) {
		service := NewService(new(MockRepository))

		_, err := service.Append(ctx, "some text", "")
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrCodeMissingField))
	})

	t.Run("rejects unknown label", func(t *testing.T) {
		service := NewService(new(MockRepository))

		_, err := service.Append(ctx, "some text", "sarcasm")
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrCodeValidation))
	})

	t.Run("wraps repository failures", func(t *testing.T) {
		mockRepo := new(MockRepository)
		service := NewService(mockRepo)

		mockRepo.On("Create", ctx, mock.AnythingOfType("*models.LabeledEntry")).Return(errors.New("disk full"))

		_, err := service.Append(ctx, "some text", models.CategoryNormal)
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrCodeDatabaseQuery))
	})
}

func TestServiceDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("maps missing row to not found", func(t *testing.T) {
		mockRepo := new(MockRepository)
		service := NewService(mockRepo)

		mockRepo.On("DeleteByID", ctx, uint(7)).Return(gorm.ErrRecordNotFound)

		err := service.Delete(ctx, 7)
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrCodeNotFound))
	})

	t.Run("deletes existing row", func(t *testing.T) {
		mockRepo := new(MockRepository)
		service := NewService(mockRepo)

		mockRepo.On("DeleteByID", ctx, uint(7)).Return(nil)

		require.NoError(t, service.Delete(ctx, 7))
		mockRepo.AssertExpectations(t)
	})
}

func TestServiceList(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	entries := []models.LabeledEntry{
		{Text: "first entry", Label: models.CategoryNormal},
		{Text: "second entry", Label: models.CategoryHateSpeech},
	}
	mockRepo.On("List", ctx, 0, 2).Return(entries, int64(5), nil)

	page, err := service.List(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), page.TotalEntries)
	assert.Equal(t, 3, page.TotalPages)
	assert.Len(t, page.Entries, 2)
}

func TestServiceListDefaults(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	// Out-of-range paging falls back to page 1, limit 50
	mockRepo.On("List", ctx, 0, 50).Return([]models.LabeledEntry{}, int64(0), nil)

	page, err := service.List(ctx, -3, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 50, page.Limit)
}

func TestServiceStats(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	mockRepo.On("CountByLabel", ctx).Return(map[string]int64{
		models.CategoryNormal:    3,
		models.CategoryOffensive: 2,
	}, nil)

	stats, err := service.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), stats.TotalEntries)
	assert.Equal(t, 2, stats.UniqueLabels)
	assert.Equal(t, int64(3), stats.LabelCounts[models.CategoryNormal])
}

func TestServiceExport(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	mockRepo.On("All", ctx).Return([]models.LabeledEntry{
		{Text: "first entry text", Label: models.CategoryNormal},
		{Text: "second entry text", Label: models.CategoryHateSpeech},
	}, nil)

	content, err := service.Export(ctx)
	require.NoError(t, err)

	// Tab-separated, newline-terminated, no header, insertion order
	assert.Equal(t,
		"first entry text\tnormal\nsecond entry text\thate_speech\n",
		content)
}

func TestServiceExportEmpty(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	mockRepo.On("All", ctx).Return([]models.LabeledEntry{}, nil)

	content, err := service.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", content)
}
