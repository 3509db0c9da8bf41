package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name    string
		dbPath  string
		wantErr bool
	}{
		{
			name:    "in-memory database",
			dbPath:  ":memory:",
			wantErr: false,
		},
		{
			name:    "file database",
			dbPath:  filepath.Join(t.TempDir(), "test.db"),
			wantErr: false,
		},
		{
			name:    "nested directory is created",
			dbPath:  filepath.Join(t.TempDir(), "nested", "dir", "test.db"),
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, err := Initialize(tt.dbPath, false)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, conn)
			assert.NotNil(t, conn.DB)
			conn.Close()
		})
	}
}

func TestDB_Close(t *testing.T) {
	conn, err := Initialize(":memory:", false)
	require.NoError(t, err)

	assert.NoError(t, conn.Close())

	// A closed connection fails its health check
	assert.Error(t, conn.HealthCheck())
}

func TestDB_HealthCheck(t *testing.T) {
	t.Run("healthy connection", func(t *testing.T) {
		conn, err := Initialize(":memory:", false)
		require.NoError(t, err)
		defer conn.Close()

		assert.NoError(t, conn.HealthCheck())
	})

	t.Run("nil connection", func(t *testing.T) {
		var conn *DB
		assert.Error(t, conn.HealthCheck())
	})
}

func TestDB_Bootstrap(t *testing.T) {
	conn, err := Initialize(":memory:", false)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.Bootstrap())

	// All three application tables exist afterwards
	for _, table := range []string{"paragraphs", "sentences", "training_data"} {
		var count int64
		err := conn.DB.Raw(
			"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&count).Error
		require.NoError(t, err)
		assert.Equal(t, int64(1), count, "table %s should exist", table)
	}

	// Bootstrap is idempotent
	assert.NoError(t, conn.Bootstrap())
}

func TestDB_Transaction(t *testing.T) {
	conn, err := Initialize(":memory:", false)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.Bootstrap())

	type row struct{ Count int64 }

	t.Run("rollback on error", func(t *testing.T) {
		err := conn.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Exec("INSERT INTO paragraphs (content) VALUES ('x')").Error; err != nil {
				return err
			}
			return gorm.ErrInvalidTransaction
		})
		assert.Error(t, err)

		var r row
		require.NoError(t, conn.DB.Raw("SELECT COUNT(*) AS count FROM paragraphs").Scan(&r).Error)
		assert.Equal(t, int64(0), r.Count)
	})
}
