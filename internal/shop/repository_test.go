package shop

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// dry-run handle: builds SQL through the postgres dialector without a
// live connection
func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  "host=localhost user=test dbname=test",
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db
}

func TestWishlistAddInsertIsIdempotent(t *testing.T) {
	db := newDryRunDB(t)

	var sql string
	err := db.Callback().Create().After("gorm:create").Register("capture_sql", func(tx *gorm.DB) {
		sql = tx.Statement.SQL.String()
	})
	require.NoError(t, err)

	repo := NewGormWishlistRepository(db)
	require.NoError(t, repo.Add(context.Background(), 1, 7))

	// a racing double-add must not surface a duplicate-key error
	assert.Contains(t, sql, `ON CONFLICT ("user_id","product_id") DO NOTHING`)
	assert.Contains(t, sql, `INSERT INTO "wishlist"`)
}
