package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hostelku_backend/internals/features/users/auth/model"
)

func openCleanupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.TokenBlacklist{}))
	return db
}

// The purge has to physically remove rows. A soft delete would keep them in
// the table forever, invisible to the default scope but still growing it.
func TestPurgeExpiredTokensReclaimsRows(t *testing.T) {
	db := openCleanupTestDB(t)
	now := time.Now()

	expired := model.TokenBlacklist{Token: "expired-token", ExpiredAt: now.Add(-48 * time.Hour)}
	fresh := model.TokenBlacklist{Token: "fresh-token", ExpiredAt: now.Add(24 * time.Hour)}
	require.NoError(t, db.Create(&expired).Error)
	require.NoError(t, db.Create(&fresh).Error)

	// A row an earlier soft delete already flagged must be reclaimed too.
	flagged := model.TokenBlacklist{Token: "flagged-token", ExpiredAt: now.Add(-72 * time.Hour)}
	require.NoError(t, db.Create(&flagged).Error)
	require.NoError(t, db.Delete(&flagged).Error)

	purged, err := PurgeExpiredTokens(db, now.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(2), purged)

	// Unscoped count proves the rows are gone, not just hidden.
	var remaining int64
	require.NoError(t, db.Unscoped().Model(&model.TokenBlacklist{}).Count(&remaining).Error)
	assert.Equal(t, int64(1), remaining)

	var kept model.TokenBlacklist
	require.NoError(t, db.First(&kept, "token = ?", "fresh-token").Error)
}

func TestPurgeExpiredTokensKeepsLiveRows(t *testing.T) {
	db := openCleanupTestDB(t)
	now := time.Now()

	require.NoError(t, db.Create(&model.TokenBlacklist{
		Token: "still-valid", ExpiredAt: now.Add(time.Hour),
	}).Error)

	purged, err := PurgeExpiredTokens(db, now.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(0), purged)

	var count int64
	require.NoError(t, db.Model(&model.TokenBlacklist{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
