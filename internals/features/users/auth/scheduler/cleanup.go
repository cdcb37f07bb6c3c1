package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	"hostelku_backend/internals/features/users/auth/model"
)

// PurgeExpiredTokens hard-deletes blacklist rows whose expiry is older than
// cutoff. The model soft-deletes by default, so the purge goes through
// Unscoped — a plain Delete would only flag the rows and the table would keep
// growing. Rows an earlier soft delete flagged are reclaimed too.
func PurgeExpiredTokens(db *gorm.DB, cutoff time.Time) (int64, error) {
	res := db.Unscoped().
		Where("expired_at < ?", cutoff).
		Delete(&model.TokenBlacklist{})
	return res.RowsAffected, res.Error
}

func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		// TTL from env (default: 7 days)
		ttlDays := 7
		if val := os.Getenv("TOKEN_BLACKLIST_TTL_DAYS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil {
				ttlDays = parsed
			}
		}

		for {
			log.Println("[CLEANUP] Purging expired token_blacklist entries...")

			cutoff := time.Now().Add(-time.Duration(ttlDays) * 24 * time.Hour)
			if purged, err := PurgeExpiredTokens(db, cutoff); err != nil {
				log.Printf("[CLEANUP ERROR] Failed to delete tokens: %v", err)
			} else if purged > 0 {
				log.Printf("[CLEANUP] %d expired tokens deleted", purged)
			}

			time.Sleep(24 * time.Hour)
		}
	}()
}
