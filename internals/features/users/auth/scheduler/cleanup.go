// internals/features/users/auth/scheduler/cleanup.go
package scheduler

import (
	"log"
	"strconv"
	"time"

	"gorm.io/gorm"

	"masjidcare_backend/internals/configs"
	"masjidcare_backend/internals/features/users/auth/model"
)

// StartBlacklistCleanupScheduler deletes blacklist rows whose tokens have
// been expired longer than the grace window. Runs daily in the background.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		graceDays := 7
		if raw := configs.GetEnv("TOKEN_BLACKLIST_TTL_DAYS"); raw != "" {
			if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
				graceDays = parsed
			}
		}

		for {
			deleteBefore := time.Now().UTC().Add(-time.Duration(graceDays) * 24 * time.Hour)

			res := db.Where("token_blacklist_expires_at < ?", deleteBefore).
				Delete(&model.TokenBlacklistModel{})
			if res.Error != nil {
				log.Printf("[CLEANUP ERROR] token blacklist sweep failed: %v", res.Error)
			} else if res.RowsAffected > 0 {
				log.Printf("[CLEANUP] removed %d stale blacklist tokens", res.RowsAffected)
			}

			time.Sleep(24 * time.Hour)
		}
	}()
}
