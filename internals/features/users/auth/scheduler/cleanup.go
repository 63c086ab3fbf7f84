package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"ktx_backend/internals/features/users/auth/model"
)

// StartBlacklistCleanup removes blacklisted tokens whose expiry is older
// than the TTL. Runs daily at 03:00.
func StartBlacklistCleanup(db *gorm.DB) {
	ttlDays := 7
	if val := os.Getenv("TOKEN_BLACKLIST_TTL_DAYS"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			ttlDays = parsed
		}
	}

	c := cron.New()
	_, err := c.AddFunc("0 3 * * *", func() {
		cleanup(db, ttlDays)
	})
	if err != nil {
		log.Printf("[CLEANUP] cron schedule error: %v", err)
		return
	}
	c.Start()
}

func cleanup(db *gorm.DB, ttlDays int) {
	log.Println("[CLEANUP] Purging expired blacklist tokens...")

	deleteBefore := time.Now().Add(-time.Duration(ttlDays) * 24 * time.Hour)

	res := db.Unscoped().
		Where("token_blacklist_expired_at < ?", deleteBefore).
		Delete(&model.TokenBlacklist{})
	if res.Error != nil {
		log.Printf("[CLEANUP ERROR] delete failed: %v", res.Error)
		return
	}
	if res.RowsAffected > 0 {
		log.Printf("[CLEANUP] %d expired tokens removed", res.RowsAffected)
	}
}
