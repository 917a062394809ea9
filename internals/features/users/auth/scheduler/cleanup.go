package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	authRepo "sekolahku_backend/internals/features/users/auth/repository"
)

// StartBlacklistCleanupScheduler membersihkan token_blacklist & refresh
// token kadaluarsa secara periodik supaya tabel tidak membengkak.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		for {
			log.Println("[CLEANUP] Menjalankan pembersihan token_blacklist...")

			if n, err := authRepo.CleanupExpiredBlacklist(db); err != nil {
				log.Printf("[CLEANUP ERROR] Gagal hapus token blacklist: %v", err)
			} else if n > 0 {
				log.Printf("[CLEANUP] %d token kadaluarsa dihapus", n)
			} else {
				log.Println("[CLEANUP] Tidak ada token yang memenuhi syarat dihapus")
			}

			// refresh token yang sudah lama expired ikut dibersihkan
			res := db.Exec(`DELETE FROM refresh_tokens WHERE expires_at < NOW() - INTERVAL '7 days'`)
			if res.Error != nil {
				log.Printf("[CLEANUP ERROR] Gagal hapus refresh token: %v", res.Error)
			} else if res.RowsAffected > 0 {
				log.Printf("[CLEANUP] %d refresh token lama dihapus", res.RowsAffected)
			}

			// Jalankan tiap 24 jam
			time.Sleep(24 * time.Hour)
		}
	}()
}
