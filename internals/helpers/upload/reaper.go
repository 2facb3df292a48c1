package upload

import (
	"context"
	"log"
	"time"

	"inovasi_backend/internals/configs"

	"github.com/robfig/cron/v3"
)

// ReferencedFunc mengembalikan semua path yang masih dirujuk DB.
type ReferencedFunc func(ctx context.Context) (map[string]struct{}, error)

type ReaperConfig struct {
	CronSchedule string
	Grace        time.Duration
	DryRun       bool
}

func ReaperConfigFromEnv() ReaperConfig {
	return ReaperConfig{
		CronSchedule: configs.GetEnv("UPLOAD_REAPER_CRON"),
		Grace:        configs.GetEnvDuration("UPLOAD_REAPER_GRACE", 24*time.Hour),
		DryRun:       configs.GetEnvBool("UPLOAD_REAPER_DRY_RUN", false),
	}
}

// StartOrphanReaper menjadwalkan pembersihan file yatim. Nil kalau jadwal kosong.
func StartOrphanReaper(store Store, referenced ReferencedFunc, cfg ReaperConfig) (*cron.Cron, error) {
	if cfg.CronSchedule == "" {
		log.Println("[REAPER] UPLOAD_REAPER_CRON kosong, reaper tidak dijalankan")
		return nil, nil
	}
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	_, err := c.AddFunc(cfg.CronSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 4*time.Minute)
		defer cancel()
		if _, err := RunOrphanReaper(ctx, store, referenced, cfg.Grace, cfg.DryRun); err != nil {
			log.Printf("[REAPER] error: %v", err)
		}
	})
	if err != nil {
		return nil, err
	}
	log.Printf("[REAPER] started schedule=%q grace=%s dryRun=%v", cfg.CronSchedule, cfg.Grace, cfg.DryRun)
	c.Start()
	return c, nil
}

// RunOrphanReaper menghapus file yang tidak dirujuk DB dan lebih tua dari grace.
// Mengembalikan path yang dihapus (atau akan dihapus saat dryRun).
func RunOrphanReaper(ctx context.Context, store Store, referenced ReferencedFunc, grace time.Duration, dryRun bool) ([]string, error) {
	refs, err := referenced(ctx)
	if err != nil {
		return nil, err
	}
	threshold := time.Now().Add(-grace)

	var orphans []string
	scanned := 0
	err = store.Walk(ctx, func(rel string, mod time.Time) error {
		scanned++
		if _, ok := refs[rel]; ok {
			return nil
		}
		if mod.Before(threshold) {
			orphans = append(orphans, rel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(orphans) == 0 {
		log.Printf("[REAPER] nothing to delete; scanned=%d", scanned)
		return nil, nil
	}
	if dryRun {
		log.Printf("[REAPER] DRY-RUN would delete %d/%d files", len(orphans), scanned)
		return orphans, nil
	}
	deleted := orphans[:0:0]
	for _, rel := range orphans {
		if err := store.Delete(ctx, rel); err != nil {
			log.Printf("[REAPER] delete %s gagal: %v", rel, err)
			continue
		}
		deleted = append(deleted, rel)
	}
	log.Printf("[REAPER] deleted %d files (scanned=%d)", len(deleted), scanned)
	return deleted, nil
}
