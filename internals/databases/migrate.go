package database

import (
	"context"
	"fmt"
	"log"

	indikatorModel "inovasi_backend/internals/features/inovasi/indikator_inovasi/model"
	profilModel "inovasi_backend/internals/features/inovasi/profil_inovasi/model"
	carouselModel "inovasi_backend/internals/features/site/carousel/model"
	kontakModel "inovasi_backend/internals/features/site/kontak/model"
	systemTitleModel "inovasi_backend/internals/features/site/system_title/model"
	userModel "inovasi_backend/internals/features/users/user/model"

	"gorm.io/gorm"
)

// Migrate membuat/menyesuaikan semua tabel.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&userModel.UserModel{},
		&profilModel.ProfilInovasiModel{},
		&indikatorModel.IndikatorInovasiModel{},
		&carouselModel.CarouselImageModel{},
		&systemTitleModel.SystemTitleModel{},
		&kontakModel.KontakModel{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	if db.Dialector.Name() == "postgres" {
		// indikator ikut terhapus bersama profilnya
		if err := db.Exec(`
DO $$
BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'fk_indikator_profil_inovasi') THEN
    ALTER TABLE indikator_inovasi
      ADD CONSTRAINT fk_indikator_profil_inovasi
      FOREIGN KEY (profil_inovasi_id) REFERENCES profil_inovasi(id) ON DELETE CASCADE;
  END IF;
END $$;`).Error; err != nil {
			return fmt.Errorf("fk indikator: %w", err)
		}
	}
	log.Println("✅ Migrasi selesai.")
	return nil
}

// ReferencedUploads mengumpulkan semua path upload yang masih dirujuk DB
// (carousel + 19 kolom file indikator). Dipakai oleh reaper file yatim.
func ReferencedUploads(db *gorm.DB) func(ctx context.Context) (map[string]struct{}, error) {
	return func(ctx context.Context) (map[string]struct{}, error) {
		refs := map[string]struct{}{}

		var paths []string
		if err := db.WithContext(ctx).Model(&carouselModel.CarouselImageModel{}).Pluck("path", &paths).Error; err != nil {
			return nil, err
		}
		for _, p := range paths {
			refs[p] = struct{}{}
		}

		var rows []indikatorModel.IndikatorInovasiModel
		if err := db.WithContext(ctx).FindInBatches(&rows, 200, func(tx *gorm.DB, _ int) error {
			for i := range rows {
				for _, p := range rows[i].FilePaths() {
					refs[p] = struct{}{}
				}
			}
			return nil
		}).Error; err != nil {
			return nil, err
		}
		return refs, nil
	}
}
