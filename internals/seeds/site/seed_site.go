package site

import (
	"log"

	kontakModel "inovasi_backend/internals/features/site/kontak/model"
	titleModel "inovasi_backend/internals/features/site/system_title/model"

	"gorm.io/gorm"
)

const DefaultSystemTitle = "Sistem Informasi Inovasi Daerah"

// SeedSiteDefaults mengisi judul sistem dan kontak dinas bila tabel masih kosong.
func SeedSiteDefaults(db *gorm.DB) error {
	var n int64
	if err := db.Model(&titleModel.SystemTitleModel{}).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		if err := db.Create(&titleModel.SystemTitleModel{Title: DefaultSystemTitle, IsActive: true}).Error; err != nil {
			return err
		}
		log.Println("✅ Judul sistem default dibuat")
	} else {
		log.Println("ℹ️ Judul sistem sudah ada, dilewati.")
	}

	if err := db.Model(&kontakModel.KontakModel{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		log.Println("ℹ️ Data kontak sudah ada, dilewati.")
		return nil
	}
	if err := db.Create(&kontakModel.KontakModel{
		NamaDinas: "Badan Penelitian dan Pengembangan Daerah",
		Alamat:    "Jl. Jenderal Sudirman No. 1",
		Telepon:   "(0761) 123456",
		Email:     "balitbang@example.go.id",
		KodePos:   "28111",
		Latitude:  "0.507068",
		Longitude: "101.447777",
	}).Error; err != nil {
		return err
	}
	log.Println("✅ Data kontak default dibuat")
	return nil
}
