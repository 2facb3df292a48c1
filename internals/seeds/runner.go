package seeds

import (
	"log"

	"inovasi_backend/internals/seeds/inovasi"
	"inovasi_backend/internals/seeds/site"
	"inovasi_backend/internals/seeds/users"

	"gorm.io/gorm"
)

// RunAllSeeds: urutan penting, profil butuh user OPD.
func RunAllSeeds(db *gorm.DB, bcryptCost int) error {
	log.Println("📥 Seeding users...")
	if _, err := users.SeedUsersFromJSON(db, users.DataUsers, bcryptCost); err != nil {
		return err
	}
	log.Println("📥 Seeding profil inovasi...")
	if _, err := inovasi.SeedProfilInovasiFromJSON(db, inovasi.DataProfilInovasi); err != nil {
		return err
	}
	log.Println("📥 Seeding site...")
	return site.SeedSiteDefaults(db)
}
