package users

import (
	_ "embed"
	"fmt"
	"log"

	"inovasi_backend/internals/constants"
	authService "inovasi_backend/internals/features/users/auth/service"
	"inovasi_backend/internals/features/users/user/model"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:embed data_users.json
var DataUsers []byte

type UserSeed struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Nama     string `json:"nama"`
	Role     string `json:"role"`
	Status   string `json:"status"`
}

// SeedUsersFromJSON menambah user yang belum ada (username sama → dilewati).
func SeedUsersFromJSON(db *gorm.DB, data []byte, bcryptCost int) (int64, error) {
	var inputs []UserSeed
	if err := sonic.Unmarshal(data, &inputs); err != nil {
		return 0, fmt.Errorf("decode seed users: %w", err)
	}

	rows := make([]model.UserModel, 0, len(inputs))
	for _, in := range inputs {
		if !constants.IsValidRole(in.Role) || !constants.IsValidStatus(in.Status) {
			log.Printf("[WARN] Seed user %s: role/status tidak valid, dilewati", in.Username)
			continue
		}
		hashed, err := authService.HashPassword(in.Password, bcryptCost)
		if err != nil {
			return 0, err
		}
		rows = append(rows, model.UserModel{
			Username: in.Username,
			Password: hashed,
			Nama:     in.Nama,
			Role:     in.Role,
			Status:   in.Status,
		})
	}
	if len(rows) == 0 {
		return 0, nil
	}

	res := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}},
		DoNothing: true,
	}).Create(&rows)
	if res.Error != nil {
		return 0, fmt.Errorf("insert seed users: %w", res.Error)
	}
	log.Printf("✅ Seed users: %d baru, %d dilewati", res.RowsAffected, int64(len(rows))-res.RowsAffected)
	return res.RowsAffected, nil
}
