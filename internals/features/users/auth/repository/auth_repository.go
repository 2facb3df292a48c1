package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "inovasi_backend/internals/features/users/user/model"
)

/* ====================== USER ====================== */

func FindUserByUsername(db *gorm.DB, username string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(db *gorm.DB, userID uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func UsernameTaken(db *gorm.DB, username string, exceptID *uuid.UUID) (bool, error) {
	q := db.Model(&userModel.UserModel{}).Where("username = ?", username)
	if exceptID != nil {
		q = q.Where("id <> ?", *exceptID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func CreateUser(db *gorm.DB, user *userModel.UserModel) error {
	return db.Create(user).Error
}

func UpdateUserPassword(db *gorm.DB, userID uuid.UUID, hashed string) error {
	return db.Model(&userModel.UserModel{}).Where("id = ?", userID).Update("password", hashed).Error
}
