package helper

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
)

func pgCode(err error) (string, string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code), pqErr.Constraint
	}
	return "", ""
}

// IsUniqueViolation mengenali pelanggaran unique constraint dari driver mana pun.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	if code, _ := pgCode(err); code != "" {
		return code == pgUniqueViolation
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint")
}

// MapDBError menerjemahkan error storage ke *fiber.Error.
// Mengembalikan nil kalau error tidak dikenali (biarkan jadi 500).
func MapDBError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
	}
	if IsUniqueViolation(err) {
		return fiber.NewError(fiber.StatusConflict, "Data sudah ada")
	}
	code, _ := pgCode(err)
	switch code {
	case pgForeignKeyViolation:
		return fiber.NewError(fiber.StatusBadRequest, "Data referensi tidak valid")
	case pgNotNullViolation, pgCheckViolation:
		return fiber.NewError(fiber.StatusBadRequest, "Data tidak memenuhi constraint")
	}
	if strings.Contains(strings.ToLower(err.Error()), "foreign key constraint") {
		return fiber.NewError(fiber.StatusBadRequest, "Data referensi tidak valid")
	}
	return nil
}
