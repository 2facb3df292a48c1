package helper

import (
	"errors"
	"log"
	"strings"

	"inovasi_backend/internals/configs"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ValidationError membawa daftar kesalahan per-field; dirender sebagai 400.
type ValidationError struct {
	Message string
	Fields  []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return e.Message + " (" + strings.Join(parts, "; ") + ")"
}

// Add menambah satu field error.
func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *ValidationError) HasErrors() bool { return len(e.Fields) > 0 }

// ErrOrNil mengembalikan nil kalau tidak ada field error.
func (e *ValidationError) ErrOrNil() error {
	if e == nil || !e.HasErrors() {
		return nil
	}
	return e
}

func NewValidationError(field, message string) *ValidationError {
	ve := &ValidationError{Message: "Validasi gagal"}
	ve.Add(field, message)
	return ve
}

func ErrBadRequest(msg string) error   { return fiber.NewError(fiber.StatusBadRequest, msg) }
func ErrUnauthorized(msg string) error { return fiber.NewError(fiber.StatusUnauthorized, msg) }
func ErrForbidden(msg string) error    { return fiber.NewError(fiber.StatusForbidden, msg) }
func ErrNotFound(msg string) error     { return fiber.NewError(fiber.StatusNotFound, msg) }
func ErrConflict(msg string) error     { return fiber.NewError(fiber.StatusConflict, msg) }

// FromError merender error apa pun ke envelope standar.
// Urutan: ValidationError → *fiber.Error → error DB (MapDBError) → 500.
func FromError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	var ve *ValidationError
	if errors.As(err, &ve) {
		return JsonValidationError(c, ve.Message, ve.Fields)
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}

	if mapped := MapDBError(err); mapped != nil && errors.As(mapped, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}

	log.Printf("[ERROR] %s %s: %v", c.Method(), c.Path(), err)
	return JsonError(c, fiber.StatusInternalServerError, internalMessage(err))
}

func internalMessage(err error) string {
	if configs.IsProduction() {
		return "Terjadi kesalahan pada server"
	}
	return err.Error()
}

// ErrorHandler dipasang di fiber.Config untuk error yang lolos dari handler.
func ErrorHandler(c *fiber.Ctx, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
	}
	return FromError(c, err)
}
