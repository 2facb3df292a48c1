package helper

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	youtubeRe  = regexp.MustCompile(`^https://(www\.)?(youtube\.com|youtu\.be)/`)
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	phoneRe    = regexp.MustCompile(`^[0-9\-+()\s]+$`)
	digitsRe   = regexp.MustCompile(`^[0-9]+$`)
)

const passwordSymbols = "@$!%*?&_"

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator mengembalikan instance validator bersama (nama field = tag json).
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "" {
				name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			}
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		_ = v.RegisterValidation("youtube", func(fl validator.FieldLevel) bool {
			return IsYouTubeURL(fl.Field().String())
		})
		_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
			return usernameRe.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("strongpassword", func(fl validator.FieldLevel) bool {
			return IsStrongPassword(fl.Field().String())
		})
		_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
			return phoneRe.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("digits", func(fl validator.FieldLevel) bool {
			return digitsRe.MatchString(fl.Field().String())
		})
		validate = v
	})
	return validate
}

func IsYouTubeURL(s string) bool { return youtubeRe.MatchString(strings.TrimSpace(s)) }

// IsStrongPassword: minimal 1 huruf kecil, 1 huruf besar, 1 angka, 1 simbol,
// dan hanya boleh berisi huruf/angka/simbol yang diizinkan.
func IsStrongPassword(s string) bool {
	var lower, upper, digit, symbol bool
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		default:
			return false
		}
	}
	return lower && upper && digit && symbol
}

// ValidateStruct menjalankan validator dan mengubah hasilnya ke *ValidationError.
func ValidateStruct(s any) error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	ve := &ValidationError{Message: "Validasi gagal"}
	for _, fe := range verrs {
		ve.Add(fe.Field(), validationMessage(fe))
	}
	return ve
}

func validationMessage(fe validator.FieldError) string {
	f := fe.Field()
	isString := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required":
		return f + " wajib diisi"
	case "min":
		if isString {
			return fmt.Sprintf("%s minimal %s karakter", f, fe.Param())
		}
		return fmt.Sprintf("%s minimal %s", f, fe.Param())
	case "max":
		if isString {
			return fmt.Sprintf("%s maksimal %s karakter", f, fe.Param())
		}
		return fmt.Sprintf("%s maksimal %s", f, fe.Param())
	case "gte":
		return fmt.Sprintf("%s harus lebih besar atau sama dengan %s", f, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s harus salah satu dari: %s", f, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "email":
		return "Format email tidak valid"
	case "uuid", "uuid4":
		return f + " harus berupa UUID yang valid"
	case "youtube":
		return f + " harus berupa URL YouTube yang valid (https://youtube.com/... atau https://youtu.be/...)"
	case "username":
		return "Username hanya boleh mengandung huruf, angka, dan underscore"
	case "strongpassword":
		return "Password harus mengandung minimal 1 huruf kecil, 1 huruf besar, 1 angka, dan 1 simbol (" + passwordSymbols + ")"
	case "phone":
		return "Format nomor telepon tidak valid"
	case "digits":
		return f + " hanya boleh berisi angka"
	case "latitude":
		return "Format latitude tidak valid (-90 to 90)"
	case "longitude":
		return "Format longitude tidak valid (-180 to 180)"
	case "eqfield":
		return f + " tidak sesuai"
	default:
		return f + " tidak valid"
	}
}
