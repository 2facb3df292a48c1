package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

const DefaultBcryptCost = 10

// HashPassword meng-hash password dengan bcrypt (cost di luar rentang → default).
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(b), nil
}

// CheckPassword true kalau password cocok dengan digest.
func CheckPassword(digest, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}

const (
	pwLower  = "abcdefghijkmnopqrstuvwxyz"
	pwUpper  = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	pwDigit  = "23456789"
	pwSymbol = "@$!%*?&_"
)

// GenerateRandomPassword membuat password acak yang lolos aturan strongpassword
// (minimal 1 huruf kecil, besar, angka, simbol).
func GenerateRandomPassword(n int) (string, error) {
	if n < 8 {
		return "", errors.New("panjang password minimal 8")
	}
	sets := []string{pwLower, pwUpper, pwDigit, pwSymbol}
	all := pwLower + pwUpper + pwDigit + pwSymbol

	out := make([]byte, n)
	for i := range out {
		set := all
		if i < len(sets) {
			set = sets[i]
		}
		c, err := randChar(set)
		if err != nil {
			return "", err
		}
		out[i] = c
	}
	// acak posisi agar 4 karakter wajib tidak selalu di depan
	for i := len(out) - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return "", err
		}
		k := j.Int64()
		out[i], out[k] = out[k], out[i]
	}
	return string(out), nil
}

func randChar(set string) (byte, error) {
	i, err := rand.Int(rand.Reader, big.NewInt(int64(len(set))))
	if err != nil {
		return 0, err
	}
	return set[i.Int64()], nil
}
