package helper

import (
	"strings"

	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

// NormalizeSearch: NFKC + lowercase + trim.
func NormalizeSearch(s string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFKC.String(s)))
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// EscapeLike meng-escape wildcard LIKE (\, %, _) supaya cocok literal.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// ApplySearch menambahkan (LOWER(a) LIKE ? OR LOWER(b) LIKE ? ...) ke query.
// Kolom berasal dari kode, bukan dari input user.
func ApplySearch(q *gorm.DB, term string, cols ...string) *gorm.DB {
	term = NormalizeSearch(term)
	if term == "" || len(cols) == 0 {
		return q
	}
	like := "%" + EscapeLike(term) + "%"
	parts := make([]string, 0, len(cols))
	args := make([]any, 0, len(cols))
	for _, col := range cols {
		parts = append(parts, "LOWER("+col+`) LIKE ? ESCAPE '\'`)
		args = append(args, like)
	}
	return q.Where("("+strings.Join(parts, " OR ")+")", args...)
}
