package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseQuery(t *testing.T, query string) Params {
	t.Helper()
	var got Params
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		got = ParseFiber(c, "createdAt", "desc", DefaultOpts)
		return nil
	})
	_, err := app.Test(httptest.NewRequest("GET", "/"+query, nil))
	require.NoError(t, err)
	return got
}

func TestParseFiber(t *testing.T) {
	p := parseQuery(t, "")
	assert.Equal(t, Params{Page: 1, PerPage: 10, SortBy: "createdAt", SortOrder: "desc"}, p)

	p = parseQuery(t, "?page=3&limit=25&sortBy=namaInovasi&sortOrder=ASC")
	assert.Equal(t, Params{Page: 3, PerPage: 25, SortBy: "namaInovasi", SortOrder: "asc"}, p)

	p = parseQuery(t, "?page=-1&limit=1000&sortOrder=sideways")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 100, p.PerPage)
	assert.Equal(t, "desc", p.SortOrder)

	p = parseQuery(t, "?limit=abc")
	assert.Equal(t, 10, p.PerPage)
}

func TestBuildPagination(t *testing.T) {
	p := Params{Page: 2, PerPage: 10}
	assert.Equal(t, Pagination{Total: 25, Page: 2, Limit: 10, TotalPages: 3}, BuildPagination(25, p))
	assert.Equal(t, Pagination{Total: 0, Page: 2, Limit: 10, TotalPages: 0}, BuildPagination(0, p))
	assert.Equal(t, 10, p.Offset())
}

func TestOrderByWhitelist(t *testing.T) {
	allowed := map[string]string{"createdAt": "created_at", "nama": "nama"}

	ob := Params{SortBy: "nama", SortOrder: "asc"}.OrderBy(allowed, "createdAt")
	assert.Equal(t, "nama", ob.Column.Name)
	assert.False(t, ob.Desc)

	ob = Params{SortBy: "password; DROP TABLE users", SortOrder: "desc"}.OrderBy(allowed, "createdAt")
	assert.Equal(t, "created_at", ob.Column.Name)
	assert.True(t, ob.Desc)
}

func TestNormalizeSearch(t *testing.T) {
	assert.Equal(t, "sipt", NormalizeSearch("  ＳＩＰＴ "))
	assert.Equal(t, "", NormalizeSearch("   "))
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\%`, EscapeLike("50%"))
	assert.Equal(t, `opd\_1`, EscapeLike("opd_1"))
	assert.Equal(t, `a\\b`, EscapeLike(`a\b`))
	assert.Equal(t, "biasa", EscapeLike("biasa"))
}
