package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	DefaultPage = 1
)

type Options struct {
	DefaultPerPage int
	MaxPerPage     int
}

// ===== Preset =====
var (
	DefaultOpts = Options{DefaultPerPage: 10, MaxPerPage: 100}
)

type Params struct {
	Page      int
	PerPage   int
	SortBy    string
	SortOrder string // asc|desc
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// ParseFiber: parse pagination/sorting langsung dari Fiber ctx.
// page, limit (alias per_page), sortBy (alias sort_by), sortOrder (alias order).
func ParseFiber(c *fiber.Ctx, defaultSortBy, defaultSortOrder string, opt Options) Params {
	if opt.DefaultPerPage <= 0 {
		opt = DefaultOpts
	}
	q := c.Queries()

	page := atoiDefault(q["page"], DefaultPage)
	if page < 1 {
		page = DefaultPage
	}

	per := atoiDefault(firstNonEmpty(q["limit"], q["per_page"]), opt.DefaultPerPage)
	if per < 1 {
		per = opt.DefaultPerPage
	}
	if opt.MaxPerPage > 0 && per > opt.MaxPerPage {
		per = opt.MaxPerPage
	}

	sortBy := strings.TrimSpace(firstNonEmpty(q["sortBy"], q["sort_by"]))
	if sortBy == "" {
		sortBy = defaultSortBy
	}

	order := strings.ToLower(strings.TrimSpace(firstNonEmpty(q["sortOrder"], q["order"])))
	if order != "asc" && order != "desc" {
		order = strings.ToLower(defaultSortOrder)
		if order != "asc" && order != "desc" {
			order = "desc"
		}
	}

	return Params{
		Page:      page,
		PerPage:   per,
		SortBy:    sortBy,
		SortOrder: order,
	}
}

// Limit & Offset
func (p Params) Limit() int  { return p.PerPage }
func (p Params) Offset() int { return (p.Page - 1) * p.PerPage }

// OrderBy: ORDER BY aman (kolom dari whitelist). Key tak dikenal jatuh ke defaultKey.
func (p Params) OrderBy(allowed map[string]string, defaultKey string) clause.OrderByColumn {
	col, ok := allowed[p.SortBy]
	if !ok {
		col = allowed[defaultKey]
	}
	return clause.OrderByColumn{
		Column: clause.Column{Name: col},
		Desc:   p.SortOrder != "asc",
	}
}

// Paginate menerapkan order/limit/offset ke query.
func (p Params) Paginate(q *gorm.DB, allowed map[string]string, defaultKey string) *gorm.DB {
	return q.Order(p.OrderBy(allowed, defaultKey)).Limit(p.Limit()).Offset(p.Offset())
}

func BuildPagination(total int64, p Params) Pagination {
	totalPages := 0
	if total > 0 && p.PerPage > 0 {
		totalPages = int((total + int64(p.PerPage) - 1) / int64(p.PerPage))
	}
	return Pagination{
		Total:      total,
		Page:       p.Page,
		Limit:      p.PerPage,
		TotalPages: totalPages,
	}
}
