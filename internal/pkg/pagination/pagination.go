package pagination

import "github.com/gofiber/fiber/v2"

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
	// MaxPage keeps (page-1)*pageSize far from int overflow on every platform.
	MaxPage = 1_000_000
)

// Params is a clamped page request.
type Params struct {
	Page     int
	PageSize int
}

// New clamps page and pageSize into their valid ranges.
func New(page, pageSize int) Params {
	if page < 1 {
		page = DefaultPage
	}
	if page > MaxPage {
		page = MaxPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return Params{Page: page, PageSize: pageSize}
}

// FromQuery reads page and pageSize (page_size is accepted too).
func FromQuery(ctx *fiber.Ctx) Params {
	size := ctx.QueryInt("pageSize", 0)
	if size == 0 {
		size = ctx.QueryInt("page_size", 0)
	}
	return New(ctx.QueryInt("page", DefaultPage), size)
}

func (p Params) Offset() int {
	p = New(p.Page, p.PageSize)
	return (p.Page - 1) * p.PageSize
}

func (p Params) Limit() int {
	return New(p.Page, p.PageSize).PageSize
}

// Meta describes the page returned to the client.
type Meta struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

func NewMeta(p Params, total int64) Meta {
	totalPages := 0
	if total > 0 {
		totalPages = int((total + int64(p.PageSize) - 1) / int64(p.PageSize))
	}
	return Meta{
		Page:       p.Page,
		PageSize:   p.PageSize,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    p.Page < totalPages,
		HasPrev:    p.Page > 1,
	}
}

// Page is a list response with its metadata.
type Page[T any] struct {
	Items      []T  `json:"items"`
	Pagination Meta `json:"pagination"`
}

func NewPage[T any](items []T, p Params, total int64) *Page[T] {
	if items == nil {
		items = make([]T, 0)
	}
	return &Page[T]{Items: items, Pagination: NewMeta(p, total)}
}

// Slice pages an in-memory list.
func Slice[T any](items []T, p Params) []T {
	start := p.Offset()
	if start < 0 || start >= len(items) {
		return []T{}
	}
	end := start + p.Limit()
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
