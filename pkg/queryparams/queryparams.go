package queryparams

import "strings"

const (
	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 100
	DefaultOrderBy = "desc"
)

// ListParams liste sayfalarında query string'den okunan filtre ve sayfalama bilgisi.
type ListParams struct {
	Page    int    `query:"page"`
	PerPage int    `query:"per_page"`
	Name    string `query:"name"`   // arama metni
	Status  string `query:"status"` // modül bazlı durum filtresi
	SortBy  string `query:"sortBy"`
	OrderBy string `query:"orderBy"`
}

// PaginationMeta görünüm için sayfalama bilgisi.
type PaginationMeta struct {
	CurrentPage int
	PerPage     int
	TotalItems  int64
	TotalPages  int
}

// PaginatedResult sayfalanmış liste sonucu.
type PaginatedResult struct {
	Data any
	Meta PaginationMeta
}

// DefaultListParams varsayılan değerlerle ListParams döndürür.
func DefaultListParams(sortBy string) ListParams {
	return ListParams{Page: DefaultPage, PerPage: DefaultPerPage, SortBy: sortBy, OrderBy: DefaultOrderBy}
}

// Validate sınır dışı değerleri düzeltir.
func (p *ListParams) Validate() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
	p.OrderBy = strings.ToLower(p.OrderBy)
	if p.OrderBy != "asc" && p.OrderBy != "desc" {
		p.OrderBy = DefaultOrderBy
	}
	p.Name = strings.TrimSpace(p.Name)
	p.Status = strings.TrimSpace(p.Status)
}

// CalculateOffset SQL offset değerini hesaplar.
func (p ListParams) CalculateOffset() int {
	return (p.Page - 1) * p.PerPage
}

// CalculateTotalPages toplam sayfa sayısı.
func CalculateTotalPages(total int64, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

// NewPaginatedResult meta bilgisini doldurarak sonuç üretir.
func NewPaginatedResult(data any, total int64, params ListParams) *PaginatedResult {
	return &PaginatedResult{
		Data: data,
		Meta: PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			TotalItems:  total,
			TotalPages:  CalculateTotalPages(total, params.PerPage),
		},
	}
}
