package queryparams

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateClampsValues(t *testing.T) {
	p := ListParams{Page: -2, PerPage: 1000, OrderBy: "SIDEWAYS", Name: "  ada ", Status: " pending "}
	p.Validate()

	assert.Equal(t, DefaultPage, p.Page)
	assert.Equal(t, MaxPerPage, p.PerPage)
	assert.Equal(t, DefaultOrderBy, p.OrderBy)
	assert.Equal(t, "ada", p.Name)
	assert.Equal(t, "pending", p.Status)
}

func TestPagination(t *testing.T) {
	p := DefaultListParams("created_at")
	p.Page = 3
	assert.Equal(t, 20, p.CalculateOffset())

	assert.Equal(t, 0, CalculateTotalPages(0, 10))
	assert.Equal(t, 1, CalculateTotalPages(10, 10))
	assert.Equal(t, 2, CalculateTotalPages(11, 10))

	res := NewPaginatedResult([]string{"a"}, 25, p)
	assert.Equal(t, 3, res.Meta.TotalPages)
	assert.Equal(t, int64(25), res.Meta.TotalItems)
}
