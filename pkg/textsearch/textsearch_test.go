package textsearch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTurkishAndWildcards(t *testing.T) {
	assert.Equal(t, "istanbul", Normalize("  İSTANBUL "))
	assert.Equal(t, "ilik", Normalize("ILIK"))
	assert.Equal(t, "ilik", Normalize("ılık"))
	assert.Equal(t, "şube", Normalize("ŞUBE"))
	assert.Equal(t, `100\% \_ok`, Normalize("100% _ok"))
}

func TestFoldColumnCoversTurkishCapitals(t *testing.T) {
	expr := FoldColumn("name")
	assert.True(t, strings.HasPrefix(expr, "LOWER(REPLACE("))
	for _, p := range turkishFold {
		assert.Contains(t, expr, "'"+p[0]+"', '"+p[1]+"'")
	}
}

func TestSQLFilter(t *testing.T) {
	clause, args := SQLFilter("name", "Ayşe")
	assert.Equal(t, FoldColumn("name")+" LIKE ? ESCAPE '\\'", clause)
	assert.Equal(t, []any{"%ayşe%"}, args)
}
