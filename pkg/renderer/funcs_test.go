package renderer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStars(t *testing.T) {
	assert.Equal(t, "★★★☆☆", Stars(3))
	assert.Equal(t, "☆☆☆☆☆", Stars(-1))
	assert.Equal(t, "★★★★★", Stars(9))
}

func TestFormatAnswer(t *testing.T) {
	assert.Equal(t, "A, C", FormatAnswer([]any{"A", "C"}))
	assert.Equal(t, "A", FormatAnswer([]string{"A"}))
	assert.Equal(t, "4", FormatAnswer(float64(4)))
	assert.Equal(t, "CTO", FormatAnswer("CTO"))
	assert.Equal(t, "", FormatAnswer(nil))
}

func TestSeqAndFormatDate(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, Seq(3))
	assert.Empty(t, Seq(0))
	assert.Equal(t, "", FormatDate(time.Time{}))
}
