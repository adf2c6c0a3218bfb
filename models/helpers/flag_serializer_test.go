package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlag(t *testing.T) {
	assert.Equal(t, "1", Flag(true))
	assert.Equal(t, "0", Flag(false))
}

func TestParseFlag(t *testing.T) {
	cases := []struct {
		in   any
		want bool
	}{
		{"1", true},
		{"0", false},
		{"2", true},
		{" 1 ", true},
		{"", false},
		{nil, false},
		{[]byte("1"), true},
		{int64(0), false},
		{int64(3), true},
		{true, true},
		{"true", true},
	}
	for _, tc := range cases {
		got, err := ParseFlag(tc.in)
		require.NoError(t, err, "%v", tc.in)
		assert.Equal(t, tc.want, got, "%v", tc.in)
	}

	_, err := ParseFlag("evet")
	assert.Error(t, err)
	_, err = ParseFlag(3.5)
	assert.Error(t, err)
}
