//go:build unit

package table_test

import (
	"strings"
	"testing"

	"tablebook/internal/domain/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCode(t *testing.T) {
	cases := []struct {
		name  string
		value string
		want  string
		errIs error
	}{
		{name: "plain code", value: "T-1", want: "T-1"},
		{name: "trims whitespace", value: "  A12  ", want: "A12"},
		{name: "maximum length", value: strings.Repeat("x", table.MaxCodeLength), want: strings.Repeat("x", table.MaxCodeLength)},
		{name: "empty", value: "", errIs: table.ErrEmptyCode},
		{name: "whitespace only", value: "   ", errIs: table.ErrEmptyCode},
		{name: "too long", value: strings.Repeat("x", table.MaxCodeLength+1), errIs: table.ErrCodeTooLong},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			code, err := table.NewCode(c.value)
			if c.errIs == nil {
				require.NoError(t, err)
				assert.Equal(t, c.want, code.String())
			} else {
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func TestNewCapacity(t *testing.T) {
	for _, valid := range []int{table.MinCapacity, 4, table.MaxCapacity} {
		capacity, err := table.NewCapacity(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, capacity.Value())
	}

	for _, invalid := range []int{0, -1, table.MaxCapacity + 1} {
		_, err := table.NewCapacity(invalid)
		require.ErrorIs(t, err, table.ErrInvalidCapacity)
	}
}
