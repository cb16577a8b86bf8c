//go:build unit

package shared_test

import (
	"testing"

	"shareit/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPage(t *testing.T) {
	cases := []struct {
		name       string
		from       int
		size       int
		wantNumber int
		wantOffset int32
		wantErr    string
	}{
		{name: "defaults", from: 0, size: 20, wantNumber: 0, wantOffset: 0},
		{name: "aligned offset", from: 40, size: 20, wantNumber: 2, wantOffset: 40},
		// A misaligned offset truncates onto the preceding page boundary.
		{name: "misaligned offset aliases down", from: 7, size: 5, wantNumber: 1, wantOffset: 5},
		{name: "offset smaller than size aliases to first page", from: 3, size: 20, wantNumber: 0, wantOffset: 0},
		{name: "size one", from: 9, size: 1, wantNumber: 9, wantOffset: 9},
		{name: "negative offset", from: -1, size: 20, wantErr: "page offset must not be less than zero: -1"},
		{name: "zero size", from: 0, size: 0, wantErr: "page size must not be less than one: 0"},
		{name: "negative size", from: 0, size: -5, wantErr: "page size must not be less than one: -5"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			page, err := shared.NewPage(c.from, c.size)

			if c.wantErr != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, shared.ErrInvalidPage)
				assert.Contains(t, err.Error(), c.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, c.wantNumber, page.Number)
			assert.Equal(t, int32(c.size), page.Limit())
			assert.Equal(t, c.wantOffset, page.Offset())
		})
	}
}
