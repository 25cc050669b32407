package rotate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSquareLen(t *testing.T) {
	t.Run("zero is a trivial square", func(t *testing.T) {
		n, ok := SquareLen(0)
		assert.True(t, ok)
		assert.Equal(t, 0, n)
	})

	t.Run("exact for every k*k up to a large bound", func(t *testing.T) {
		for k := 0; k <= 5000; k++ {
			n, ok := SquareLen(k * k)
			require.True(t, ok, "k=%d", k)
			require.Equal(t, k, n, "k=%d", k)
		}
	})

	t.Run("rejects non-squares", func(t *testing.T) {
		for _, length := range []int{2, 3, 5, 8, 10, 15, 99, 10000001} {
			_, ok := SquareLen(length)
			assert.False(t, ok, "length=%d", length)
		}
	})

	t.Run("rejects neighbors of large squares", func(t *testing.T) {
		// Stress the ±1 correction around squares big enough for the
		// float64 sqrt estimate to drift.
		for _, k := range []int{46341, 1 << 20, 94906265} {
			n, ok := SquareLen(k * k)
			require.True(t, ok)
			require.Equal(t, k, n)

			_, ok = SquareLen(k*k - 1)
			assert.False(t, ok)
			_, ok = SquareLen(k*k + 1)
			assert.False(t, ok)
		}
	})

	t.Run("rejects negative lengths", func(t *testing.T) {
		_, ok := SquareLen(-4)
		assert.False(t, ok)
	})
}

func TestRotateRight(t *testing.T) {
	t.Run("empty table", func(t *testing.T) {
		err := RotateRight([]int{})
		assert.ErrorIs(t, err, ErrEmptyTable)
	})

	t.Run("non-square lengths", func(t *testing.T) {
		for _, length := range []int{2, 3, 5, 8, 10, 15, 99} {
			data := make([]int, length)
			err := RotateRight(data)
			assert.ErrorIs(t, err, ErrNotSquare, "length=%d", length)
		}
	})

	t.Run("single element is unchanged", func(t *testing.T) {
		data := []int{-5}
		require.NoError(t, RotateRight(data))
		assert.Equal(t, []int{-5}, data)
	})

	t.Run("known rotations", func(t *testing.T) {
		cases := []struct {
			name string
			in   []int
			want []int
		}{
			{"2x2", []int{1, 2, 3, 4}, []int{3, 1, 4, 2}},
			{"2x2 negative", []int{-1, -2, -3, -4}, []int{-3, -1, -4, -2}},
			{"3x3", []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, []int{4, 1, 2, 7, 5, 3, 8, 9, 6}},
			{
				"4x4",
				[]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16},
				[]int{5, 1, 2, 3, 9, 10, 6, 4, 13, 11, 7, 8, 14, 15, 16, 12},
			},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				data := append([]int(nil), tc.in...)
				require.NoError(t, RotateRight(data))
				assert.Equal(t, tc.want, data)
			})
		}
	})

	t.Run("generic over element type", func(t *testing.T) {
		data := []string{"a", "b", "c", "d"}
		require.NoError(t, RotateRight(data))
		assert.Equal(t, []string{"c", "a", "d", "b"}, data)
	})

	t.Run("odd center cell stays fixed", func(t *testing.T) {
		data := sequentialTable(5)
		require.NoError(t, RotateRight(data))
		assert.Equal(t, 12, data[idx(5, 2, 2)])
	})

	t.Run("deterministic", func(t *testing.T) {
		a := sequentialTable(6)
		b := sequentialTable(6)
		require.NoError(t, RotateRight(a))
		require.NoError(t, RotateRight(a))
		require.NoError(t, RotateRight(b))
		require.NoError(t, RotateRight(b))
		assert.Equal(t, a, b)
	})
}

// TestRotateRight_RingPeriod checks the cyclic property: ring L holds
// 4*(n-1-2L) elements, so that many one-step rotations restore it.
func TestRotateRight_RingPeriod(t *testing.T) {
	for n := 2; n <= 7; n++ {
		original := sequentialTable(n)
		for layer := 0; layer < n/2; layer++ {
			period := 4 * (n - 1 - 2*layer)

			data := sequentialTable(n)
			for i := 0; i < period; i++ {
				require.NoError(t, RotateRight(data))
			}

			for _, pos := range ringPositions(n, layer) {
				assert.Equal(t, original[pos], data[pos],
					"n=%d layer=%d pos=%d", n, layer, pos)
			}
		}
	}
}

// sequentialTable builds an n×n table filled with 0..n*n-1.
func sequentialTable(n int) []int {
	data := make([]int, n*n)
	for i := range data {
		data[i] = i
	}
	return data
}

// ringPositions returns the flat indices of ring `layer` in an n×n table.
func ringPositions(n, layer int) []int {
	first := layer
	last := n - 1 - layer
	if first == last {
		return []int{idx(n, first, first)}
	}

	var pos []int
	for col := first; col <= last; col++ {
		pos = append(pos, idx(n, first, col))
	}
	for row := first + 1; row <= last; row++ {
		pos = append(pos, idx(n, row, last))
	}
	for col := last - 1; col >= first; col-- {
		pos = append(pos, idx(n, last, col))
	}
	for row := last - 1; row > first; row-- {
		pos = append(pos, idx(n, row, first))
	}
	return pos
}
