// Package rotate validates and rotates square numerical tables stored as
// flat row-major slices. A table is rotated by shifting every element one
// position clockwise around its concentric ring.
// Implements: docs/ARCHITECTURE § Rotation Core.
package rotate

import (
	"errors"
	"math"
)

// Rotation errors. Both depend only on the slice length, never on its
// contents, and are returned before any element is touched.
var (
	// ErrEmptyTable indicates the input slice has no elements. Emptiness
	// is rejected before squareness: a 0×0 table is never rotated.
	ErrEmptyTable = errors.New("table is empty")
	// ErrNotSquare indicates the slice length is not a perfect square.
	ErrNotSquare = errors.New("table length is not a perfect square")
)

// SquareLen returns the side length n with n*n == length, and whether such
// an n exists. SquareLen(0) returns (0, true): zero is a perfect square.
//
// The math.Sqrt estimate is corrected by integer adjustment before the
// final n*n check, so the result is exact for every int length and never
// suffers floating-point rounding on large inputs.
func SquareLen(length int) (int, bool) {
	if length < 0 {
		return 0, false
	}

	n := int(math.Sqrt(float64(length)))
	for n > 0 && n*n > length {
		n--
	}
	for (n+1)*(n+1) <= length {
		n++
	}

	if n*n != length {
		return 0, false
	}
	return n, true
}

// RotateRight rotates an N×N table one step clockwise, in place.
//
// The slice holds the table row by row: [1, 2, 3, 4] is the 2×2 table
// [[1, 2], [3, 4]] and rotates to [[3, 1], [4, 2]], written back as
// [3, 1, 4, 2]. Each concentric ring is walked once from the outside in,
// carrying a single value around the ring, so the whole rotation touches
// every element exactly once: O(N²) time, O(1) extra space.
//
// Returns ErrEmptyTable for a zero-length slice and ErrNotSquare when the
// length is not a perfect square; the slice is untouched on error. Side
// lengths 0 and 1 have no ring structure and succeed without change.
func RotateRight[T any](data []T) error {
	if len(data) == 0 {
		return ErrEmptyTable
	}

	n, ok := SquareLen(len(data))
	if !ok {
		return ErrNotSquare
	}
	if n <= 1 {
		return nil
	}

	// Outermost ring first. A ring that collapses to the single center
	// cell (odd n) has nothing to move, so layers stop at n/2.
	for layer := 0; layer < n/2; layer++ {
		rotateRing(data, n, layer)
	}
	return nil
}

// rotateRing shifts one ring of the table a single position clockwise.
//
// The walk visits the top row left→right, the right column downward, the
// bottom row right→left, and the left column upward, swapping the carried
// value into each cell. The carry is seeded from the cell just below the
// ring's top-left corner: that is the value that lands on the corner once
// the whole ring has shifted.
func rotateRing[T any](data []T, n, layer int) {
	first := layer
	last := n - 1 - layer

	prev := data[idx(n, first+1, first)]

	// Top row: left → right.
	for col := first; col <= last; col++ {
		prev, data[idx(n, first, col)] = data[idx(n, first, col)], prev
	}

	// Right column: top+1 → bottom.
	for row := first + 1; row <= last; row++ {
		prev, data[idx(n, row, last)] = data[idx(n, row, last)], prev
	}

	// Bottom row: right-1 → left.
	for col := last - 1; col >= first; col-- {
		prev, data[idx(n, last, col)] = data[idx(n, last, col)], prev
	}

	// Left column: bottom-1 → top+1. The seed cell is written last.
	for row := last - 1; row > first; row-- {
		prev, data[idx(n, row, first)] = data[idx(n, row, first)], prev
	}
}

// idx maps (row, col) in an n-wide grid to its flat row-major index.
func idx(n, row, col int) int {
	return row*n + col
}
