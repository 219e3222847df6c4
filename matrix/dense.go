package matrix

import (
	"fmt"
	"math/cmplx"
)

// Dense is a row-major matrix of complex128 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int
	data []complex128
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Returns ErrBadShape if either dimension is non-positive.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return &Dense{r: rows, c: cols, data: make([]complex128, rows*cols)}, nil
}

// FromRows builds a Dense from row slices. Returns ErrBadShape when rows
// is empty or ragged.
func FromRows(rows [][]complex128) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}

	cols := len(rows[0])
	m := &Dense{r: len(rows), c: cols, data: make([]complex128, 0, len(rows)*cols)}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), cols, ErrBadShape)
		}
		m.data = append(m.data, row...)
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("(%d,%d) in %dx%d: %w", row, col, m.r, m.c, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
func (m *Dense) At(row, col int) (complex128, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set stores v at (row, col).
func (m *Dense) Set(row, col int, v complex128) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Add returns m + other. Shapes must match exactly.
func (m *Dense) Add(other *Dense) (*Dense, error) {
	if err := sameShape(m, other); err != nil {
		return nil, err
	}

	out := &Dense{r: m.r, c: m.c, data: make([]complex128, len(m.data))}
	for i := range m.data {
		out.data[i] = m.data[i] + other.data[i]
	}

	return out, nil
}

// Sub returns m − other. Shapes must match exactly.
func (m *Dense) Sub(other *Dense) (*Dense, error) {
	if err := sameShape(m, other); err != nil {
		return nil, err
	}

	out := &Dense{r: m.r, c: m.c, data: make([]complex128, len(m.data))}
	for i := range m.data {
		out.data[i] = m.data[i] - other.data[i]
	}

	return out, nil
}

// Mul returns the matrix product m · other.
// Requires m.Cols() == other.Rows(); otherwise ErrDimensionMismatch.
// Complexity: O(r·c·k) time.
func (m *Dense) Mul(other *Dense) (*Dense, error) {
	if m == nil || other == nil {
		return nil, ErrNilMatrix
	}
	if m.c != other.r {
		return nil, fmt.Errorf("%dx%d by %dx%d: %w", m.r, m.c, other.r, other.c, ErrDimensionMismatch)
	}

	out := &Dense{r: m.r, c: other.c, data: make([]complex128, m.r*other.c)}
	for i := 0; i < m.r; i++ {
		for k := 0; k < m.c; k++ {
			v := m.data[i*m.c+k]
			if v == 0 {
				continue
			}
			for j := 0; j < other.c; j++ {
				out.data[i*other.c+j] += v * other.data[k*other.c+j]
			}
		}
	}

	return out, nil
}

// Scale returns s·m.
func (m *Dense) Scale(s complex128) *Dense {
	out := &Dense{r: m.r, c: m.c, data: make([]complex128, len(m.data))}
	for i, v := range m.data {
		out.data[i] = s * v
	}

	return out
}

// AllClose reports whether m and other share a shape and agree entry-wise
// within eps in absolute value.
func (m *Dense) AllClose(other *Dense, eps float64) bool {
	if m == nil || other == nil || m.r != other.r || m.c != other.c {
		return false
	}
	for i := range m.data {
		if cmplx.Abs(m.data[i]-other.data[i]) > eps {
			return false
		}
	}

	return true
}

// sameShape validates that a and b are non-nil and congruent.
func sameShape(a, b *Dense) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if a.r != b.r || a.c != b.c {
		return fmt.Errorf("%dx%d vs %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}

	return nil
}

// PauliX returns the 2×2 Pauli X matrix.
func PauliX() *Dense {
	return &Dense{r: 2, c: 2, data: []complex128{0, 1, 1, 0}}
}

// PauliY returns the 2×2 Pauli Y matrix.
func PauliY() *Dense {
	return &Dense{r: 2, c: 2, data: []complex128{0, -1i, 1i, 0}}
}

// PauliZ returns the 2×2 Pauli Z matrix.
func PauliZ() *Dense {
	return &Dense{r: 2, c: 2, data: []complex128{1, 0, 0, -1}}
}
