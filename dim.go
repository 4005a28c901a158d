package ngff

import "fmt"

// Dim is an optionally known dimensionality. The zero value is unknown.
// Reference-valued coordinate transformations, for example, have no inline
// vector to measure, so their dimensionality stays unknown until resolved.
type Dim struct {
	n     int
	known bool
}

// KnownDim returns a dimensionality known to be n.
func KnownDim(n int) Dim { return Dim{n: n, known: true} }

// UnknownDim returns an unknown dimensionality.
func UnknownDim() Dim { return Dim{} }

// Value reports the count and whether it is known.
func (d Dim) Value() (int, bool) { return d.n, d.known }

// Known reports whether the dimensionality is known.
func (d Dim) Known() bool { return d.known }

func (d Dim) String() string {
	if !d.known {
		return "?"
	}
	return fmt.Sprintf("%d", d.n)
}

// MergeDim reconciles two optionally known dimensionalities. An unknown side
// merges to the other unconditionally; two known counts must agree or the
// merge fails with a dim_mismatch issue carrying both counts.
func MergeDim(a, b Dim) (Dim, error) {
	if !a.known {
		return b, nil
	}
	if !b.known {
		return a, nil
	}
	if a.n != b.n {
		return Dim{}, IssueAt("/", CodeDimMismatch,
			fmt.Sprintf("inconsistent dimensionalities: %d, %d", a.n, b.n),
			map[string]any{"a": a.n, "b": b.n})
	}
	return a, nil
}
