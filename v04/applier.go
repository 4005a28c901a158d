package v04

import (
	"fmt"

	ngff "github.com/zarrtools/ngff"
)

// Applier applies and inverts coordinate transformations over a fixed-length
// coordinate buffer, mutated in place. The zero value is ready to use;
// reference-valued transforms then fail with transform_unresolved_ref until a
// Resolver is supplied.
//
// Every call reconciles the transform's dimensionality against the buffer
// length first; on any error the buffer is left untouched.
type Applier struct {
	Resolver ngff.Resolver
}

// vector returns the concrete parameter vector of a translation or scale,
// resolving a reference when needed, checked against the coordinate length.
func (a Applier) vector(values []float64, path string, coord []float64) ([]float64, error) {
	if values == nil {
		if a.Resolver == nil {
			return nil, ngff.UnresolvedReference(path)
		}
		v, err := a.Resolver.Resolve(path)
		if err != nil {
			return nil, ngff.Issues{ngff.Issue{
				Path:    "/",
				Code:    ngff.CodeUnresolvedReference,
				Message: "resolving transform parameters at " + path,
				Cause:   err,
				Params:  map[string]any{"path": path},
			}}
		}
		values = v
	}
	if _, err := ngff.MergeDim(ngff.KnownDim(len(values)), ngff.KnownDim(len(coord))); err != nil {
		return nil, err
	}
	return values, nil
}

// Apply applies t to coord in place.
func (a Applier) Apply(t Transform, coord []float64) error {
	switch v := t.(type) {
	case Identity:
		return nil
	case Translation:
		vec, err := a.vector(v.Values, v.Path, coord)
		if err != nil {
			return err
		}
		for i, off := range vec {
			coord[i] += off
		}
		return nil
	case Scale:
		vec, err := a.vector(v.Values, v.Path, coord)
		if err != nil {
			return err
		}
		for i, f := range vec {
			coord[i] *= f
		}
		return nil
	default:
		return ngff.IssueAt("/", ngff.CodeTransformUnsupported,
			fmt.Sprintf("unknown transform variant %T", t), nil)
	}
}

// Invert applies the inverse of t to coord in place. Inverting a scale with a
// zero factor fails with a zero_scale issue naming the offending element;
// the buffer is not touched.
func (a Applier) Invert(t Transform, coord []float64) error {
	switch v := t.(type) {
	case Identity:
		return nil
	case Translation:
		vec, err := a.vector(v.Values, v.Path, coord)
		if err != nil {
			return err
		}
		for i, off := range vec {
			coord[i] -= off
		}
		return nil
	case Scale:
		vec, err := a.vector(v.Values, v.Path, coord)
		if err != nil {
			return err
		}
		for i, f := range vec {
			if f == 0 {
				return ngff.IssueAt("/", ngff.CodeZeroScale,
					fmt.Sprintf("cannot invert zero scale factor at element %d", i),
					map[string]any{"index": i})
			}
		}
		for i, f := range vec {
			coord[i] /= f
		}
		return nil
	default:
		return ngff.IssueAt("/", ngff.CodeTransformUnsupported,
			fmt.Sprintf("unknown transform variant %T", t), nil)
	}
}

// ApplySequence applies ts to coord in order: the first element's effect is
// applied first.
func (a Applier) ApplySequence(ts []Transform, coord []float64) error {
	for _, t := range ts {
		if err := a.Apply(t, coord); err != nil {
			return err
		}
	}
	return nil
}

// InvertSequence inverts ts over coord in reverse order, the exact mirror of
// ApplySequence, so that InvertSequence(ts, ApplySequence(ts, x)) == x for
// any consistent sequence of translations and scales.
func (a Applier) InvertSequence(ts []Transform, coord []float64) error {
	for i := len(ts) - 1; i >= 0; i-- {
		if err := a.Invert(ts[i], coord); err != nil {
			return err
		}
	}
	return nil
}
