package v04

import (
	"fmt"

	json "github.com/goccy/go-json"

	ngff "github.com/zarrtools/ngff"
)

// Transform is one elementary coordinate transformation. The variant set is
// closed: Identity, Translation and Scale. Translation and Scale carry either
// an inline per-axis vector or a path to an externally stored one; resolving
// the latter is the job of an injected ngff.Resolver.
type Transform interface {
	// NDim is the dimensionality implied by the transform: the length of its
	// inline vector, or unknown for identity and reference-valued transforms.
	NDim() ngff.Dim
	isTransform()
}

// Identity is the no-op transform. It is a placeholder default only and is
// not a legal member of a validated transform list.
type Identity struct{}

// Translation displaces each coordinate element additively.
type Translation struct {
	Values []float64 // inline offset vector; nil when stored by reference
	Path   string    // reference to an external array
}

// Scale multiplies each coordinate element.
type Scale struct {
	Values []float64 // inline factor vector; nil when stored by reference
	Path   string    // reference to an external array
}

// NewTranslation returns a translation with an inline offset vector.
func NewTranslation(values []float64) Translation { return Translation{Values: values} }

// TranslationRef returns a translation whose vector is stored at path.
func TranslationRef(path string) Translation { return Translation{Path: path} }

// NewScale returns a scale with an inline factor vector.
func NewScale(values []float64) Scale { return Scale{Values: values} }

// ScaleRef returns a scale whose vector is stored at path.
func ScaleRef(path string) Scale { return Scale{Path: path} }

func (Identity) NDim() ngff.Dim { return ngff.UnknownDim() }

func (t Translation) NDim() ngff.Dim {
	if t.Values == nil {
		return ngff.UnknownDim()
	}
	return ngff.KnownDim(len(t.Values))
}

func (s Scale) NDim() ngff.Dim {
	if s.Values == nil {
		return ngff.UnknownDim()
	}
	return ngff.KnownDim(len(s.Values))
}

func (Identity) isTransform()    {}
func (Translation) isTransform() {}
func (Scale) isTransform()       {}

// Transforms is an ordered transform list with a wire codec discriminating on
// the "type" field.
type Transforms []Transform

type transformWire struct {
	Type        string    `json:"type"`
	Translation []float64 `json:"translation,omitempty"`
	Scale       []float64 `json:"scale,omitempty"`
	Path        string    `json:"path,omitempty"`
}

func (w transformWire) transform() (Transform, error) {
	switch w.Type {
	case "identity":
		return Identity{}, nil
	case "translation":
		if w.Translation != nil {
			return NewTranslation(w.Translation), nil
		}
		if w.Path != "" {
			return TranslationRef(w.Path), nil
		}
		return nil, fmt.Errorf("translation transform needs a translation vector or a path")
	case "scale":
		if w.Scale != nil {
			return NewScale(w.Scale), nil
		}
		if w.Path != "" {
			return ScaleRef(w.Path), nil
		}
		return nil, fmt.Errorf("scale transform needs a scale vector or a path")
	default:
		return nil, fmt.Errorf("unknown transform type %q", w.Type)
	}
}

func wireTransform(t Transform) transformWire {
	switch v := t.(type) {
	case Identity:
		return transformWire{Type: "identity"}
	case Translation:
		return transformWire{Type: "translation", Translation: v.Values, Path: v.Path}
	case Scale:
		return transformWire{Type: "scale", Scale: v.Values, Path: v.Path}
	default:
		panic(fmt.Sprintf("v04: unknown transform variant %T", t))
	}
}

func (ts *Transforms) UnmarshalJSON(b []byte) error {
	var ws []transformWire
	if err := json.Unmarshal(b, &ws); err != nil {
		return err
	}
	out := make(Transforms, len(ws))
	for i, w := range ws {
		t, err := w.transform()
		if err != nil {
			return err
		}
		out[i] = t
	}
	*ts = out
	return nil
}

func (ts Transforms) MarshalJSON() ([]byte, error) {
	ws := make([]transformWire, len(ts))
	for i, t := range ts {
		ws[i] = wireTransform(t)
	}
	return json.Marshal(ws)
}

// ValidateTransforms checks a transform list assigned to one dataset level
// (requireScale true) or to a whole multiscale group (requireScale false).
// Rules, in sequence order:
//
//   - if requireScale and the list is empty, fail;
//   - Identity is never permitted inside a validated list;
//   - at most one translation and at most one scale;
//   - a translation must not appear before a scale;
//   - every element's dimensionality is reconciled against dim.
//
// The final reconciled dimensionality is returned; it can remain unknown if
// every transform is reference-valued.
func ValidateTransforms(ts []Transform, requireScale bool, dim ngff.Dim) (ngff.Dim, error) {
	return validateTransforms(ts, requireScale, dim, "/coordinateTransformations")
}

func validateTransforms(ts []Transform, requireScale bool, dim ngff.Dim, base string) (ngff.Dim, error) {
	if requireScale && len(ts) == 0 {
		return dim, ngff.IssueAt(base, ngff.CodeTransformMissingScale,
			"missing scale transform", nil)
	}
	hasScale := false
	hasTranslation := false
	for i, t := range ts {
		at := fmt.Sprintf("%s/%d", base, i)
		merged, err := ngff.MergeDim(dim, t.NDim())
		if err != nil {
			return dim, ngff.PrefixPath(err, at)
		}
		dim = merged
		switch t.(type) {
		case Identity:
			return dim, ngff.IssueAt(at, ngff.CodeTransformUnsupported,
				"unsupported transform: identity", nil)
		case Translation:
			if !hasScale {
				return dim, ngff.IssueAt(at, ngff.CodeTransformOrder,
					"translation found before scale", nil)
			}
			if hasTranslation {
				return dim, ngff.IssueAt(at, ngff.CodeTransformDuplicate,
					"multiple translations found", nil)
			}
			hasTranslation = true
		case Scale:
			if hasScale {
				return dim, ngff.IssueAt(at, ngff.CodeTransformDuplicate,
					"multiple scales found", nil)
			}
			hasScale = true
		}
	}
	return dim, nil
}
