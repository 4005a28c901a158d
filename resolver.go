package ngff

// Resolver supplies parameter vectors for coordinate transformations whose
// values are stored out-of-band: a translation or scale may carry a path to
// an external array instead of an inline vector. The engine calls Resolve
// exactly when it needs concrete numbers for such a transform.
//
// Resolution failures propagate as errors; they are never substituted with a
// default vector.
type Resolver interface {
	Resolve(path string) ([]float64, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(path string) ([]float64, error)

func (f ResolverFunc) Resolve(path string) ([]float64, error) { return f(path) }

// UnresolvedReference builds the error reported when a reference-valued
// transform is reached and no resolver is available.
func UnresolvedReference(path string) Issues {
	return IssueAt("/", CodeUnresolvedReference,
		"transform parameters stored by reference are not resolved: "+path,
		map[string]any{"path": path})
}
