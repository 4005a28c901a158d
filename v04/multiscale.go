package v04

import (
	"fmt"

	ngff "github.com/zarrtools/ngff"
)

// Dataset is one resolution level of a multiscale pyramid: a storage path
// plus the ordered transforms mapping level coordinates into physical space.
type Dataset struct {
	Path                      string     `json:"path"`
	CoordinateTransformations Transforms `json:"coordinateTransformations"`
}

// Validate checks the dataset's transform list with a scale required,
// threading dim through, and returns the reconciled dimensionality.
func (d *Dataset) Validate(dim ngff.Dim) (ngff.Dim, error) {
	return validateTransforms(d.CoordinateTransformations, true, dim, "/coordinateTransformations")
}

// Multiscale is one pyramid group: an ordered axes list, its resolution
// levels, and an optional group-wide transform list applied after every
// per-level one. Name, Version, Type and Metadata are opaque and not subject
// to validation.
type Multiscale struct {
	Axes                      Axes           `json:"axes"`
	Datasets                  []Dataset      `json:"datasets"`
	CoordinateTransformations Transforms     `json:"coordinateTransformations,omitempty"`
	Name                      any            `json:"name,omitempty"`
	Version                   any            `json:"version,omitempty"`
	Type                      any            `json:"type,omitempty"`
	Metadata                  map[string]any `json:"metadata,omitempty"`
}

// NDim is the dimensionality of the group, fixed by its axis count.
func (m *Multiscale) NDim() int { return len(m.Axes) }

// Validate checks the axes list, then every dataset's transform list against
// the axis count, then the optional group-wide transform list. The first
// violation is returned, with paths naming the offending dataset.
func (m *Multiscale) Validate() error {
	if err := ValidateAxes(m.Axes); err != nil {
		return err
	}
	dim := ngff.KnownDim(m.NDim())
	for i, ds := range m.Datasets {
		base := fmt.Sprintf("/datasets/%d/coordinateTransformations", i)
		if _, err := validateTransforms(ds.CoordinateTransformations, true, dim, base); err != nil {
			if iss, ok := ngff.AsIssues(err); ok && len(iss) == 1 {
				if iss[0].Params == nil {
					iss[0].Params = map[string]any{}
				}
				iss[0].Params["dataset"] = ds.Path
				return iss
			}
			return err
		}
	}
	if m.CoordinateTransformations != nil {
		if _, err := validateTransforms(m.CoordinateTransformations, false, dim, "/coordinateTransformations"); err != nil {
			return err
		}
	}
	return nil
}

func (a Applier) levelTransforms(m *Multiscale, level int) (Transforms, error) {
	if level < 0 || level >= len(m.Datasets) {
		return nil, ngff.IssueAt("/datasets", ngff.CodeDatasetRange,
			fmt.Sprintf("no dataset at index %d", level),
			map[string]any{"index": level, "len": len(m.Datasets)})
	}
	return m.Datasets[level].CoordinateTransformations, nil
}

// ApplyLevel maps coord from the given pyramid level into physical space:
// the level's transforms in forward order, then the group-wide transforms in
// forward order.
func (a Applier) ApplyLevel(m *Multiscale, level int, coord []float64) error {
	ts, err := a.levelTransforms(m, level)
	if err != nil {
		return err
	}
	if err := a.ApplySequence(ts, coord); err != nil {
		return err
	}
	return a.ApplySequence(m.CoordinateTransformations, coord)
}

// InvertLevel maps coord from physical space back to the given pyramid
// level, mirroring ApplyLevel at both depths: the group-wide transforms are
// inverted first (in reverse order), then the level's transforms (in reverse
// order).
func (a Applier) InvertLevel(m *Multiscale, level int, coord []float64) error {
	ts, err := a.levelTransforms(m, level)
	if err != nil {
		return err
	}
	if err := a.InvertSequence(m.CoordinateTransformations, coord); err != nil {
		return err
	}
	return a.InvertSequence(ts, coord)
}
