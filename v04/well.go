package v04

import (
	"fmt"

	ngff "github.com/zarrtools/ngff"
)

// FieldOfView is one imaged position inside a well.
type FieldOfView struct {
	Path        string         `json:"path"`
	Acquisition *AcquisitionID `json:"acquisition,omitempty"`
}

// Well is one grid cell of a plate, holding an ordered list of imaged fields
// of view.
type Well struct {
	Version string        `json:"version,omitempty"`
	Images  []FieldOfView `json:"images"`
}

// Validate checks the well's field-of-view list. Paths must be alphanumeric
// and unique within the well. When acquisitions is non-nil (the ids of the
// owning plate, see Plate.AcquisitionIDs), every field of view must carry an
// acquisition id and that id must be a member of the set; with a nil set the
// acquisition ids are not checked at all.
func (w *Well) Validate(acquisitions map[AcquisitionID]struct{}) error {
	paths := make(map[string]struct{}, len(w.Images))
	for i, im := range w.Images {
		at := fmt.Sprintf("/images/%d", i)
		if !alphanumeric(im.Path) {
			return ngff.IssueAt(at+"/path", ngff.CodeWellInvalidPath,
				"field of view path must be alphanumeric: "+im.Path,
				map[string]any{"path": im.Path})
		}
		if _, dup := paths[im.Path]; dup {
			return ngff.IssueAt(at+"/path", ngff.CodeWellDuplicatePath,
				"field of view paths not unique: "+im.Path,
				map[string]any{"path": im.Path})
		}
		paths[im.Path] = struct{}{}
		if acquisitions == nil {
			continue
		}
		if im.Acquisition == nil {
			return ngff.IssueAt(at, ngff.CodeWellMissingAcquisition,
				"acquisition id required but not present", nil)
		}
		if _, ok := acquisitions[*im.Acquisition]; !ok {
			return ngff.IssueAt(at+"/acquisition", ngff.CodeWellUnknownAcquisition,
				fmt.Sprintf("unknown acquisition id %d", *im.Acquisition),
				map[string]any{"id": uint64(*im.Acquisition)})
		}
	}
	return nil
}
