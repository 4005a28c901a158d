package v04

import (
	"strconv"

	ngff "github.com/zarrtools/ngff"
)

// Metadata is the root attribute document of a v0.4 group. All members are
// optional; which ones appear depends on what kind of group the document
// annotates.
type Metadata struct {
	Multiscales []Multiscale `json:"multiscales,omitempty"`
	Labels      []string     `json:"labels,omitempty"`
	ImageLabel  *ImageLabel  `json:"image-label,omitempty"`
	Plate       *Plate       `json:"plate,omitempty"`
	Well        *Well        `json:"well,omitempty"`
}

// Validate checks every member the document carries, returning the first
// violation with paths rooted at the document. A well sharing a document with
// a plate is cross-checked against that plate's acquisition ids; a well on
// its own is validated without an acquisition set.
func (m *Metadata) Validate() error {
	for i, ms := range m.Multiscales {
		if err := ms.Validate(); err != nil {
			return ngff.PrefixPath(err, indexPath("/multiscales", i))
		}
	}
	if m.ImageLabel != nil {
		if err := m.ImageLabel.Validate(); err != nil {
			return ngff.PrefixPath(err, "/image-label")
		}
	}
	if m.Plate != nil {
		if err := m.Plate.Validate(); err != nil {
			return ngff.PrefixPath(err, "/plate")
		}
	}
	if m.Well != nil {
		var acqs map[AcquisitionID]struct{}
		if m.Plate != nil {
			acqs = m.Plate.AcquisitionIDs()
		}
		if err := m.Well.Validate(acqs); err != nil {
			return ngff.PrefixPath(err, "/well")
		}
	}
	return nil
}

func indexPath(base string, i int) string {
	return base + "/" + strconv.Itoa(i)
}
