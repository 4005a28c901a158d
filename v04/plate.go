package v04

import (
	"fmt"
	"unicode"

	ngff "github.com/zarrtools/ngff"
)

// AcquisitionID identifies one imaging run, unique within a plate.
type AcquisitionID uint64

// Acquisition is one timed imaging run over a plate.
type Acquisition struct {
	ID                AcquisitionID `json:"id"`
	Name              string        `json:"name,omitempty"`
	MaximumFieldCount *int          `json:"maximumfieldcount,omitempty"`
	Description       string        `json:"description,omitempty"`
	StartTime         *uint64       `json:"starttime,omitempty"`
	EndTime           *uint64       `json:"endtime,omitempty"`
}

// Index is a named row or column slot of a plate grid.
type Index struct {
	Name string `json:"name"`
}

// PlateWell is one grid cell of a plate. Its path must equal
// "{row_name}/{column_name}" for the indices it references.
type PlateWell struct {
	Path        string `json:"path"`
	RowIndex    int    `json:"rowIndex"`
	ColumnIndex int    `json:"columnIndex"`
}

// Plate is a grid of imaging wells indexed by row and column.
type Plate struct {
	Acquisitions []Acquisition `json:"acquisitions,omitempty"`
	Columns      []Index       `json:"columns"`
	FieldCount   *int          `json:"field_count,omitempty"`
	Name         string        `json:"name,omitempty"`
	Rows         []Index       `json:"rows"`
	Version      string        `json:"version,omitempty"`
	Wells        []PlateWell   `json:"wells"`
}

func alphanumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func validateIndices(idxs []Index, base string) error {
	names := make(map[string]struct{}, len(idxs))
	for i, idx := range idxs {
		at := fmt.Sprintf("%s/%d", base, i)
		if _, dup := names[idx.Name]; dup {
			return ngff.IssueAt(at, ngff.CodePlateDuplicateIndex,
				"row or column names not unique: "+idx.Name,
				map[string]any{"name": idx.Name})
		}
		names[idx.Name] = struct{}{}
		if !alphanumeric(idx.Name) {
			return ngff.IssueAt(at, ngff.CodePlateInvalidIndexName,
				"index names must be alphanumeric: "+idx.Name,
				map[string]any{"name": idx.Name})
		}
	}
	return nil
}

func validateAcquisitions(acqs []Acquisition) error {
	ids := make(map[AcquisitionID]struct{}, len(acqs))
	for i, acq := range acqs {
		at := fmt.Sprintf("/acquisitions/%d", i)
		if _, dup := ids[acq.ID]; dup {
			return ngff.IssueAt(at, ngff.CodePlateDuplicateAcquisition,
				fmt.Sprintf("acquisition ids not unique: %d", acq.ID),
				map[string]any{"id": uint64(acq.ID)})
		}
		ids[acq.ID] = struct{}{}
		if acq.StartTime == nil || acq.EndTime == nil {
			continue
		}
		if *acq.EndTime < *acq.StartTime {
			return ngff.IssueAt(at, ngff.CodePlateAcquisitionTime,
				"acquisition ends before it starts",
				map[string]any{"start": *acq.StartTime, "end": *acq.EndTime})
		}
	}
	return nil
}

// Validate checks the plate's row and column tables, its acquisitions when
// present, and the grid consistency of every well. The first violation is
// returned.
func (p *Plate) Validate() error {
	if err := validateIndices(p.Rows, "/rows"); err != nil {
		return err
	}
	if err := validateIndices(p.Columns, "/columns"); err != nil {
		return err
	}
	if p.Acquisitions != nil {
		if err := validateAcquisitions(p.Acquisitions); err != nil {
			return err
		}
	}
	for i, well := range p.Wells {
		at := fmt.Sprintf("/wells/%d", i)
		if well.RowIndex < 0 || well.RowIndex >= len(p.Rows) {
			return ngff.IssueAt(at+"/rowIndex", ngff.CodePlateIndexRange,
				fmt.Sprintf("no row at index %d", well.RowIndex),
				map[string]any{"index": well.RowIndex})
		}
		if well.ColumnIndex < 0 || well.ColumnIndex >= len(p.Columns) {
			return ngff.IssueAt(at+"/columnIndex", ngff.CodePlateIndexRange,
				fmt.Sprintf("no column at index %d", well.ColumnIndex),
				map[string]any{"index": well.ColumnIndex})
		}
		want := p.Rows[well.RowIndex].Name + "/" + p.Columns[well.ColumnIndex].Name
		if well.Path != want {
			return ngff.IssueAt(at+"/path", ngff.CodePlateInconsistentWell,
				fmt.Sprintf("well path %q inconsistent with indices (want %q)", well.Path, want),
				map[string]any{"got": well.Path, "want": want})
		}
	}
	return nil
}

// AcquisitionIDs collects the plate's acquisition ids for cross-checking well
// documents. It returns nil when the plate carries no acquisitions list, so
// the result can be handed to Well.Validate directly.
func (p *Plate) AcquisitionIDs() map[AcquisitionID]struct{} {
	if p.Acquisitions == nil {
		return nil
	}
	ids := make(map[AcquisitionID]struct{}, len(p.Acquisitions))
	for _, acq := range p.Acquisitions {
		ids[acq.ID] = struct{}{}
	}
	return ids
}
