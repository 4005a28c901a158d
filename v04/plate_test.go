package v04_test

import (
	"testing"

	json "github.com/goccy/go-json"

	ngff "github.com/zarrtools/ngff"
	"github.com/zarrtools/ngff/v04"
)

const plateExample = `
{
    "acquisitions": [
        {
            "id": 1,
            "maximumfieldcount": 2,
            "name": "Meas_01(2012-07-31_10-41-12)",
            "starttime": 1343731272000
        },
        {
            "id": 2,
            "maximumfieldcount": 2,
            "name": "Meas_02(201207-31_11-56-41)",
            "starttime": 1343735801000
        }
    ],
    "columns": [{"name": "1"}, {"name": "2"}, {"name": "3"}],
    "field_count": 4,
    "name": "test",
    "rows": [{"name": "A"}, {"name": "B"}],
    "version": "0.4",
    "wells": [
        {"path": "A/1", "rowIndex": 0, "columnIndex": 0},
        {"path": "A/2", "rowIndex": 0, "columnIndex": 1},
        {"path": "A/3", "rowIndex": 0, "columnIndex": 2},
        {"path": "B/1", "rowIndex": 1, "columnIndex": 0},
        {"path": "B/2", "rowIndex": 1, "columnIndex": 1},
        {"path": "B/3", "rowIndex": 1, "columnIndex": 2}
    ]
}
`

const sparsePlateExample = `
{
    "acquisitions": [
        {
            "id": 1,
            "maximumfieldcount": 1,
            "name": "single acquisition",
            "starttime": 1343731272000
        }
    ],
    "columns": [
        {"name": "1"}, {"name": "2"}, {"name": "3"}, {"name": "4"},
        {"name": "5"}, {"name": "6"}, {"name": "7"}, {"name": "8"},
        {"name": "9"}, {"name": "10"}, {"name": "11"}, {"name": "12"}
    ],
    "field_count": 1,
    "name": "sparse test",
    "rows": [
        {"name": "A"}, {"name": "B"}, {"name": "C"}, {"name": "D"},
        {"name": "E"}, {"name": "F"}, {"name": "G"}, {"name": "H"}
    ],
    "version": "0.4",
    "wells": [
        {"path": "C/5", "rowIndex": 2, "columnIndex": 4},
        {"path": "D/7", "rowIndex": 3, "columnIndex": 6}
    ]
}
`

func decodePlate(t *testing.T, s string) *v04.Plate {
	t.Helper()
	var p v04.Plate
	if err := json.Unmarshal([]byte(s), &p); err != nil {
		t.Fatalf("decoding plate: %v", err)
	}
	return &p
}

func TestPlate_ValidateExamples(t *testing.T) {
	for _, s := range []string{plateExample, sparsePlateExample} {
		p := decodePlate(t, s)
		if err := p.Validate(); err != nil {
			t.Fatalf("example should validate: %v", err)
		}
	}
}

func uintp(v uint64) *uint64 { return &v }

func TestPlate_Violations(t *testing.T) {
	rows := []v04.Index{{Name: "A"}, {Name: "B"}}
	cols := []v04.Index{{Name: "1"}, {Name: "2"}, {Name: "3"}}
	cases := []struct {
		name string
		p    v04.Plate
		code string
	}{
		{
			name: "well index and path disagree",
			p: v04.Plate{Rows: rows, Columns: cols, Wells: []v04.PlateWell{
				{Path: "A/3", RowIndex: 0, ColumnIndex: 0},
			}},
			code: ngff.CodePlateInconsistentWell,
		},
		{
			name: "row index out of range",
			p: v04.Plate{Rows: rows, Columns: cols, Wells: []v04.PlateWell{
				{Path: "C/1", RowIndex: 2, ColumnIndex: 0},
			}},
			code: ngff.CodePlateIndexRange,
		},
		{
			name: "column index out of range",
			p: v04.Plate{Rows: rows, Columns: cols, Wells: []v04.PlateWell{
				{Path: "A/4", RowIndex: 0, ColumnIndex: 3},
			}},
			code: ngff.CodePlateIndexRange,
		},
		{
			name: "duplicate row name",
			p:    v04.Plate{Rows: []v04.Index{{Name: "A"}, {Name: "A"}}, Columns: cols},
			code: ngff.CodePlateDuplicateIndex,
		},
		{
			name: "non-alphanumeric column name",
			p:    v04.Plate{Rows: rows, Columns: []v04.Index{{Name: "1"}, {Name: "2/b"}}},
			code: ngff.CodePlateInvalidIndexName,
		},
		{
			name: "duplicate acquisition id",
			p: v04.Plate{Rows: rows, Columns: cols, Acquisitions: []v04.Acquisition{
				{ID: 1}, {ID: 1},
			}},
			code: ngff.CodePlateDuplicateAcquisition,
		},
		{
			name: "acquisition ends before start",
			p: v04.Plate{Rows: rows, Columns: cols, Acquisitions: []v04.Acquisition{
				{ID: 1, StartTime: uintp(1000), EndTime: uintp(500)},
			}},
			code: ngff.CodePlateAcquisitionTime,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.p.Validate()
			if code := ngff.CodeOf(err); code != tc.code {
				t.Fatalf("expected %s, got %v", tc.code, err)
			}
		})
	}
}

func TestPlate_AcquisitionTimes(t *testing.T) {
	rows := []v04.Index{{Name: "A"}, {Name: "B"}}
	cols := []v04.Index{{Name: "1"}, {Name: "2"}}
	cases := []struct {
		name string
		acq  v04.Acquisition
	}{
		{"start only", v04.Acquisition{ID: 1, StartTime: uintp(1000)}},
		{"equal start and end", v04.Acquisition{ID: 1, StartTime: uintp(1000), EndTime: uintp(1000)}},
		{"end only", v04.Acquisition{ID: 1, EndTime: uintp(1000)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := v04.Plate{Rows: rows, Columns: cols, Acquisitions: []v04.Acquisition{tc.acq}}
			if err := p.Validate(); err != nil {
				t.Fatalf("expected valid, got %v", err)
			}
		})
	}
}

func TestPlate_AcquisitionIDs(t *testing.T) {
	p := decodePlate(t, plateExample)
	ids := p.AcquisitionIDs()
	if len(ids) != 2 {
		t.Fatalf("expected 2 ids, got %v", ids)
	}
	for _, want := range []v04.AcquisitionID{1, 2} {
		if _, ok := ids[want]; !ok {
			t.Fatalf("missing id %d in %v", want, ids)
		}
	}

	var bare v04.Plate
	if ids := bare.AcquisitionIDs(); ids != nil {
		t.Fatalf("plate without acquisitions should yield nil, got %v", ids)
	}
}

func TestPlate_EncodeRoundTrip(t *testing.T) {
	p := decodePlate(t, plateExample)
	out, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("encoding plate: %v", err)
	}
	p2 := decodePlate(t, string(out))
	if err := p2.Validate(); err != nil {
		t.Fatalf("re-decoded plate should validate: %v", err)
	}
	if len(p2.Wells) != len(p.Wells) || p2.Name != p.Name || len(p2.Acquisitions) != 2 {
		t.Fatalf("round trip lost data: %+v", p2)
	}
}
