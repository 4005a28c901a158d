package v04

import (
	"fmt"

	json "github.com/goccy/go-json"

	ngff "github.com/zarrtools/ngff"
)

// Axis is one named coordinate dimension of an image's logical array. The
// variant set is closed: SpaceAxis, TimeAxis, ChannelAxis and CustomAxis.
type Axis interface {
	// AxisName returns the axis name, unique within an axes list.
	AxisName() string
	isAxis()
}

// SpaceAxis is a spatial dimension.
type SpaceAxis struct {
	Name string
	Unit SpaceUnit // empty when unspecified
}

// TimeAxis is a temporal dimension.
type TimeAxis struct {
	Name string
	Unit TimeUnit // empty when unspecified
}

// ChannelAxis is a channel dimension; its unit, when present, is free-form.
type ChannelAxis struct {
	Name string
	Unit string
}

// CustomAxis is a dimension with a free-form type tag (or none at all).
type CustomAxis struct {
	Name string
	Type string // empty when the document carries no type tag
	Unit string
}

func (a SpaceAxis) AxisName() string   { return a.Name }
func (a TimeAxis) AxisName() string    { return a.Name }
func (a ChannelAxis) AxisName() string { return a.Name }
func (a CustomAxis) AxisName() string  { return a.Name }

func (SpaceAxis) isAxis()   {}
func (TimeAxis) isAxis()    {}
func (ChannelAxis) isAxis() {}
func (CustomAxis) isAxis()  {}

// Axes is an ordered axes list with a wire codec discriminating on the
// "type" field.
type Axes []Axis

type axisWire struct {
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
	Unit string `json:"unit,omitempty"`
}

func (w axisWire) axis() Axis {
	switch w.Type {
	case "space":
		return SpaceAxis{Name: w.Name, Unit: SpaceUnit(w.Unit)}
	case "time":
		return TimeAxis{Name: w.Name, Unit: TimeUnit(w.Unit)}
	case "channel":
		return ChannelAxis{Name: w.Name, Unit: w.Unit}
	default:
		// Unrecognized or absent type tags decode as custom axes.
		return CustomAxis{Name: w.Name, Type: w.Type, Unit: w.Unit}
	}
}

func wireAxis(a Axis) axisWire {
	switch t := a.(type) {
	case SpaceAxis:
		return axisWire{Name: t.Name, Type: "space", Unit: string(t.Unit)}
	case TimeAxis:
		return axisWire{Name: t.Name, Type: "time", Unit: string(t.Unit)}
	case ChannelAxis:
		return axisWire{Name: t.Name, Type: "channel", Unit: t.Unit}
	case CustomAxis:
		return axisWire{Name: t.Name, Type: t.Type, Unit: t.Unit}
	default:
		panic(fmt.Sprintf("v04: unknown axis variant %T", a))
	}
}

func (as *Axes) UnmarshalJSON(b []byte) error {
	var ws []axisWire
	if err := json.Unmarshal(b, &ws); err != nil {
		return err
	}
	out := make(Axes, len(ws))
	for i, w := range ws {
		out[i] = w.axis()
	}
	*as = out
	return nil
}

func (as Axes) MarshalJSON() ([]byte, error) {
	ws := make([]axisWire, len(as))
	for i, a := range as {
		ws[i] = wireAxis(a)
	}
	return json.Marshal(ws)
}

// ValidateAxes checks that an ordered axes list is legal:
//
//   - length in [2, 5];
//   - at most one time axis;
//   - at most one "other" axis, where other means channel or custom;
//   - between 2 and 3 space axes;
//   - order: [time] [channel-or-custom] space..., space axes contiguous and last;
//   - all names unique.
//
// The list is scanned once and the first violated rule is reported.
func ValidateAxes(axes []Axis) error {
	if len(axes) < 2 || len(axes) > 5 {
		return ngff.IssueAt("/axes", ngff.CodeAxesCount,
			fmt.Sprintf("expected 2-5 axes, got %d", len(axes)),
			map[string]any{"got": len(axes)})
	}
	spaceCount := 0
	hasTime := false
	hasOther := false
	names := make(map[string]struct{}, len(axes))
	for i, a := range axes {
		at := fmt.Sprintf("/axes/%d", i)
		n := a.AxisName()
		if _, dup := names[n]; dup {
			return ngff.IssueAt(at, ngff.CodeAxesDuplicateName,
				"axis names not unique: "+n, map[string]any{"name": n})
		}
		names[n] = struct{}{}
		switch a.(type) {
		case SpaceAxis:
			if spaceCount >= 3 {
				return ngff.IssueAt(at, ngff.CodeAxesSpaceCount,
					"expected 2-3 space axes", nil)
			}
			spaceCount++
		case TimeAxis:
			if spaceCount > 0 || hasOther {
				return ngff.IssueAt(at, ngff.CodeAxesOrder,
					"invalid order: expected [time], [channel/custom], space, space, [space]", nil)
			}
			if hasTime {
				return ngff.IssueAt(at, ngff.CodeAxesDuplicateTime,
					"got >1 time axes", nil)
			}
			hasTime = true
		default: // ChannelAxis or CustomAxis share the "other" slot
			if spaceCount > 0 {
				return ngff.IssueAt(at, ngff.CodeAxesOrder,
					"invalid order: expected [time], [channel/custom], space, space, [space]", nil)
			}
			if hasOther {
				return ngff.IssueAt(at, ngff.CodeAxesDuplicateOther,
					"got >1 channel/custom axes", nil)
			}
			hasOther = true
		}
	}
	if spaceCount < 2 {
		return ngff.IssueAt("/axes", ngff.CodeAxesSpaceCount,
			"expected 2-3 space axes", nil)
	}
	return nil
}
