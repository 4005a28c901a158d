package v04

import (
	"fmt"
	"math"

	json "github.com/goccy/go-json"

	ngff "github.com/zarrtools/ngff"
)

// LabelValue is a pixel value of a labeled image.
type LabelValue uint64

// Color assigns an optional RGBA color to one label value.
type Color struct {
	LabelValue LabelValue `json:"label-value"`
	RGBA       *[4]uint8  `json:"rgba,omitempty"`
}

// Properties attaches free-form metadata to one label value. On the wire the
// metadata keys sit flattened next to "label-value".
type Properties struct {
	LabelValue LabelValue
	Metadata   map[string]any
}

func (p Properties) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(p.Metadata)+1)
	for k, v := range p.Metadata {
		m[k] = v
	}
	m["label-value"] = uint64(p.LabelValue)
	return json.Marshal(m)
}

func (p *Properties) UnmarshalJSON(b []byte) error {
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	lv, ok := m["label-value"]
	if !ok {
		return fmt.Errorf("properties entry missing label-value")
	}
	f, ok := lv.(float64)
	if !ok || f < 0 || f != math.Trunc(f) {
		return fmt.Errorf("label-value must be a non-negative integer, got %v", lv)
	}
	delete(m, "label-value")
	p.LabelValue = LabelValue(f)
	p.Metadata = m
	return nil
}

// Source points at the image the labels annotate.
type Source struct {
	Image string `json:"image,omitempty"`
}

// DefaultSource refers to the conventional location of the labeled image,
// two levels up from the label group.
func DefaultSource() Source { return Source{Image: "../../"} }

// ImageLabel describes a labeled image: per-label colors, per-label
// properties and the source image.
type ImageLabel struct {
	Version    string       `json:"version,omitempty"`
	Colors     []Color      `json:"colors,omitempty"`
	Properties []Properties `json:"properties,omitempty"`
	Source     *Source      `json:"source,omitempty"`
}

// Validate checks that label values are unique within the colors list and
// within the properties list.
func (il *ImageLabel) Validate() error {
	seen := make(map[LabelValue]struct{}, len(il.Colors))
	for i, c := range il.Colors {
		if _, dup := seen[c.LabelValue]; dup {
			return ngff.IssueAt(fmt.Sprintf("/colors/%d/label-value", i),
				ngff.CodeLabelDuplicateValue,
				fmt.Sprintf("label values not unique: %d", c.LabelValue),
				map[string]any{"label-value": uint64(c.LabelValue)})
		}
		seen[c.LabelValue] = struct{}{}
	}
	seen = make(map[LabelValue]struct{}, len(il.Properties))
	for i, p := range il.Properties {
		if _, dup := seen[p.LabelValue]; dup {
			return ngff.IssueAt(fmt.Sprintf("/properties/%d/label-value", i),
				ngff.CodeLabelDuplicateValue,
				fmt.Sprintf("label values not unique: %d", p.LabelValue),
				map[string]any{"label-value": uint64(p.LabelValue)})
		}
		seen[p.LabelValue] = struct{}{}
	}
	return nil
}

// LabelColors builds the label-value to color lookup table, skipping entries
// without a color.
func (il *ImageLabel) LabelColors() map[LabelValue][4]uint8 {
	out := make(map[LabelValue][4]uint8, len(il.Colors))
	for _, c := range il.Colors {
		if c.RGBA != nil {
			out[c.LabelValue] = *c.RGBA
		}
	}
	return out
}

// LabelProperties builds the label-value to metadata lookup table.
func (il *ImageLabel) LabelProperties() map[LabelValue]map[string]any {
	out := make(map[LabelValue]map[string]any, len(il.Properties))
	for _, p := range il.Properties {
		out[p.LabelValue] = p.Metadata
	}
	return out
}
