package codec

import (
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	ngff "github.com/zarrtools/ngff"
	"github.com/zarrtools/ngff/v04"
)

// DecodeYAML decodes a v0.4 metadata document written as YAML. The document
// is normalized to JSON shape first, so the same wire rules apply as for
// DecodeJSON.
func DecodeYAML(data []byte) (*v04.Metadata, error) {
	var node any
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, ngff.Issues{ngff.Issue{
			Path:    "/",
			Code:    ngff.CodeParseError,
			Message: "decoding ngff metadata yaml: " + err.Error(),
			Cause:   err,
		}}
	}
	jb, err := json.Marshal(yamlNormalizeValue(node))
	if err != nil {
		return nil, ngff.Issues{ngff.Issue{
			Path:    "/",
			Code:    ngff.CodeParseError,
			Message: "normalizing yaml document: " + err.Error(),
			Cause:   err,
		}}
	}
	return DecodeJSON(jb)
}

func yamlNormalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = yamlNormalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = yamlNormalizeValue(vv)
		}
		return out
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = yamlNormalizeValue(t[i])
		}
		return arr
	default:
		return t
	}
}
