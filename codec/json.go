package codec

import (
	json "github.com/goccy/go-json"

	ngff "github.com/zarrtools/ngff"
	"github.com/zarrtools/ngff/v04"
)

// DecodeJSON decodes a v0.4 metadata document from JSON. Decoding only checks
// shape; run Validate on the result before trusting it for spatial work.
func DecodeJSON(data []byte) (*v04.Metadata, error) {
	var m v04.Metadata
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, ngff.Issues{ngff.Issue{
			Path:    "/",
			Code:    ngff.CodeParseError,
			Message: "decoding ngff metadata: " + err.Error(),
			Cause:   err,
		}}
	}
	return &m, nil
}

// EncodeJSON encodes a v0.4 metadata document as JSON. Unknown axis units
// round-trip verbatim; absent optional fields are omitted.
func EncodeJSON(m *v04.Metadata) ([]byte, error) {
	return json.Marshal(m)
}
