package ngff

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeParseError = "parse_error"

	// Dimensionality reconciliation
	CodeDimMismatch = "dim_mismatch"

	// Axes list rules
	CodeAxesCount          = "axes_count"
	CodeAxesSpaceCount     = "axes_space_count"
	CodeAxesDuplicateTime  = "axes_duplicate_time"
	CodeAxesDuplicateOther = "axes_duplicate_other"
	CodeAxesOrder          = "axes_order"
	CodeAxesDuplicateName  = "axes_duplicate_name"

	// Coordinate-transformation rules
	CodeTransformMissingScale = "transform_missing_scale"
	CodeTransformOrder        = "transform_order"
	CodeTransformDuplicate    = "transform_duplicate"
	CodeTransformUnsupported  = "transform_unsupported"
	CodeUnresolvedReference   = "transform_unresolved_ref"
	CodeZeroScale             = "zero_scale"
	CodeDatasetRange          = "dataset_range"

	// Plate rules
	CodePlateInconsistentWell     = "plate_inconsistent_well"
	CodePlateIndexRange           = "plate_index_range"
	CodePlateDuplicateIndex       = "plate_duplicate_index"
	CodePlateInvalidIndexName     = "plate_invalid_index_name"
	CodePlateDuplicateAcquisition = "plate_duplicate_acquisition"
	CodePlateAcquisitionTime      = "plate_acquisition_time"

	// Well rules
	CodeWellDuplicatePath      = "well_duplicate_path"
	CodeWellInvalidPath        = "well_invalid_path"
	CodeWellMissingAcquisition = "well_missing_acquisition"
	CodeWellUnknownAcquisition = "well_unknown_acquisition"

	// Image-label rules
	CodeLabelDuplicateValue = "label_duplicate_value"
)

// Issue represents a single validation entry.
type Issue struct {
	Path    string // JSON Pointer (for example: /datasets/2/coordinateTransformations).
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: underlying error.
	// Params carries structured parameters (e.g., {"got": 7, "want": 5})
	// for programmatic inspection and observability.
	Params map[string]any
}

// Issues is a collection of validation errors that implements error.
// Validators in this module report the first violation only, so an Issues
// returned by them holds exactly one Issue; the slice form leaves room for
// callers that collect.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. axes_order at /axes/3
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		if it.Message != "" {
			fmt.Fprintf(b, ": %s", it.Message)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Unwrap exposes the cause of a single-issue error chain.
func (iss Issues) Unwrap() error {
	if len(iss) == 1 {
		return iss[0].Cause
	}
	return nil
}

// IssueAt creates a single-issue error at the given path with the provided
// code, message and params map. This is the constructor every validator in
// this module uses.
func IssueAt(path, code, msg string, params map[string]any) Issues {
	return Issues{Issue{Path: path, Code: code, Message: msg, Params: params}}
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// CodeOf returns the code of the first issue carried by err, or "" when err
// holds no issues.
func CodeOf(err error) string {
	iss, ok := AsIssues(err)
	if !ok || len(iss) == 0 {
		return ""
	}
	return iss[0].Code
}

// PrefixPath re-roots every issue in err under prefix, so that errors from a
// nested document (say a multiscale inside a metadata root) point into the
// enclosing document. Non-issue errors pass through unchanged.
func PrefixPath(err error, prefix string) error {
	iss, ok := AsIssues(err)
	if !ok {
		return err
	}
	out := make(Issues, len(iss))
	for i, it := range iss {
		switch it.Path {
		case "", "/":
			it.Path = prefix
		default:
			it.Path = prefix + it.Path
		}
		out[i] = it
	}
	return out
}
