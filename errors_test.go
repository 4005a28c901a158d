package ngff_test

import (
	"strings"
	"testing"

	ngff "github.com/zarrtools/ngff"
)

func TestIssues_ErrorSummary(t *testing.T) {
	iss := ngff.Issues{
		{Path: "/axes/0", Code: ngff.CodeAxesOrder},
		{Path: "/axes/1", Code: ngff.CodeAxesDuplicateName},
		{Path: "/axes/2", Code: ngff.CodeAxesCount},
		{Path: "/axes/3", Code: ngff.CodeAxesSpaceCount},
	}
	s := iss.Error()
	if s == "" {
		t.Fatalf("expected non-empty error summary")
	}
	if !strings.Contains(s, ngff.CodeAxesOrder+" at /axes/0") {
		t.Fatalf("summary missing first issue: %s", s)
	}
	if !strings.Contains(s, "total 4") {
		t.Fatalf("summary missing overflow count: %s", s)
	}
}

func TestPrefixPath(t *testing.T) {
	err := ngff.IssueAt("/rows/1", ngff.CodePlateDuplicateIndex, "dup", nil)
	got := ngff.PrefixPath(err, "/plate")
	iss, ok := ngff.AsIssues(got)
	if !ok || iss[0].Path != "/plate/rows/1" {
		t.Fatalf("expected re-rooted path, got %v", got)
	}

	root := ngff.IssueAt("/", ngff.CodeDimMismatch, "mismatch", nil)
	got = ngff.PrefixPath(root, "/multiscales/0")
	iss, _ = ngff.AsIssues(got)
	if iss[0].Path != "/multiscales/0" {
		t.Fatalf("expected root path replaced, got %q", iss[0].Path)
	}
}

func TestCodeOf(t *testing.T) {
	if code := ngff.CodeOf(nil); code != "" {
		t.Fatalf("nil error has code %q", code)
	}
	err := ngff.IssueAt("/", ngff.CodeZeroScale, "zero", nil)
	if code := ngff.CodeOf(err); code != ngff.CodeZeroScale {
		t.Fatalf("got %q", code)
	}
}
