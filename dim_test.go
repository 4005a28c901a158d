package ngff_test

import (
	"testing"

	ngff "github.com/zarrtools/ngff"
)

func TestMergeDim(t *testing.T) {
	cases := []struct {
		name     string
		a, b     ngff.Dim
		wantN    int
		wantKnow bool
		wantErr  bool
	}{
		{name: "both unknown", a: ngff.UnknownDim(), b: ngff.UnknownDim()},
		{name: "left unknown", a: ngff.UnknownDim(), b: ngff.KnownDim(3), wantN: 3, wantKnow: true},
		{name: "right unknown", a: ngff.KnownDim(5), b: ngff.UnknownDim(), wantN: 5, wantKnow: true},
		{name: "equal", a: ngff.KnownDim(4), b: ngff.KnownDim(4), wantN: 4, wantKnow: true},
		{name: "conflict", a: ngff.KnownDim(2), b: ngff.KnownDim(3), wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ngff.MergeDim(tc.a, tc.b)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				if code := ngff.CodeOf(err); code != ngff.CodeDimMismatch {
					t.Fatalf("expected %s, got %s", ngff.CodeDimMismatch, code)
				}
				iss, _ := ngff.AsIssues(err)
				if iss[0].Params["a"] != 2 || iss[0].Params["b"] != 3 {
					t.Fatalf("expected both counts in params, got %v", iss[0].Params)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			n, known := got.Value()
			if known != tc.wantKnow || (known && n != tc.wantN) {
				t.Fatalf("got (%d,%v), want (%d,%v)", n, known, tc.wantN, tc.wantKnow)
			}
		})
	}
}

func TestDimString(t *testing.T) {
	if s := ngff.UnknownDim().String(); s != "?" {
		t.Fatalf("unknown dim renders %q", s)
	}
	if s := ngff.KnownDim(5).String(); s != "5" {
		t.Fatalf("known dim renders %q", s)
	}
}
