package tsea_test

import (
	"errors"
	"testing"

	"github.com/vvka-141/tsea/pkg/tsea"
)

func TestSearchRequest_Directory(t *testing.T) {
	if got := (tsea.SearchRequest{}).Directory(); got != tsea.DefaultDirectory {
		t.Errorf("Directory() = %q, want %q", got, tsea.DefaultDirectory)
	}
	if got := (tsea.SearchRequest{Dir: "notes"}).Directory(); got != "notes" {
		t.Errorf("Directory() = %q, want %q", got, "notes")
	}
}

func TestSearchRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     tsea.SearchRequest
		wantErr bool
	}{
		{"empty query", tsea.SearchRequest{}, false},
		{"plain query", tsea.SearchRequest{Query: "test", Dir: "."}, false},
		{"query with newline", tsea.SearchRequest{Query: "a\nb"}, false},
		{"nul in dir", tsea.SearchRequest{Query: "x", Dir: "a\x00b"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, tsea.ErrUsage) {
				t.Errorf("Validate() error should wrap ErrUsage, got %v", err)
			}
		})
	}
}
