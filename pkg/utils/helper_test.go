package utils

import (
	"regexp"
	"testing"
	"time"
)

func TestGenerateReferenceNumber(t *testing.T) {
	rx := regexp.MustCompile(`^SPA-\d{8}-[A-Z2-9]{6}$`)

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		ref := GenerateReferenceNumber()
		if !rx.MatchString(ref) {
			t.Fatalf("reference %q does not match SPA-YYYYMMDD-XXXXXX", ref)
		}
		seen[ref] = true
	}
	// 32^6 combinations; 100 draws colliding would mean a broken generator.
	if len(seen) < 95 {
		t.Errorf("only %d distinct references out of 100", len(seen))
	}

	today := time.Now().Format("20060102")
	if ref := GenerateReferenceNumber(); ref[4:12] != today {
		t.Errorf("date part = %s, want %s", ref[4:12], today)
	}
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		in   string
		def  int
		want int
	}{
		{"42", 0, 42},
		{"", 7, 7},
		{"abc", 7, 7},
		{"-3", 7, -3},
	}
	for _, tt := range tests {
		if got := ParseInt(tt.in, tt.def); got != tt.want {
			t.Errorf("ParseInt(%q, %d) = %d, want %d", tt.in, tt.def, got, tt.want)
		}
	}
}
