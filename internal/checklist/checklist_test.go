package checklist

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefault(t *testing.T) {
	l := Default()

	if l.Len() != 23 {
		t.Errorf("expected 23 items, got %d", l.Len())
	}
	if l.ExpectedTotal() != DefaultExpectedTotal {
		t.Errorf("expected total %d, got %d", DefaultExpectedTotal, l.ExpectedTotal())
	}
	if !l.CountMatches() {
		t.Error("built-in ledger should match its expected total")
	}
}

func TestItemsOrdinals(t *testing.T) {
	l := New([]string{"first", "second", "third"}, 3)

	want := []Item{
		{Ordinal: 1, Description: "first"},
		{Ordinal: 2, Description: "second"},
		{Ordinal: 3, Description: "third"},
	}
	if diff := cmp.Diff(want, l.Items()); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}
}

func TestCountMatches(t *testing.T) {
	tests := []struct {
		name     string
		items    int
		expected int
		want     bool
	}{
		{"equal", 23, 23, true},
		{"one fewer", 22, 23, false},
		{"one more", 24, 23, false},
		{"empty with zero expected", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			descs := make([]string, tt.items)
			for i := range descs {
				descs[i] = "item"
			}
			if got := New(descs, tt.expected).CountMatches(); got != tt.want {
				t.Errorf("CountMatches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewCopiesInput(t *testing.T) {
	descs := []string{"a", "b"}
	l := New(descs, 2)
	descs[0] = "changed"

	if got := l.Items()[0].Description; got != "a" {
		t.Errorf("ledger should not alias caller slice, got %q", got)
	}
}
