package timeutil

import (
	"strings"
	"testing"
	"time"
)

func TestParseWindowDefault(t *testing.T) {
	w, err := ParseWindow("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w != (Window{Days: 1}) {
		t.Fatalf("expected one day, got %+v", w)
	}
	if w.String() != "1d" {
		t.Fatalf("expected label 1d, got %s", w)
	}
}

func TestParseWindowComposite(t *testing.T) {
	w, err := ParseWindow("1Y2mo1W10d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := (Window{Months: 14, Days: 17}); w != want {
		t.Fatalf("expected %+v, got %+v", want, w)
	}
	if w.String() != "1y2mo2w3d" {
		t.Fatalf("unexpected label: %s", w)
	}
}

func TestParseWindowInvalid(t *testing.T) {
	for _, in := range []string{"noop", "3x", "0d", "0w0mo", "1w-"} {
		if _, err := ParseWindow(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestParseWindowRejectsSubDay(t *testing.T) {
	for _, in := range []string{"6h", "30m", "1d6h", "10s"} {
		_, err := ParseWindow(in)
		if err == nil {
			t.Fatalf("expected error for %q", in)
		}
		if !strings.Contains(err.Error(), "shorter than a day") {
			t.Fatalf("unexpected error for %q: %v", in, err)
		}
	}
}

func TestWindowFromAcrossDST(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("no tz data: %v", err)
	}
	start := time.Date(2024, time.March, 9, 0, 0, 0, 0, ny)
	got := Window{Days: 2}.From(start)
	want := time.Date(2024, time.March, 11, 0, 0, 0, 0, ny)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestWindowFromClampsMonthEnd(t *testing.T) {
	start := time.Date(2024, time.January, 31, 14, 30, 0, 0, time.UTC)
	tests := map[Window]time.Time{
		{Months: 1}:          time.Date(2024, time.February, 29, 14, 30, 0, 0, time.UTC),
		{Months: 1, Days: 1}: time.Date(2024, time.March, 1, 14, 30, 0, 0, time.UTC),
		{Months: 13}:         time.Date(2025, time.February, 28, 14, 30, 0, 0, time.UTC),
		{Days: 7}:            time.Date(2024, time.February, 7, 14, 30, 0, 0, time.UTC),
	}
	for w, want := range tests {
		if got := w.From(start); !got.Equal(want) {
			t.Fatalf("%s: expected %v, got %v", w, want, got)
		}
	}
}
