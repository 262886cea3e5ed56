package locale

import (
	"testing"
	"time"
)

func TestParseFallsBackToDefault(t *testing.T) {
	for _, in := range []string{"", "C", "POSIX", "not a locale!", "und", "@@@"} {
		got := Parse(in)
		if got.String() != Default.String() {
			t.Fatalf("Parse(%q): expected %s, got %s", in, Default, got)
		}
		if got.FirstWeekday() != time.Sunday {
			t.Fatalf("Parse(%q): expected Sunday start, got %v", in, got.FirstWeekday())
		}
	}
}

func TestParseFirstWeekday(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want time.Weekday
	}{
		{"en-US", time.Sunday},
		{"en_US.UTF-8", time.Sunday},
		{"en_GB", time.Monday},
		{"de-DE", time.Monday},
		{"fr", time.Monday},
		{"ja_JP", time.Sunday},
	} {
		if got := Parse(tc.in).FirstWeekday(); got != tc.want {
			t.Fatalf("Parse(%q).FirstWeekday(): expected %v, got %v", tc.in, tc.want, got)
		}
	}
}

func TestWithFirstWeekday(t *testing.T) {
	l := Parse("en-US").WithFirstWeekday(time.Monday)
	if l.FirstWeekday() != time.Monday {
		t.Fatalf("expected Monday, got %v", l.FirstWeekday())
	}
	if got := l.WithFirstWeekday(time.Weekday(9)).FirstWeekday(); got != time.Monday {
		t.Fatalf("expected invalid override to be ignored, got %v", got)
	}
}

func TestZeroValueBehavesLikeDefault(t *testing.T) {
	var l Locale
	day := time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC)
	if got, want := l.MonthDay(day), Default.MonthDay(day); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestEnglishFormatting(t *testing.T) {
	day := time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC)
	us := Parse("en-US")
	if got := us.MonthDay(day); got != "May 10" {
		t.Fatalf("expected May 10, got %q", got)
	}
	if got := us.MonthYear(day); got != "May 2024" {
		t.Fatalf("expected May 2024, got %q", got)
	}
	if got := us.LongDate(day); got != "10 May 2024" {
		t.Fatalf("expected 10 May 2024, got %q", got)
	}
	if got := Parse("en-GB").MonthDay(day); got != "10 May" {
		t.Fatalf("expected 10 May, got %q", got)
	}
}

func TestShortWeekdaysRotate(t *testing.T) {
	got := Parse("en-US").ShortWeekdays()
	if len(got) != 7 || got[0] != "Sun" || got[6] != "Sat" {
		t.Fatalf("unexpected Sunday-first weekdays: %v", got)
	}
	got = Parse("en-GB").ShortWeekdays()
	if got[0] != "Mon" || got[6] != "Sun" {
		t.Fatalf("unexpected Monday-first weekdays: %v", got)
	}
}

func TestParseWeekday(t *testing.T) {
	w, err := ParseWeekday(" Monday ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w != time.Monday {
		t.Fatalf("expected Monday, got %v", w)
	}
	if w, _ := ParseWeekday("sat"); w != time.Saturday {
		t.Fatalf("expected Saturday, got %v", w)
	}
	if _, err := ParseWeekday("someday"); err == nil {
		t.Fatalf("expected error for unknown weekday")
	}
}
