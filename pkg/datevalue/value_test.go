package datevalue

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"cloudeng.io/datetime"

	"tableflip.dev/datepick/pkg/locale"
)

func day(m time.Month, d int) time.Time {
	return time.Date(2024, m, d, 0, 0, 0, 0, time.UTC)
}

func TestEqual(t *testing.T) {
	a := Single(day(time.May, 10))
	b := Range(day(time.May, 10), day(time.May, 10))

	if !a.Equal(a) || !b.Equal(b) {
		t.Fatalf("expected equality to be reflexive")
	}
	if a.Equal(b) || b.Equal(a) {
		t.Fatalf("expected single and range with matching timestamps to differ")
	}
	c := Single(day(time.May, 10).In(time.FixedZone("X", 3600)))
	if !a.Equal(c) || !c.Equal(a) {
		t.Fatalf("expected same instant in another zone to be equal")
	}
	if Range(day(time.May, 1), day(time.May, 2)).Equal(Range(day(time.May, 1), day(time.May, 3))) {
		t.Fatalf("expected ranges with different ends to differ")
	}
}

func TestEqualOptional(t *testing.T) {
	v := Single(day(time.May, 10))
	if !Equal(nil, nil) {
		t.Fatalf("expected nil == nil")
	}
	if Equal(nil, &v) || Equal(&v, nil) {
		t.Fatalf("expected nil != value")
	}
	if !Equal(v.Ptr(), v.Ptr()) {
		t.Fatalf("expected copies to be equal")
	}
}

func TestRangeOrders(t *testing.T) {
	r := Range(day(time.May, 10), day(time.May, 5))
	if !r.Start().Equal(day(time.May, 5)) || !r.End().Equal(day(time.May, 10)) {
		t.Fatalf("expected ordered range, got %v..%v", r.Start(), r.End())
	}
	if !r.Equal(Range(day(time.May, 5), day(time.May, 10))) {
		t.Fatalf("expected argument order not to matter")
	}
}

func TestDescribe(t *testing.T) {
	en := locale.Parse("en-US")
	if got := Single(day(time.May, 10)).Describe(en); got != "May 10" {
		t.Fatalf("expected May 10, got %q", got)
	}
	r := Range(day(time.May, 5), day(time.June, 2))
	if got := r.Describe(en); got != "May 5 - June 2" {
		t.Fatalf("expected May 5 - June 2, got %q", got)
	}
	if r.Describe(en) != r.Describe(en) {
		t.Fatalf("expected describe to be pure")
	}
	if got := r.Describe(locale.Parse("?!")); got != "May 5 - June 2" {
		t.Fatalf("expected fallback locale output, got %q", got)
	}
	if got := r.String(); got != "May 5 - June 2" {
		t.Fatalf("unexpected String: %q", got)
	}
	var zero Value
	if got := zero.Describe(en); got != "" {
		t.Fatalf("expected empty description for zero value, got %q", got)
	}
}

func TestContains(t *testing.T) {
	r := Range(day(time.May, 5), day(time.May, 10))
	for _, tc := range []struct {
		d    time.Time
		want bool
	}{
		{day(time.May, 4), false},
		{day(time.May, 5), true},
		{day(time.May, 7), true},
		{day(time.May, 10), true},
		{day(time.May, 11), false},
	} {
		if got := r.Contains(tc.d); got != tc.want {
			t.Fatalf("Contains(%v): expected %v, got %v", tc.d, tc.want, got)
		}
	}
	var zero Value
	if zero.Contains(day(time.May, 5)) {
		t.Fatalf("expected zero value to contain nothing")
	}
}

func TestWithTime(t *testing.T) {
	tod := datetime.NewTimeOfDay(14, 30, 0)
	got := Single(day(time.May, 10)).WithStartTime(tod, nil)
	want := Single(time.Date(2024, time.May, 10, 14, 30, 0, 0, time.UTC))
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want.Start(), got.Start())
	}
	if !Single(day(time.May, 10)).WithEndTime(tod, nil).Equal(Single(day(time.May, 10))) {
		t.Fatalf("expected end time to be ignored for a single value")
	}

	r := Range(day(time.May, 5), day(time.May, 10)).WithEndTime(tod, nil)
	if r.End().Hour() != 14 || r.End().Day() != 10 {
		t.Fatalf("expected end on May 10 at 14:30, got %v", r.End())
	}
	r = r.WithStartTime(datetime.NewTimeOfDay(9, 0, 0), nil)
	if r.Start().Hour() != 9 || r.Start().Day() != 5 {
		t.Fatalf("expected start on May 5 at 09:00, got %v", r.Start())
	}
}

func TestWithTimeInLocation(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("no tz data: %v", err)
	}
	// May 11 01:00 UTC is still May 10 in New York.
	v := Single(time.Date(2024, time.May, 11, 1, 0, 0, 0, time.UTC))
	got := v.WithStartTime(datetime.NewTimeOfDay(14, 30, 0), ny).Date().In(ny)
	want := time.Date(2024, time.May, 10, 14, 30, 0, 0, ny)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestWithTimeClampsSameDayRange(t *testing.T) {
	r := Range(
		time.Date(2024, time.May, 10, 9, 0, 0, 0, time.UTC),
		time.Date(2024, time.May, 10, 12, 0, 0, 0, time.UTC),
	)
	got := r.WithStartTime(datetime.NewTimeOfDay(15, 0, 0), nil)
	if !got.Start().Equal(r.End()) || !got.End().Equal(r.End()) {
		t.Fatalf("expected start clamped to the end, got %v - %v", got.Start(), got.End())
	}
	got = r.WithEndTime(datetime.NewTimeOfDay(8, 0, 0), nil)
	if !got.Start().Equal(r.Start()) || !got.End().Equal(r.Start()) {
		t.Fatalf("expected end clamped to the start, got %v - %v", got.Start(), got.End())
	}
}

func TestJSON(t *testing.T) {
	r := Range(day(time.May, 5), day(time.May, 10))
	b, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(b), `"kind":"range"`) {
		t.Fatalf("unexpected encoding %s", b)
	}
	var back Value
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !back.Equal(r) {
		t.Fatalf("expected %v, got %v", r, back)
	}
	if err := json.Unmarshal([]byte(`{"kind":"week"}`), &back); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
	if err := json.Unmarshal([]byte(`{"kind":"single","date":"yesterday"}`), &back); err == nil {
		t.Fatalf("expected error for bad date")
	}
}
