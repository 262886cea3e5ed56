// Package locale resolves user locale strings into the formatting and
// week conventions used by the date picker.
package locale

import (
	"strings"
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

const (
	layoutMonthFirst = "January 2"
	layoutDayFirst   = "2 January"
	layoutMonthYear  = "January 2006"
	layoutLongDate   = "02 January 2006"
	layoutWeekday    = "Mon"
)

// Default is used whenever a locale string cannot be resolved.
var Default = Locale{
	tag:   language.AmericanEnglish,
	name:  monday.LocaleEnUS,
	first: time.Sunday,
}

// Locale carries the resolved language tag, the formatter locale and the
// first day of the week. The zero value behaves like Default.
type Locale struct {
	tag   language.Tag
	name  monday.Locale
	first time.Weekday

	override bool
}

// Parse resolves a BCP 47 tag or a POSIX style name ("de_DE.UTF-8").
// It never fails: anything it cannot understand resolves to Default.
func Parse(s string) Locale {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	if s == "" || strings.EqualFold(s, "C") || strings.EqualFold(s, "POSIX") {
		return Default
	}
	tag, err := language.Parse(s)
	if err != nil || tag == language.Und {
		return Default
	}
	base, _ := tag.Base()
	region, _ := tag.Region()

	name, ok := lookup(base.String(), region.String())
	if !ok {
		return Default
	}
	return Locale{
		tag:   tag,
		name:  name,
		first: firstWeekday(region.String()),
	}
}

func lookup(base, region string) (monday.Locale, bool) {
	want := monday.Locale(base + "_" + region)
	var fallback monday.Locale
	for _, l := range monday.ListLocales() {
		if l == want {
			return l, true
		}
		if fallback == "" && strings.HasPrefix(string(l), base+"_") {
			fallback = l
		}
	}
	return fallback, fallback != ""
}

func (l Locale) resolved() Locale {
	if l.name == "" {
		return Default
	}
	return l
}

// String returns the BCP 47 form of the locale.
func (l Locale) String() string {
	return l.resolved().tag.String()
}

// Tag returns the underlying language tag.
func (l Locale) Tag() language.Tag {
	return l.resolved().tag
}

// FirstWeekday is the weekday shown in the first grid column.
func (l Locale) FirstWeekday() time.Weekday {
	return l.resolved().first
}

// WithFirstWeekday returns a copy of l that starts weeks on w. Values outside
// Sunday..Saturday are ignored.
func (l Locale) WithFirstWeekday(w time.Weekday) Locale {
	l = l.resolved()
	if w < time.Sunday || w > time.Saturday {
		return l
	}
	l.first = w
	l.override = true
	return l
}

// MonthDay formats t as "Month Day" in the locale's order.
func (l Locale) MonthDay(t time.Time) string {
	l = l.resolved()
	layout := layoutDayFirst
	if l.monthFirst() {
		layout = layoutMonthFirst
	}
	return monday.Format(t, layout, l.name)
}

// MonthYear formats t as "Month Year", used for the grid title.
func (l Locale) MonthYear(t time.Time) string {
	l = l.resolved()
	return monday.Format(t, layoutMonthYear, l.name)
}

// LongDate formats t as "dd Month yyyy".
func (l Locale) LongDate(t time.Time) string {
	l = l.resolved()
	return monday.Format(t, layoutLongDate, l.name)
}

// ShortWeekdays returns abbreviated weekday names starting at FirstWeekday.
func (l Locale) ShortWeekdays() []string {
	l = l.resolved()
	// 2023-01-01 is a Sunday.
	sunday := time.Date(2023, time.January, 1, 12, 0, 0, 0, time.UTC)
	out := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		day := sunday.AddDate(0, 0, (int(l.first)+i)%7)
		out = append(out, monday.Format(day, layoutWeekday, l.name))
	}
	return out
}

func (l Locale) monthFirst() bool {
	base, _ := l.tag.Base()
	if base.String() != "en" {
		return false
	}
	region, _ := l.tag.Region()
	switch region.String() {
	case "GB", "IE", "AU", "NZ", "IN", "ZA":
		return false
	}
	return true
}
