package locale

import (
	"fmt"
	"strings"
	"time"
)

// Regions whose weeks start on Sunday or Saturday; everything else starts on
// Monday. Subset of the CLDR week data.
var (
	sundayRegions = map[string]bool{
		"AG": true, "AS": true, "BD": true, "BR": true, "BS": true, "BT": true,
		"BW": true, "BZ": true, "CA": true, "CO": true, "DM": true,
		"DO": true, "ET": true, "GT": true, "GU": true, "HK": true, "HN": true,
		"ID": true, "IL": true, "IN": true, "JM": true, "JP": true, "KE": true,
		"KH": true, "KR": true, "LA": true, "MH": true, "MM": true, "MO": true,
		"MT": true, "MX": true, "MZ": true, "NI": true, "NP": true, "PA": true,
		"PE": true, "PH": true, "PK": true, "PR": true, "PT": true, "PY": true,
		"SA": true, "SG": true, "SV": true, "TH": true, "TT": true, "TW": true,
		"UM": true, "US": true, "VE": true, "VI": true, "WS": true, "YE": true,
		"ZA": true, "ZW": true,
	}
	saturdayRegions = map[string]bool{
		"AE": true, "AF": true, "BH": true, "DJ": true, "DZ": true, "EG": true,
		"IQ": true, "IR": true, "JO": true, "KW": true, "LY": true, "OM": true,
		"QA": true, "SD": true, "SY": true,
	}
)

func firstWeekday(region string) time.Weekday {
	switch {
	case sundayRegions[region]:
		return time.Sunday
	case saturdayRegions[region]:
		return time.Saturday
	default:
		return time.Monday
	}
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"sun":       time.Sunday,
	"monday":    time.Monday,
	"mon":       time.Monday,
	"tuesday":   time.Tuesday,
	"tue":       time.Tuesday,
	"wednesday": time.Wednesday,
	"wed":       time.Wednesday,
	"thursday":  time.Thursday,
	"thu":       time.Thursday,
	"friday":    time.Friday,
	"fri":       time.Friday,
	"saturday":  time.Saturday,
	"sat":       time.Saturday,
}

// ParseWeekday accepts English weekday names or their three letter
// abbreviations, case insensitive.
func ParseWeekday(s string) (time.Weekday, error) {
	w, ok := weekdayNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return time.Sunday, fmt.Errorf("unknown weekday %q", s)
	}
	return w, nil
}
