package datevalue

import (
	"encoding/json"
	"fmt"
	"time"
)

type wire struct {
	Kind  string `json:"kind" yaml:"kind"`
	Date  string `json:"date,omitempty" yaml:"date,omitempty"`
	Start string `json:"start,omitempty" yaml:"start,omitempty"`
	End   string `json:"end,omitempty" yaml:"end,omitempty"`
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

func (v Value) wire() wire {
	switch v.kind {
	case KindSingle:
		return wire{Kind: v.kind.String(), Date: formatTime(v.start)}
	case KindRange:
		return wire{Kind: v.kind.String(), Start: formatTime(v.start), End: formatTime(v.end)}
	default:
		return wire{Kind: v.kind.String()}
	}
}

// MarshalJSON encodes v as {"kind":"single","date":...} or
// {"kind":"range","start":...,"end":...}.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.wire())
}

// MarshalYAML mirrors MarshalJSON.
func (v Value) MarshalYAML() (interface{}, error) {
	return v.wire(), nil
}

// UnmarshalJSON decodes the MarshalJSON form.
func (v *Value) UnmarshalJSON(b []byte) error {
	var w wire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	switch w.Kind {
	case "single":
		d, err := time.Parse(time.RFC3339, w.Date)
		if err != nil {
			return fmt.Errorf("date: %w", err)
		}
		*v = Single(d)
	case "range":
		s, err := time.Parse(time.RFC3339, w.Start)
		if err != nil {
			return fmt.Errorf("start: %w", err)
		}
		e, err := time.Parse(time.RFC3339, w.End)
		if err != nil {
			return fmt.Errorf("end: %w", err)
		}
		*v = Range(s, e)
	default:
		return fmt.Errorf("unknown date value kind %q", w.Kind)
	}
	return nil
}
