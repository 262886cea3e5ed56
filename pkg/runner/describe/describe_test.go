package describe

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"tableflip.dev/datepick/pkg/datevalue"
	"tableflip.dev/datepick/pkg/locale"
	"tableflip.dev/datepick/pkg/printers"
)

func TestDescribeJSON(t *testing.T) {
	var buf bytes.Buffer
	d := &Describe{
		Value: datevalue.Range(
			time.Date(2024, time.May, 5, 0, 0, 0, 0, time.UTC),
			time.Date(2024, time.June, 2, 0, 0, 0, 0, time.UTC),
		),
		Locale: locale.Parse("en-US"),
		Format: printers.FormatJSON,
		Out:    &buf,
	}
	if err := d.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `"description": "May 5 - June 2"`) {
		t.Fatalf("unexpected output %s", out)
	}
	if !strings.Contains(out, `"kind": "range"`) {
		t.Fatalf("expected the encoded value, got %s", out)
	}
}

func TestDescribeYAML(t *testing.T) {
	var buf bytes.Buffer
	d := &Describe{
		Value:  datevalue.Single(time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC)),
		Locale: locale.Parse("en-GB"),
		Format: printers.FormatYAML,
		Out:    &buf,
	}
	if err := d.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "description: 10 May") {
		t.Fatalf("unexpected output %s", buf.String())
	}
}
