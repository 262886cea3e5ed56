package keys

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestKeysTable(t *testing.T) {
	was := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = was })

	var buf bytes.Buffer
	k := &Keys{Out: &buf}
	if err := k.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Picker", "Program", "range mode", "include time", "accept", "cancel", "pgup"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
}
