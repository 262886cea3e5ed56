package commands

import (
	"io"
	"runtime/debug"
	"strings"
	"testing"
)

func TestCommandTree(t *testing.T) {
	root := New()
	for _, name := range []string{"pick", "grid", "describe", "keys", "version", "completion"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Fatalf("expected %s command, got %v, %v", name, cmd, err)
		}
	}

	pick, _, _ := root.Find([]string{"pick"})
	for _, flag := range []string{"on", "to", "for", "range", "time", "locale", "week-start", "json", "output"} {
		if pick.Flags().Lookup(flag) == nil {
			t.Fatalf("expected pick --%s", flag)
		}
	}
}

func TestCompletionShells(t *testing.T) {
	root := New()
	for shell, want := range map[string]string{
		"":     "bash completion V2 for datepick",
		"bash": "bash completion V2 for datepick",
		"zsh":  "#compdef datepick",
		"fish": "fish completion for datepick",
	} {
		var out strings.Builder
		if err := writeCompletion(root, shell, &out); err != nil {
			t.Fatalf("unexpected error for %q: %v", shell, err)
		}
		if !strings.Contains(out.String(), want) {
			t.Fatalf("expected %q in %s completion", want, shell)
		}
	}
	if err := writeCompletion(root, "tcsh", io.Discard); err == nil {
		t.Fatalf("expected error for tcsh")
	}
}

func TestBuildVersion(t *testing.T) {
	info := &debug.BuildInfo{
		Main: debug.Module{Version: "v1.2.3"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2024-05-10T12:00:00Z"},
		},
	}
	v, c, d := buildVersion(info, true)
	if v != "v1.2.3" || c != "abc123" || d != "2024-05-10T12:00:00Z" {
		t.Fatalf("unexpected version %s %s %s", v, c, d)
	}

	info.Main.Version = "(devel)"
	if v, _, _ := buildVersion(info, true); v != "dev" {
		t.Fatalf("expected dev for a devel build, got %s", v)
	}
	if v, c, d := buildVersion(nil, false); v != "dev" || c != "none" || d != "unknown" {
		t.Fatalf("expected defaults, got %s %s %s", v, c, d)
	}
}
