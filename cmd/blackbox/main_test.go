package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute(%v) failed: %v", args, err)
	}
	return out.String()
}

func TestDemoPrintsReferenceResult(t *testing.T) {
	out := execute(t, "demo")
	lines := strings.Split(out, "\n")
	if len(lines) < 2 || lines[0] != "20" || lines[1] != "2" {
		t.Fatalf("demo output = %q, want 20 then 2 first", out)
	}
	if !strings.Contains(out, "Score: 20 | Atoms left: 2") {
		t.Errorf("demo output missing board header:\n%s", out)
	}
}

func TestListShowsVariants(t *testing.T) {
	out := execute(t, "list")
	for _, id := range []string{"blackbox", "blackbox_classic"} {
		if !strings.Contains(out, id) {
			t.Errorf("list output missing %q:\n%s", id, out)
		}
	}
}

func TestScoresEmptyDatabase(t *testing.T) {
	db := filepath.Join(t.TempDir(), "scores.db")
	out := execute(t, "scores", "blackbox_classic", "--db", db)
	if !strings.Contains(out, "No solved rounds yet.") {
		t.Errorf("scores output = %q", out)
	}
}

func TestUnknownVariant(t *testing.T) {
	rootCmd.SetArgs([]string{"scores", "nope"})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	if err := rootCmd.Execute(); err == nil {
		t.Error("unknown variant should fail")
	}
}
