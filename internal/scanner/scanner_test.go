package scanner

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/agentfiles-labs/agentfiles/internal/manifest"
)

func writeScanFile(t *testing.T, root string, rel string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("content\n"), 0644); err != nil {
		t.Fatal(err)
	}
}

func mappingPaths(mappings []manifest.FileMapping) []string {
	paths := make([]string, len(mappings))
	for i, m := range mappings {
		paths[i] = filepath.ToSlash(m.Path)
	}
	return paths
}

func containsPath(mappings []manifest.FileMapping, path string) bool {
	for _, m := range mappings {
		if filepath.ToSlash(m.Path) == path {
			return true
		}
	}
	return false
}

func TestScan_ClaudeLayout(t *testing.T) {
	root := t.TempDir()
	writeScanFile(t, root, ".claude/skills/review/SKILL.md")
	writeScanFile(t, root, ".claude/skills/review/reference.md")
	writeScanFile(t, root, ".claude/commands/deploy.md")
	writeScanFile(t, root, ".claude/agents/reviewer.md")

	mappings, err := Scan(root)
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	if len(mappings) != 3 {
		t.Fatalf("got %d mappings, want 3: %v", len(mappings), mappingPaths(mappings))
	}

	wantPaths := map[string]manifest.FileKind{
		".claude/skills/review/SKILL.md": manifest.KindSkill,
		".claude/commands/deploy.md":     manifest.KindCommand,
		".claude/agents/reviewer.md":     manifest.KindAgent,
	}
	for _, m := range mappings {
		kind, ok := wantPaths[filepath.ToSlash(m.Path)]
		if !ok {
			t.Errorf("unexpected mapping %q", m.Path)
			continue
		}
		if m.Kind != kind {
			t.Errorf("%s: Kind = %q, want %q", m.Path, m.Kind, kind)
		}
		if m.Strategy != manifest.StrategyCopy {
			t.Errorf("%s: Strategy = %q, want copy", m.Path, m.Strategy)
		}
	}
}

func TestScan_BareKindDirs(t *testing.T) {
	root := t.TempDir()
	writeScanFile(t, root, "skills/review/SKILL.md")
	writeScanFile(t, root, "commands/deploy.md")

	mappings, err := Scan(root)
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	if len(mappings) != 2 {
		t.Fatalf("got %d mappings, want 2: %v", len(mappings), mappingPaths(mappings))
	}
	if !containsPath(mappings, "skills/review/SKILL.md") {
		t.Errorf("missing skill mapping: %v", mappingPaths(mappings))
	}
	if !containsPath(mappings, "commands/deploy.md") {
		t.Errorf("missing command mapping: %v", mappingPaths(mappings))
	}
}

func TestScan_DedupesAcrossProviders(t *testing.T) {
	root := t.TempDir()
	writeScanFile(t, root, ".claude/commands/deploy.md")
	writeScanFile(t, root, ".cursor/commands/deploy.md")
	writeScanFile(t, root, "commands/deploy.md")

	mappings, err := Scan(root)
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	if len(mappings) != 1 {
		t.Fatalf("got %d mappings, want 1 after dedupe: %v", len(mappings), mappingPaths(mappings))
	}
	// Provider-prefixed directories win over bare ones.
	if got := filepath.ToSlash(mappings[0].Path); got != ".claude/commands/deploy.md" {
		t.Errorf("kept %q, want .claude/commands/deploy.md", got)
	}
}

func TestScan_SameNameDifferentKinds(t *testing.T) {
	root := t.TempDir()
	writeScanFile(t, root, "commands/review.md")
	writeScanFile(t, root, "agents/review.md")

	mappings, err := Scan(root)
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	if len(mappings) != 2 {
		t.Fatalf("same name under different kinds must both survive, got %v", mappingPaths(mappings))
	}
}

func TestScan_IgnoresNonSkillEntries(t *testing.T) {
	root := t.TempDir()
	// Directory without SKILL.md and a loose file are not skills.
	writeScanFile(t, root, "skills/incomplete/README.md")
	writeScanFile(t, root, "skills/loose.md")
	// Non-markdown files are not commands.
	writeScanFile(t, root, "commands/deploy.sh")

	mappings, err := Scan(root)
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	if len(mappings) != 0 {
		t.Errorf("expected no mappings, got %v", mappingPaths(mappings))
	}
}

func TestScan_EmptyRoot(t *testing.T) {
	mappings, err := Scan(t.TempDir())
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	if len(mappings) != 0 {
		t.Errorf("expected no mappings, got %v", mappingPaths(mappings))
	}
}

func TestScan_MissingRoot(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, manifest.ErrNotFound) {
		t.Errorf("error %v is not manifest.ErrNotFound", err)
	}
}

func TestInferName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/home/dev/review-pack", "review-pack"},
		{"review-pack", "review-pack"},
		{"/", "unnamed"},
	}
	for _, tt := range tests {
		if got := InferName(tt.in); got != tt.want {
			t.Errorf("InferName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
