//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	PackageDir string // the agent file package being installed
	ProjectDir string // a mock project the package installs into
}

// setupTestEnv creates isolated temp directories for a package and a project.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return &testEnv{
		PackageDir: t.TempDir(),
		ProjectDir: t.TempDir(),
	}
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755), "creating dir for %s", path)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644), "writing %s", path)
}

// setupPackage populates PackageDir with a skill, a command, an agent and an
// agentfiles.json declaring all three. Returns the manifest path.
func setupPackage(t *testing.T, env *testEnv) string {
	t.Helper()

	writeFile(t, filepath.Join(env.PackageDir, "skills", "review", "SKILL.md"),
		"# Code Review\nHow to review changes.\n")
	writeFile(t, filepath.Join(env.PackageDir, "skills", "review", "checklist.md"),
		"- correctness\n- tests\n")
	writeFile(t, filepath.Join(env.PackageDir, "commands", "deploy.md"),
		"Deploy the current branch.\n")
	writeFile(t, filepath.Join(env.PackageDir, "agents", "reviewer.md"),
		"You review pull requests.\n")

	manifestPath := filepath.Join(env.PackageDir, "agentfiles.json")
	writeFile(t, manifestPath, `{
  "name": "review-pack",
  "version": "1.0.0",
  "files": [
    {"path": "skills/review/SKILL.md", "kind": "skill"},
    {"path": "commands/deploy.md", "kind": "command"},
    {"path": "agents/reviewer.md", "kind": "agent"}
  ]
}
`)
	return manifestPath
}

// requireFileContent asserts the file exists and holds exactly content.
func requireFileContent(t *testing.T, path, content string) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err, "reading %s", path)
	require.Equal(t, content, string(data), "content of %s", path)
}

// requireNotExists asserts nothing exists at path.
func requireNotExists(t *testing.T, path string) {
	t.Helper()
	_, err := os.Lstat(path)
	require.True(t, os.IsNotExist(err), "expected %s not to exist", path)
}
