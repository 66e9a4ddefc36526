package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/agentfiles-labs/agentfiles/internal/installer"
	"github.com/agentfiles-labs/agentfiles/internal/manifest"
)

// skillEntryFile marks the entry document of a skill directory.
const skillEntryFile = "SKILL.md"

// kindDirs maps subdirectory names to the file kind they hold, in scan order.
var kindDirs = []struct {
	name string
	kind manifest.FileKind
}{
	{"skills", manifest.KindSkill},
	{"commands", manifest.KindCommand},
	{"agents", manifest.KindAgent},
}

// Scan discovers agent files under root. Skills are expected as
// <name>/SKILL.md directories, commands and agents as .md files. Mappings
// with the same kind and name are deduplicated, keeping the first found.
func Scan(root string) ([]manifest.FileMapping, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving path %s: %w", root, err)
	}
	if _, err := os.Stat(abs); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("scan root %s: %w", root, manifest.ErrNotFound)
		}
		return nil, fmt.Errorf("reading %s: %w", root, err)
	}

	var mappings []manifest.FileMapping

	// Provider-prefixed directories first (.claude/skills/, ...).
	for _, prefix := range installer.ProjectBases() {
		prefixDir := filepath.Join(abs, prefix)
		if !isDir(prefixDir) {
			continue
		}
		for _, kd := range kindDirs {
			dir := filepath.Join(prefixDir, kd.name)
			if isDir(dir) {
				if err := scanKindDir(abs, dir, kd.kind, &mappings); err != nil {
					return nil, err
				}
			}
		}
	}

	// Bare kind directories at the root (./skills/, ./commands/, ./agents/).
	for _, kd := range kindDirs {
		dir := filepath.Join(abs, kd.name)
		if isDir(dir) {
			if err := scanKindDir(abs, dir, kd.kind, &mappings); err != nil {
				return nil, err
			}
		}
	}

	return dedupe(mappings), nil
}

// scanKindDir collects agent files of one kind from a single directory.
func scanKindDir(root, dir string, kind manifest.FileKind, mappings *[]manifest.FileMapping) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		entryPath := filepath.Join(dir, entry.Name())

		switch kind {
		case manifest.KindSkill:
			if !entry.IsDir() {
				continue
			}
			skillMD := filepath.Join(entryPath, skillEntryFile)
			if info, err := os.Stat(skillMD); err == nil && !info.IsDir() {
				*mappings = append(*mappings, manifest.FileMapping{
					Path:     relTo(root, skillMD),
					Kind:     manifest.KindSkill,
					Strategy: manifest.StrategyCopy,
				})
			}
		default:
			if entry.IsDir() || filepath.Ext(entry.Name()) != ".md" {
				continue
			}
			*mappings = append(*mappings, manifest.FileMapping{
				Path:     relTo(root, entryPath),
				Kind:     kind,
				Strategy: manifest.StrategyCopy,
			})
		}
	}

	return nil
}

// dedupe removes mappings that install under the same kind and name,
// keeping the first occurrence.
func dedupe(mappings []manifest.FileMapping) []manifest.FileMapping {
	seen := make(map[string]bool)
	result := make([]manifest.FileMapping, 0, len(mappings))
	for _, m := range mappings {
		key := string(m.Kind) + ":" + mappingName(m)
		if !seen[key] {
			seen[key] = true
			result = append(result, m)
		}
	}
	return result
}

// mappingName derives the install name of a mapping: the parent directory
// for skills, the file stem for commands and agents.
func mappingName(m manifest.FileMapping) string {
	if m.Kind == manifest.KindSkill && filepath.Base(m.Path) == skillEntryFile {
		return filepath.Base(filepath.Dir(m.Path))
	}
	return strings.TrimSuffix(filepath.Base(m.Path), filepath.Ext(m.Path))
}

// InferName derives a package name from a directory path.
func InferName(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	name := filepath.Base(abs)
	if name == "/" || name == "." || name == string(filepath.Separator) {
		return "unnamed"
	}
	return name
}

func relTo(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return rel
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
