package installer

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/agentfiles-labs/agentfiles/internal/manifest"
	"github.com/agentfiles-labs/agentfiles/internal/platform"
)

// skillEntryFile marks the entry document of a skill directory.
const skillEntryFile = "SKILL.md"

// excludedNames are entries never copied when installing a skill directory.
var excludedNames = map[string]bool{
	"node_modules": true,
	".git":         true,
	".DS_Store":    true,
}

func (p *provider) Install(m *manifest.Manifest, scope FileScope, root string) (*Report, error) {
	rootLevel, err := p.rootDir(scope, root)
	if err != nil {
		return nil, err
	}
	report := &Report{Root: rootLevel}

	srcBase := m.Dir
	if srcBase == "" {
		srcBase = "."
	}

	for _, fm := range m.Files {
		if fm.Path == "" {
			return nil, fmt.Errorf("file mapping of kind %s declares no source path: %w", fm.Kind, manifest.ErrNotFound)
		}

		targetDir, err := p.TargetDir(scope, fm.Kind, root)
		if err != nil {
			return nil, err
		}

		src := fm.Path
		if !filepath.IsAbs(src) {
			src = filepath.Join(srcBase, src)
		}

		res, err := place(src, targetDir, fm.Kind, fm.EffectiveStrategy())
		if err != nil {
			return nil, err
		}
		res.Provider = p.name

		slog.Debug("placed agent file",
			"provider", p.name,
			"kind", string(fm.Kind),
			"strategy", string(res.Strategy),
			"target", res.Target,
			"unchanged", res.Unchanged)

		report.Results = append(report.Results, *res)
	}

	return report, nil
}

// place puts one source at its destination under targetDir. Skills declared
// by their SKILL.md entry file are placed as the whole skill directory so
// supporting files travel along.
func place(src, targetDir string, kind manifest.FileKind, strategy manifest.FileStrategy) (*Result, error) {
	if kind == manifest.KindSkill && filepath.Base(src) == skillEntryFile {
		src = filepath.Dir(src)
	}

	srcInfo, err := os.Stat(src)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("source %s: %w", src, manifest.ErrNotFound)
		}
		return nil, fmt.Errorf("reading source %s: %w", src, err)
	}

	if err := os.MkdirAll(targetDir, 0755); err != nil {
		return nil, fmt.Errorf("creating target directory %s: %w", targetDir, err)
	}

	dst := filepath.Join(targetDir, filepath.Base(src))
	res := &Result{Source: src, Target: dst, Kind: kind, Strategy: strategy}

	switch strategy {
	case manifest.StrategyLink:
		res.Unchanged, err = placeLink(src, dst)
	default:
		res.Unchanged, err = placeCopy(src, dst, srcInfo.IsDir())
	}
	if err != nil {
		return nil, err
	}

	return res, nil
}

// placeLink creates (or re-points) a symlink at dst to the absolute source
// path. An existing symlink is replaced deterministically; anything else at
// dst is a conflict.
func placeLink(src, dst string) (bool, error) {
	abs, err := filepath.Abs(src)
	if err != nil {
		return false, fmt.Errorf("resolving source %s: %w", src, err)
	}

	if info, err := os.Lstat(dst); err == nil {
		if info.Mode()&os.ModeSymlink == 0 {
			return false, fmt.Errorf("%s exists and is not a symlink: %w", dst, ErrConflict)
		}
		existing, readErr := platform.ReadSymlinkTarget(dst)
		if readErr == nil && existing == abs {
			return true, nil
		}
		if err := platform.RemoveSymlink(dst); err != nil {
			return false, fmt.Errorf("replacing symlink %s: %w", dst, err)
		}
	}

	if err := platform.CreateSymlink(abs, dst); err != nil {
		return false, fmt.Errorf("linking %s -> %s: %w", dst, abs, err)
	}
	return false, nil
}

// placeCopy duplicates the source at dst. Existing regular files are
// overwritten (skipped when the bytes already match); an existing symlink
// is a conflict, as is a file/directory mismatch.
func placeCopy(src, dst string, isDir bool) (bool, error) {
	if info, err := os.Lstat(dst); err == nil {
		if info.Mode()&os.ModeSymlink != 0 {
			return false, fmt.Errorf("%s is a symlink, refusing to copy over it: %w", dst, ErrConflict)
		}
		if info.IsDir() != isDir {
			return false, fmt.Errorf("%s is occupied by an incompatible entry: %w", dst, ErrConflict)
		}
	}

	if isDir {
		// Remove any previous installation for a clean, deterministic copy.
		if _, err := os.Stat(dst); err == nil {
			if err := os.RemoveAll(dst); err != nil {
				return false, fmt.Errorf("removing existing installation at %s: %w", dst, err)
			}
		}
		if err := copyDir(src, dst); err != nil {
			return false, fmt.Errorf("copying %s to %s: %w", src, dst, err)
		}
		return false, nil
	}

	return copyFile(src, dst)
}

// copyFile copies a single file, preserving permissions. Returns true when
// the destination already held identical bytes and was left alone.
func copyFile(src, dst string) (bool, error) {
	data, err := os.ReadFile(src)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", src, err)
	}

	if existing, err := os.ReadFile(dst); err == nil && bytes.Equal(existing, data) {
		return true, nil
	}

	srcInfo, err := os.Stat(src)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", src, err)
	}

	if err := os.WriteFile(dst, data, srcInfo.Mode()); err != nil {
		return false, fmt.Errorf("writing %s: %w", dst, err)
	}
	return false, nil
}

// copyDir recursively copies src to dst, excluding entries in excludedNames.
// Symlinks and other special files inside the source are skipped.
func copyDir(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dst, srcInfo.Mode()); err != nil {
		return err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if excludedNames[entry.Name()] {
			continue
		}

		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			if err := copyDir(srcPath, dstPath); err != nil {
				return err
			}
		} else if entry.Type().IsRegular() {
			if _, err := copyFile(srcPath, dstPath); err != nil {
				return err
			}
		}
	}

	return nil
}
