package platform

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// sidecarSuffix names the fallback file recording a symlink target on
// Windows systems without developer mode.
const sidecarSuffix = ".target"

// CreateSymlink creates a symbolic link at link pointing to target.
// On Unix systems this is os.Symlink directly. On Windows it attempts
// os.Symlink first (requires developer mode), then falls back to copying
// the file and writing a sidecar with the original target.
func CreateSymlink(target, link string) error {
	if runtime.GOOS != "windows" {
		return os.Symlink(target, link)
	}

	if err := os.Symlink(target, link); err == nil {
		return nil
	}

	if err := copyForSymlink(target, link); err != nil {
		return fmt.Errorf("symlink fallback (copy) failed: %w", err)
	}

	// Best-effort sidecar so ReadSymlinkTarget can recover the target.
	_ = os.WriteFile(link+sidecarSuffix, []byte(target), 0644)
	return nil
}

// RemoveSymlink removes a symlink (or its fallback copy and sidecar).
func RemoveSymlink(path string) error {
	err := os.Remove(path)
	os.Remove(path + sidecarSuffix) // best-effort
	return err
}

// ReadSymlinkTarget returns the target of a symlink. On Windows, if
// os.Readlink fails because the copy fallback was used, it reads the
// sidecar file instead.
func ReadSymlinkTarget(path string) (string, error) {
	target, err := os.Readlink(path)
	if err == nil {
		return target, nil
	}

	if runtime.GOOS != "windows" {
		return "", err
	}

	data, readErr := os.ReadFile(path + sidecarSuffix)
	if readErr != nil {
		return "", fmt.Errorf("readlink failed and no %s sidecar found: %w", sidecarSuffix, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// IsSymlinkSupported reports whether the platform supports native symlinks.
// On Windows this probes with a temporary link to detect developer mode.
func IsSymlinkSupported() bool {
	if runtime.GOOS != "windows" {
		return true
	}

	tmpDir := os.TempDir()
	link := filepath.Join(tmpDir, ".agentfiles-symlink-test")
	defer os.Remove(link)

	return os.Symlink(tmpDir, link) == nil
}

// copyForSymlink copies target to link. Relative targets resolve against
// the link's parent directory, matching symlink semantics.
func copyForSymlink(target, link string) error {
	resolved := target
	if !filepath.IsAbs(target) {
		resolved = filepath.Join(filepath.Dir(link), target)
	}

	in, err := os.Open(resolved)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(link)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
