package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// forbiddenDirs are system directories the tool refuses to write into,
// including the macOS equivalents.
var forbiddenDirs = []string{
	"/etc", "/sys", "/proc", "/boot", "/root", "/var",
	"/private/etc", "/private/var", "/System", "/Library", "/Applications",
	"/tmp", "/dev",
}

// forbiddenNames are sensitive filenames that are never acceptable as an
// output target, regardless of directory.
var forbiddenNames = []string{".env", ".git", "id_rsa", "authorized_keys", ".ssh"}

// ValidateOutputPath checks that path is a safe place to write a transcript:
// not inside a protected system directory (checked against both the literal
// deny-list entry and its symlink-resolved form), not a sensitive filename,
// and with an existing parent directory. This is advisory hardening against
// accidental overwrites and path traversal, not a sandbox.
func ValidateOutputPath(path string) error {
	return validatePath(path, forbiddenDirs, forbiddenNames)
}

func validatePath(path string, denyDirs, denyNames []string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("output path is empty")
	}

	resolved, err := resolveOutputPath(path)
	if err != nil {
		return err
	}

	if slices.Contains(denyNames, filepath.Base(resolved)) {
		return fmt.Errorf("refusing to write to %s", filepath.Base(resolved))
	}

	for _, dir := range denyDirs {
		if isWithin(resolved, dir) {
			return fmt.Errorf("refusing to write under %s", dir)
		}
		// A deny-list entry may itself be a symlink to another system
		// directory (e.g. /tmp -> /private/tmp on macOS).
		if target, err := filepath.EvalSymlinks(dir); err == nil && isWithin(resolved, target) {
			return fmt.Errorf("refusing to write under %s", dir)
		}
	}

	return nil
}

// resolveOutputPath returns the absolute, symlink-resolved form of path.
// The target file usually does not exist yet, so symlinks are resolved
// through the parent directory, which must exist.
func resolveOutputPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving output path: %w", err)
	}

	parent, err := filepath.EvalSymlinks(filepath.Dir(abs))
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("output directory does not exist: %s", filepath.Dir(abs))
		}
		return "", fmt.Errorf("resolving output directory: %w", err)
	}

	return filepath.Join(parent, filepath.Base(abs)), nil
}

// isWithin reports whether path equals root or sits underneath it, compared
// segment-wise so that siblings sharing a prefix (/varfoo vs /var) don't
// count as contained.
func isWithin(path, root string) bool {
	path = filepath.Clean(path)
	root = filepath.Clean(root)
	if path == root {
		return true
	}
	return strings.HasPrefix(path, root+string(filepath.Separator))
}
