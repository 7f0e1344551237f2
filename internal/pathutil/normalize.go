package pathutil

import "path/filepath"

// Normalize returns a canonical filesystem path string.
// It removes trailing slashes, collapses "." and "..", and
// preserves relative paths when provided.
func Normalize(path string) string {
	if path == "" {
		return path
	}
	return filepath.Clean(path)
}

// Absolute joins a relative path onto cwd and normalizes the result.
// Absolute paths are only normalized. No filesystem access is made.
func Absolute(path, cwd string) string {
	if filepath.IsAbs(path) {
		return Normalize(path)
	}
	return Normalize(filepath.Join(cwd, path))
}
