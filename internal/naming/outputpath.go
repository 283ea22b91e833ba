package naming

import (
	"path/filepath"
	"strings"
)

// OutputPath returns the default output path for an input file: same
// directory, same stem, extension replaced with lowercase ".mp4".
//
//	/a/clip.MOV -> /a/clip.mp4
func OutputPath(input string) string {
	return ForceMP4(input)
}

// ForceMP4 replaces the path's extension with ".mp4" (appending it when the
// path has none). Also applied to explicit -o values so the container
// extension always matches the produced container.
func ForceMP4(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + ".mp4"
}

// IsMovFile reports whether path has a ".mov" extension, case-insensitive.
func IsMovFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".mov")
}
