package errors

import (
	"strings"
	"unicode"
)

// ValidateArtifactFilename validates a generated-plan filename for safety.
// The static file handler serves artifacts by name, so anything that could
// escape the output directory is rejected.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters or null bytes
//   - No path separators or traversal sequences
//   - No hidden files
//   - Maximum length of 256 characters
func ValidateArtifactFilename(name string) error {
	if name == "" {
		return New(ErrCodeInvalidFilename, "artifact filename cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidFilename, "artifact filename too long (max 256 characters)")
	}

	for _, r := range name {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidFilename, "artifact filename contains invalid characters")
		}
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidFilename, "artifact filename cannot contain path separators")
	}

	if strings.Contains(name, "..") {
		return New(ErrCodeInvalidFilename, "artifact filename cannot contain traversal sequences")
	}

	if strings.HasPrefix(name, ".") {
		return New(ErrCodeInvalidFilename, "artifact filename cannot be a hidden file")
	}

	return nil
}

// ValidateOutputDir validates an output directory path.
// Relative and absolute paths are both allowed; the path just has to be
// non-empty and free of null bytes.
func ValidateOutputDir(dir string) error {
	if dir == "" {
		return New(ErrCodeInvalidInput, "output directory cannot be empty")
	}
	if strings.ContainsRune(dir, '\x00') {
		return New(ErrCodeInvalidInput, "output directory contains invalid characters")
	}
	return nil
}
