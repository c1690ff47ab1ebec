package errors

import (
	"strings"
	"unicode"
)

// ValidateSize checks that size is a usable square icon dimension.
func ValidateSize(size int) error {
	if size <= 0 {
		return New(ErrCodeInvalidSize, "icon size must be positive, got %d", size)
	}
	return nil
}

// ValidateSizeLimit checks size like ValidateSize and also rejects sizes
// above limit.
func ValidateSizeLimit(size, limit int) error {
	if err := ValidateSize(size); err != nil {
		return err
	}
	if size > limit {
		return New(ErrCodeInvalidSize, "icon size %d exceeds maximum of %d", size, limit)
	}
	return nil
}

// ValidateOutputPath validates an output file path.
//
// Only the shape of the path is checked here. Whether the parent directory
// exists is left to the write itself so the filesystem error surfaces as-is.
func ValidateOutputPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	for _, r := range path {
		if r == 0 || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid control characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, "\\") {
		return New(ErrCodeInvalidPath, "output path %q names a directory", path)
	}
	return nil
}
