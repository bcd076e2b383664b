// Package validation checks command arguments before any work is done.
package validation

import (
	"fmt"
	"os"
	"strings"

	"fjacquet/finance-tracker/internal/ledgererror"
)

// IsValidOutputPath checks that path can be used as an output file: it may
// not exist yet, but it must not be a directory or a special file.
func IsValidOutputPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("output path is empty")
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error checking path %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("output path %s is a directory", path)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("output path %s is not a regular file", path)
	}
	return nil
}

// IsValidOutputFormat checks if the given format is one of supported,
// case-insensitively.
func IsValidOutputFormat(format string, supported []string) error {
	for _, s := range supported {
		if strings.EqualFold(strings.TrimSpace(format), s) {
			return nil
		}
	}
	return fmt.Errorf("%w: %s. Supported formats are %s",
		ledgererror.ErrUnsupportedFormat, format, strings.Join(supported, ", "))
}

// IsValidFilePermissions rejects world-writable files.
func IsValidFilePermissions(mode os.FileMode) error {
	if mode.Perm()&0o002 != 0 {
		return fmt.Errorf("file permissions are too permissive: %s. Recommended 0600 or 0644", mode.Perm().String())
	}
	return nil
}
