// Package fileutils provides the file operations used by the ledger stores.
package fileutils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// BackupSuffix is appended to the ledger file name for the pre-write copy.
const BackupSuffix = ".bak"

// FileExists checks if a file exists and is not a directory
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// EnsureDirectoryExists creates a directory if it doesn't exist
func EnsureDirectoryExists(dirPath string) error {
	if dirPath == "" || dirPath == "." {
		return nil
	}
	if err := os.MkdirAll(dirPath, 0750); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}

// CreateFile creates or truncates a file for writing, creating parent
// directories first.
func CreateFile(filePath string) (*os.File, error) {
	if err := EnsureDirectoryExists(filepath.Dir(filePath)); err != nil {
		return nil, err
	}

	file, err := os.Create(filePath) // #nosec G304 -- ledger path comes from user configuration
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	return file, nil
}

// BackupFile copies filePath to filePath+BackupSuffix, replacing any previous
// backup. A missing source is not an error; the returned path is empty then.
func BackupFile(filePath string) (string, error) {
	if !FileExists(filePath) {
		return "", nil
	}

	src, err := os.Open(filePath) // #nosec G304 -- ledger path comes from user configuration
	if err != nil {
		return "", fmt.Errorf("failed to open file for backup: %w", err)
	}
	defer src.Close()

	backupPath := filePath + BackupSuffix
	dst, err := os.Create(backupPath) // #nosec G304 -- derived from the ledger path
	if err != nil {
		return "", fmt.Errorf("failed to create backup file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return "", fmt.Errorf("failed to copy backup: %w", err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("failed to close backup file: %w", err)
	}
	return backupPath, nil
}
