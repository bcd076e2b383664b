package validation

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/finance-tracker/internal/ledgererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidOutputPath(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "report.json")
	require.NoError(t, os.WriteFile(existing, []byte("{}"), 0o600))

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{name: "new file", path: filepath.Join(dir, "new", "report.json")},
		{name: "existing file", path: existing},
		{name: "directory", path: dir, wantErr: "is a directory"},
		{name: "empty", path: " ", wantErr: "output path is empty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := IsValidOutputPath(tt.path)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestIsValidOutputFormat(t *testing.T) {
	supported := []string{"json", "xml", "yaml"}

	assert.NoError(t, IsValidOutputFormat("json", supported))
	assert.NoError(t, IsValidOutputFormat(" YAML ", supported))

	err := IsValidOutputFormat("pdf", supported)
	assert.ErrorIs(t, err, ledgererror.ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), "json, xml, yaml")
}

func TestIsValidFilePermissions(t *testing.T) {
	assert.NoError(t, IsValidFilePermissions(0o600))
	assert.NoError(t, IsValidFilePermissions(0o644))
	assert.Error(t, IsValidFilePermissions(0o666))
	assert.Error(t, IsValidFilePermissions(0o777))
}
