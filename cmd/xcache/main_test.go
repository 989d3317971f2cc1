package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/xcache/internal/app"
	"go.trai.ch/xcache/internal/core/domain"
)

const validManifest = `version: "1"
units:
  - name: Core
    platform: macOS
    product: framework
    sources: [Core.swift]
`

func TestRun(t *testing.T) {
	// Save original args
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tests := []struct {
		name         string
		manifest     string
		args         []string
		expectedExit int
	}{
		{
			name:         "Hash with valid config",
			manifest:     validManifest,
			args:         []string{"xcache", "hash"},
			expectedExit: 0,
		},
		{
			name:         "Diff with valid config",
			manifest:     validManifest,
			args:         []string{"xcache", "diff"},
			expectedExit: 0,
		},
		{
			name:         "Unknown unit",
			manifest:     validManifest,
			args:         []string{"xcache", "hash", "Missing"},
			expectedExit: 1,
		},
		{
			name:         "Invalid config",
			manifest:     "units:\n  - name: Core\n    platform: amiga\n    product: framework\n",
			args:         []string{"xcache", "hash"},
			expectedExit: 1,
		},
		{
			name:         "Unknown command",
			manifest:     validManifest,
			args:         []string{"xcache", "build"},
			expectedExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "xcache.yaml"), []byte(tt.manifest), domain.PrivateFilePerm))
			require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "Core.swift"), []byte("struct Core {}"), domain.PrivateFilePerm))
			t.Chdir(tmpDir)

			os.Args = tt.args

			exitCode := run(func(a *app.App) {
				a.WithClock(func() time.Time {
					return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
				})
			})
			assert.Equal(t, tt.expectedExit, exitCode)
		})
	}
}
