package logger_test

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/xcache/internal/adapters/logger"
	"go.trai.ch/xcache/internal/core/domain"
	"go.trai.ch/zerr"
)

// captureStderr captures output written to os.Stderr during the execution of fn.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()

	originalStderr := os.Stderr
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stderr = w
	defer func() { os.Stderr = originalStderr }()

	done := make(chan string, 1)
	go func() {
		buf, _ := io.ReadAll(r)
		done <- string(buf)
	}()

	fn()

	require.NoError(t, w.Close())
	output := <-done
	require.NoError(t, r.Close())
	return output
}

func TestNew_WritesToStderr(t *testing.T) {
	output := captureStderr(t, func() {
		// Created inside so it binds the redirected stderr.
		lg := logger.New()
		lg.Info("test initialization")
	})

	assert.Contains(t, output, "test initialization")
	assert.Contains(t, output, "INFO")
}

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.New()
	lg.SetOutput(&buf)

	lg.Info("some message")
	lg.Warn("some warning")
	lg.Error(os.ErrPermission)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "level=INFO")
	assert.Contains(t, lines[0], "some message")
	assert.Contains(t, lines[1], "level=WARN")
	assert.Contains(t, lines[1], "some warning")
	assert.Contains(t, lines[2], "level=ERROR")
	assert.Contains(t, lines[2], "permission denied")
}

func TestLogger_ErrorMetadata(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.New()
	lg.SetOutput(&buf)
	lg.SetJSON(true)

	err := zerr.With(zerr.With(zerr.Wrap(os.ErrNotExist, domain.ErrFileReadFailed.Error()), "path", "/src/a.swift"), "unit", "Core")
	lg.Error(err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "operation failed", entry["msg"])
	assert.Equal(t, "/src/a.swift", entry["path"])
	assert.Equal(t, "Core", entry["unit"])
	assert.Contains(t, entry["error"], "failed to read file")
}

func TestLogger_SetJSON_Toggle(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.New()
	lg.SetOutput(&buf)

	lg.SetJSON(true)
	lg.Info("json line")
	lg.SetJSON(false)
	lg.Info("text line")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, json.Valid([]byte(lines[0])))
	assert.Contains(t, lines[1], `msg="text line"`)
}
