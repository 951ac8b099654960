package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/joshuapare/cdlkit/cdl"
)

// testLogPath writes a small log into a temp dir and returns its path.
func testLogPath(t *testing.T, name string, set func(l *cdl.Log)) string {
	t.Helper()
	l := cdl.New()
	l.Init(cdl.Layout{ROMSize: 0x8000})
	if set != nil {
		set(l)
	}
	path := filepath.Join(t.TempDir(), name)
	if err := l.Save(path, nil); err != nil {
		t.Fatalf("save test log: %v", err)
	}
	return path
}

// resetFlags restores global flag state between tests.
func resetFlags() {
	verbose, quiet, jsonOut = false, false, false
	statsNoFlags = false
	mergeBackup, mergeSync, mergeDryRun = false, false, false
	newROMSize, newSRAMCode, newSGB = 0, 0, false
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	// Save original stdout
	origStdout := os.Stdout

	// Create a pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	// Redirect stdout to pipe
	os.Stdout = w

	// Run function
	fnErr := fn()

	// Close write end and restore stdout
	w.Close()
	os.Stdout = origStdout

	// Read captured output
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	return buf.String(), fnErr
}

// assertJSON checks that output is valid JSON
func assertJSON(t *testing.T, output string) {
	t.Helper()
	var result interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Errorf("invalid JSON output: %v\nOutput: %s", err, output)
	}
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}
