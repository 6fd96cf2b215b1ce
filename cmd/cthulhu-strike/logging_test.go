package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// inTempDir runs the test from an empty directory so logs/ never lands in the package tree
func inTempDir(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Cleanup(func() { log.SetOutput(io.Discard) })
}

func TestSetupLogging(t *testing.T) {
	tests := []struct {
		name     string
		debug    bool
		wantFile bool
	}{
		{"release discards", false, false},
		{"debug writes file", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inTempDir(t)

			f := setupLogging(tt.debug)
			if f != nil {
				defer f.Close()
			}
			if (f != nil) != tt.wantFile {
				t.Fatalf("setupLogging(%v) file = %v, want file %v", tt.debug, f, tt.wantFile)
			}

			out := log.Writer()
			if out == os.Stdout || out == os.Stderr {
				t.Error("log output must never reach the terminal")
			}
			if !tt.wantFile {
				if out != io.Discard {
					t.Errorf("log output = %v, want io.Discard", out)
				}
				if _, err := os.Stat(logDir); !os.IsNotExist(err) {
					t.Error("logs directory created without -debug")
				}
				return
			}

			log.Printf("[event] enemy killed by Shotgun")
			data, err := os.ReadFile(filepath.Join(logDir, logFileName))
			if err != nil {
				t.Fatalf("read log: %v", err)
			}
			if !strings.Contains(string(data), "enemy killed by Shotgun") {
				t.Errorf("log file missing message, got %q", data)
			}
		})
	}
}

func TestSetupLogging_RotatesOversizedLog(t *testing.T) {
	inTempDir(t)

	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	logPath := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatalf("seed oversized log: %v", err)
	}

	f := setupLogging(true)
	if f == nil {
		t.Fatal("setupLogging(true) returned nil")
	}
	defer f.Close()

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatalf("read logs dir: %v", err)
	}
	var rotated []string
	for _, e := range entries {
		if e.Name() != logFileName && strings.HasPrefix(e.Name(), "cthulhu-strike-") {
			rotated = append(rotated, e.Name())
		}
	}
	if len(rotated) != 1 {
		t.Fatalf("rotated files = %v, want exactly one", rotated)
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("stat fresh log: %v", err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("fresh log size = %d, want at most %d", info.Size(), maxLogSize)
	}
}
