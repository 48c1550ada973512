package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
)

func TestSetupLoggingDiscardsWithoutDebug(t *testing.T) {
	file := setupLogging(false)
	if file != nil {
		file.Close()
		t.Fatal("no log file expected without -debug")
	}
	if log.Writer() != io.Discard {
		t.Errorf("log output routed to %v, want io.Discard", log.Writer())
	}
}

func TestSetupLoggingWritesFileWithDebug(t *testing.T) {
	t.Cleanup(func() { os.RemoveAll(logDir) })

	file := setupLogging(true)
	if file == nil {
		t.Fatal("debug logging should open a file")
	}
	defer file.Close()

	log.Println("frame 1")

	info, err := os.Stat(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("log file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("logged line never reached the file")
	}
	if w := log.Writer(); w == os.Stdout || w == os.Stderr {
		t.Error("debug logs must stay off the terminal")
	}
}

func TestSetupLoggingRotatesOversizedFile(t *testing.T) {
	t.Cleanup(func() { os.RemoveAll(logDir) })

	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatal(err)
	}
	logPath := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatal(err)
	}

	file := setupLogging(true)
	if file == nil {
		t.Fatal("debug logging should open a file")
	}
	defer file.Close()

	// The oversized file moves aside under a timestamped name and a
	// fresh one takes its place
	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatal(err)
	}
	var rotated bool
	for _, entry := range entries {
		if entry.Name() != logFileName && filepath.Ext(entry.Name()) == ".log" {
			rotated = true
		}
	}
	if !rotated {
		t.Error("oversized log was not rotated aside")
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("fresh log file missing: %v", err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("fresh log file already %d bytes", info.Size())
	}
}
