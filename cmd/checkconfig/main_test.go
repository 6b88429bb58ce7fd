package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunValid(t *testing.T) {
	var buf bytes.Buffer
	if code := run(&buf, "../../data/effects.yaml"); code != 0 {
		t.Fatalf("exit code = %d, output:\n%s", code, buf.String())
	}
	out := buf.String()
	if !strings.Contains(out, "particles: 50") {
		t.Errorf("output missing particle count:\n%s", out)
	}
	if strings.Contains(out, "与默认值不同") {
		t.Errorf("shipped config should equal the defaults:\n%s", out)
	}
}

func TestRunInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "effects.yaml")
	if err := os.WriteFile(path, []byte("glitter:\n  intervalMs: -5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if code := run(&buf, path); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
}

func TestRunCustom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "effects.yaml")
	if err := os.WriteFile(path, []byte("particles:\n  count: 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if code := run(&buf, path); code != 0 {
		t.Fatalf("exit code = %d, output:\n%s", code, buf.String())
	}
	if !strings.Contains(buf.String(), "与默认值不同") {
		t.Errorf("custom config not flagged:\n%s", buf.String())
	}
}
