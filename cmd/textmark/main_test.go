package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"textmark/internal/chunker"
)

func createTestFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	return path
}

const sample = "Hello world.\r\n\r\nThis is a test.\r\n\r\nThird paragraph."

func TestChunksCmd_Page(t *testing.T) {
	path := createTestFile(t, sample)

	var out bytes.Buffer
	if err := run([]string{"chunks", path, "--page", "2", "--page-size", "1"}, &out, &out); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	var got pageOutput
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON output %q: %v", out.String(), err)
	}
	if got.TotalChunks != 3 || !got.HasNext || !got.HasPrev {
		t.Errorf("page = %+v", got)
	}
	if len(got.Chunk) != 1 || got.Chunk[0] != "This is a test." {
		t.Errorf("chunk = %q", got.Chunk)
	}
	if got.ChunkStart == nil || *got.ChunkStart != 14 || got.ChunkEnd == nil || *got.ChunkEnd != 29 {
		t.Errorf("chunk offsets = %v/%v, want 14/29", got.ChunkStart, got.ChunkEnd)
	}
}

func TestChunksCmd_All(t *testing.T) {
	path := createTestFile(t, sample)

	var out bytes.Buffer
	if err := run([]string{"chunks", "--all", path}, &out, &out); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	var got allOutput
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if got.TotalChunks != 3 || len(got.Chunks) != 3 || got.Chunks[2].Offset != 31 {
		t.Errorf("all = %+v", got)
	}
}

func TestChunksCmd_Errors(t *testing.T) {
	path := createTestFile(t, sample)

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"page out of range", []string{"chunks", path, "--page", "4"}, chunker.ErrOutOfRange},
		{"zero page size", []string{"chunks", path, "--page-size", "0"}, chunker.ErrInvalidParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := run(tt.args, &out, &out)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("run() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	var out bytes.Buffer
	if err := run([]string{"chunks", filepath.Join(t.TempDir(), "missing.txt")}, &out, &out); err == nil {
		t.Error("run() with missing file should fail")
	}
}

func TestExtractCmd(t *testing.T) {
	path := createTestFile(t, sample)

	var out bytes.Buffer
	if err := run([]string{"extract", path, "6", "11"}, &out, &out); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if got := strings.TrimSuffix(out.String(), "\n"); got != "world" {
		t.Errorf("extract output = %q, want world", got)
	}

	out.Reset()
	err := run([]string{"extract", path, "40", "100"}, &out, &out)
	if !errors.Is(err, chunker.ErrRangeOutOfBounds) {
		t.Errorf("run() error = %v, want ErrRangeOutOfBounds", err)
	}
}

func TestVersionCmd(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"version"}, &out, &out); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.Contains(out.String(), version) {
		t.Errorf("version output = %q", out.String())
	}
}
