package chunker

import (
	"errors"
	"testing"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		start   int
		end     int
		want    string
		wantErr bool
	}{
		{name: "prefix", text: "Hello world", start: 0, end: 5, want: "Hello"},
		{name: "suffix", text: "Hello world", start: 6, end: 11, want: "world"},
		{name: "empty range", text: "Hello world", start: 3, end: 3, want: ""},
		{name: "range at end", text: "Hello world", start: 11, end: 11, want: ""},
		{name: "whole text", text: "Hello world", start: 0, end: 11, want: "Hello world"},
		{name: "rune offsets", text: "şəhər gözəl", start: 6, end: 11, want: "gözəl"},
		{name: "offsets after crlf normalization", text: "ab\r\ncd", start: 3, end: 5, want: "cd"},
		{name: "end past text", text: "Hello world", start: 0, end: 100, wantErr: true},
		{name: "start past text", text: "Hello world", start: 12, end: 12, wantErr: true},
		{name: "start after end", text: "Hello world", start: 5, end: 2, wantErr: true},
		{name: "negative start", text: "Hello world", start: -1, end: 2, wantErr: true},
		{name: "empty text non-zero range", text: "", start: 0, end: 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(tt.text, tt.start, tt.end)

			if tt.wantErr {
				if !errors.Is(err, ErrRangeOutOfBounds) {
					t.Errorf("Extract() error = %v, want ErrRangeOutOfBounds", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Extract() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Extract() = %q, want %q", got, tt.want)
			}
		})
	}
}

// Every chunk's stored offsets must extract back to the chunk text.
func TestExtract_RoundTripsChunks(t *testing.T) {
	text := "Первый абзац.\r\n\r\nSecond one\nspans lines.\n\n\n  Third."
	for _, c := range Split(text) {
		got, err := Extract(text, c.Offset, c.End())
		if err != nil {
			t.Fatalf("Extract(%s) error = %v", c, err)
		}
		if got != c.Text {
			t.Errorf("Extract(%s) = %q, want %q", c, got, c.Text)
		}
	}
}
