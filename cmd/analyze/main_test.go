package main

import (
	"testing"
	"unicode/utf8"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short ascii untouched", "hello", 48, "hello"},
		{"long ascii cut with ellipsis", "abcdefghij", 8, "abcde..."},
		{"exact length untouched", "abcdefgh", 8, "abcdefgh"},
		{"multibyte title cut on rune boundary", "日本語のタイトルです長い", 8, "日本語のタ..."},
		{"multibyte short untouched", "日本語", 8, "日本語"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, tt.max)
			if got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncate(%q, %d) produced invalid UTF-8", tt.in, tt.max)
			}
		})
	}
}
