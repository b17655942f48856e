package utils

import "testing"

func TestIsAlpha(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"word", true},
		{"Wörter", true},
		{"", false},
		{"two words", false},
		{"semi-colon", false},
		{"num3ric", false},
	}
	for _, tt := range tests {
		if got := IsAlpha(tt.in); got != tt.want {
			t.Errorf("IsAlpha(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIsMultiWord(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"one", false},
		{"two words", true},
		{"  padded  ", false},
		{"", false},
		{"a b c", true},
	}
	for _, tt := range tests {
		if got := IsMultiWord(tt.in); got != tt.want {
			t.Errorf("IsMultiWord(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello world", "Hello World"},
		{"ALL CAPS", "All Caps"},
		{"mIxEd", "Mixed"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := TitleCase(tt.in); got != tt.want {
			t.Errorf("TitleCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCollapseWhitespace(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"a  b", "a b"},
		{"  a \t b\n", "a b"},
		{"clean", "clean"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := CollapseWhitespace(tt.in); got != tt.want {
			t.Errorf("CollapseWhitespace(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
