package token

import "testing"

func sampleDoc() *Doc {
	return NewDoc([]Token{
		{Text: "The", Whitespace: " "},
		{Text: "cat", Whitespace: " "},
		{Text: "sat", Whitespace: ""},
		{Text: ".", Whitespace: "", IsPunct: true},
	})
}

func TestNewDocComputesOffsetsAndText(t *testing.T) {
	d := sampleDoc()
	if got := d.Text(); got != "The cat sat." {
		t.Fatalf("Text() = %q", got)
	}
	wantOffsets := []int{0, 4, 8, 11}
	for i, want := range wantOffsets {
		if got := d.At(i).Offset; got != want {
			t.Errorf("token %d offset = %d, want %d", i, got, want)
		}
	}
	if d.Len() != 4 {
		t.Errorf("Len() = %d", d.Len())
	}
}

func TestSlice(t *testing.T) {
	d := sampleDoc()
	tests := []struct {
		i, j int
		want string
	}{
		{0, 2, "The cat"},
		{1, 3, "cat sat"},
		{2, 4, "sat."},
		{0, 4, "The cat sat."},
		{-1, 99, "The cat sat."},
		{2, 2, ""},
		{3, 1, ""},
	}
	for _, tt := range tests {
		if got := d.Slice(tt.i, tt.j); got != tt.want {
			t.Errorf("Slice(%d, %d) = %q, want %q", tt.i, tt.j, got, tt.want)
		}
	}
}

func TestTextBefore(t *testing.T) {
	d := sampleDoc()
	tests := []struct {
		i    int
		want string
	}{
		{0, ""},
		{-3, ""},
		{1, "The"},
		{2, "The cat"},
		{99, "The cat sat."},
	}
	for _, tt := range tests {
		if got := d.TextBefore(tt.i); got != tt.want {
			t.Errorf("TextBefore(%d) = %q, want %q", tt.i, got, tt.want)
		}
	}
}

func TestTextAfter(t *testing.T) {
	d := sampleDoc()
	tests := []struct {
		i    int
		want string
	}{
		{0, "The cat sat."},
		{-2, "The cat sat."},
		{2, "sat."},
		{3, "."},
		{4, ""},
		{99, ""},
	}
	for _, tt := range tests {
		if got := d.TextAfter(tt.i); got != tt.want {
			t.Errorf("TextAfter(%d) = %q, want %q", tt.i, got, tt.want)
		}
	}
}

func TestTrailingWhitespaceTrimmed(t *testing.T) {
	d := NewDoc([]Token{{Text: "hi", Whitespace: " "}})
	if got := d.Text(); got != "hi" {
		t.Fatalf("Text() = %q, trailing space should be trimmed", got)
	}
	if got := d.Slice(0, 1); got != "hi" {
		t.Fatalf("Slice(0,1) = %q", got)
	}
}
