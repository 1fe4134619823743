package charset

import "testing"

func TestIsValidSourceByte(t *testing.T) {
	tests := []struct {
		b    byte
		want bool
	}{
		{'a', true},
		{'Z', true},
		{'0', true},
		{' ', true},
		{'\t', true},
		{'\n', true},
		{'\r', true},
		{'\v', true},
		{'\f', true},
		{0x00, false}, // NUL — always forbidden (original_source eSrcChar)
		{0x7F, false}, // DEL
		{0x1B, false}, // ESC
		{0x80, false},
	}
	for _, tt := range tests {
		if got := IsValidSourceByte(tt.b); got != tt.want {
			t.Errorf("IsValidSourceByte(%#x) = %v, want %v", tt.b, got, tt.want)
		}
	}
}

func TestIsAlnumUnderscore(t *testing.T) {
	for _, b := range []byte("aZ_9") {
		if !IsAlnumUnderscore(b) {
			t.Errorf("IsAlnumUnderscore(%q) = false, want true", b)
		}
	}
	for _, b := range []byte(" +.") {
		if IsAlnumUnderscore(b) {
			t.Errorf("IsAlnumUnderscore(%q) = true, want false", b)
		}
	}
}

func TestIsWhitespaceVsSpace(t *testing.T) {
	if !IsWhitespace('\n') {
		t.Fatalf("newline should count as whitespace")
	}
	if IsSpace('\n') {
		t.Fatalf("newline should not count as a plain space")
	}
}
