package utils

import (
	"testing"
)

func TestStringToUint(t *testing.T) {
	tests := []struct {
		in   string
		want uint
	}{
		{"5", 5},
		{"0", 0},
		{"", 0},
		{"abc", 0},
		{"-3", 0},
		{"3.5", 0},
	}

	for _, tt := range tests {
		if got := StringToUint(tt.in); got != tt.want {
			t.Errorf("StringToUint(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
