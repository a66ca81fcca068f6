package services

import (
	"testing"
)

func TestValidateImageName(t *testing.T) {
	tests := []struct {
		filename string
		wantExt  string
		wantErr  bool
	}{
		{"photo.jpg", ".jpg", false},
		{"PHOTO.JPG", ".jpg", false},
		{"pic.jpeg", ".jpeg", false},
		{"diagram.png", ".png", false},
		{"anim.gif", ".gif", false},
		{"modern.webp", ".webp", false},
		{"notes.txt", "", true},
		{"payload.exe", "", true},
		{"noextension", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		ext, err := ValidateImageName(tt.filename)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateImageName(%q) error = %v, wantErr %v", tt.filename, err, tt.wantErr)
			continue
		}
		if ext != tt.wantExt {
			t.Errorf("ValidateImageName(%q) = %q, want %q", tt.filename, ext, tt.wantExt)
		}
	}
}
