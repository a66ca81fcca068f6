package handlers

import "testing"

func TestValidateCommentText(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{"empty", "", true},
		{"whitespace only", "   \n\t", true},
		{"valid", "Nice post!", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := validateCommentText(tt.text)
			if (msg != "") != tt.wantErr {
				t.Errorf("validateCommentText(%q) = %q, wantErr %v", tt.text, msg, tt.wantErr)
			}
		})
	}
}

func TestValidateProfileEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"missing at sign", "nobody.example.com", true},
		{"valid", "reader@example.com", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := validateProfileEmail(tt.email)
			if (msg != "") != tt.wantErr {
				t.Errorf("validateProfileEmail(%q) = %q, wantErr %v", tt.email, msg, tt.wantErr)
			}
		})
	}
}
