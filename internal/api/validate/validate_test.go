package validate

import (
	"strings"
	"testing"
)

func TestUserName(t *testing.T) {
	if err := UserName("John Doe"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := UserName(""); err == nil {
		t.Fatalf("expected error for empty name")
	}
	if err := UserName(strings.Repeat("a", 100)); err != nil {
		t.Fatalf("100 chars should pass: %v", err)
	}
	if err := UserName(strings.Repeat("a", 101)); err == nil {
		t.Fatalf("expected error for 101 chars")
	}
}

// The 100-character limit counts characters, not bytes.
func TestUserName_Multibyte(t *testing.T) {
	if err := UserName(strings.Repeat("é", 100)); err != nil {
		t.Fatalf("100 multibyte chars should pass: %v", err)
	}
	if err := UserName(strings.Repeat("é", 101)); err == nil {
		t.Fatalf("expected error for 101 multibyte chars")
	}
	if err := UserName(strings.Repeat("日", 34)); err != nil {
		t.Fatalf("34 CJK chars should pass: %v", err)
	}
}

func TestZipCode(t *testing.T) {
	tests := []struct {
		zip string
		ok  bool
	}{
		{"10001", true},
		{"10001-1234", true},
		{"invalid", false},
		{"", false},
		{"1234", false},
		{"123456", false},
		{"10001-12", false},
		{"10001 1234", false},
	}
	for _, tc := range tests {
		err := ZipCode(tc.zip)
		if tc.ok && err != nil {
			t.Errorf("ZipCode(%q): unexpected error %v", tc.zip, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("ZipCode(%q): expected error", tc.zip)
		}
	}
}
