package extract

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestAllowed(t *testing.T) {
	t.Parallel()

	cases := []struct {
		filename string
		want     bool
	}{
		{"resume.pdf", true},
		{"resume.docx", true},
		{"resume.txt", true},
		{"resume.PDF", true},
		{"resume.doc", false},
		{"resume.png", false},
		{"resume", false},
	}
	for _, tc := range cases {
		if got := Allowed(tc.filename); got != tc.want {
			t.Errorf("Allowed(%q) = %v, want %v", tc.filename, got, tc.want)
		}
	}
}

func TestText_PlainText(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "resume.txt")
	content := "Five years of Go and Docker experience."
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := Text(path)
	if err != nil {
		t.Fatalf("Text error: %v", err)
	}
	if got != content {
		t.Fatalf("got %q, want %q", got, content)
	}
}

func TestText_UnsupportedExtension(t *testing.T) {
	t.Parallel()

	_, err := Text("resume.odt")
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}
