package upload

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func formFile(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fw.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if err := req.ParseMultipartForm(1 << 20); err != nil {
		t.Fatal(err)
	}
	return req.MultipartForm.File["file"][0]
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	fh := formFile(t, "resume.pdf", "pdf bytes")

	path, cleanup, err := Save(fh, dir)
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}

	if filepath.Dir(path) != dir {
		t.Fatalf("temp file %q not under %q", path, dir)
	}
	if !strings.HasSuffix(path, ".pdf") {
		t.Fatalf("temp file %q did not keep the upload extension", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading temp file: %v", err)
	}
	if string(data) != "pdf bytes" {
		t.Fatalf("temp file content = %q", data)
	}

	cleanup()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("cleanup did not remove %q", path)
	}
}

func TestSave_UniqueNames(t *testing.T) {
	dir := t.TempDir()

	p1, c1, err := Save(formFile(t, "resume.txt", "a"), dir)
	if err != nil {
		t.Fatal(err)
	}
	defer c1()

	p2, c2, err := Save(formFile(t, "resume.txt", "b"), dir)
	if err != nil {
		t.Fatal(err)
	}
	defer c2()

	if p1 == p2 {
		t.Fatalf("two uploads of the same filename share the temp path %q", p1)
	}
}
