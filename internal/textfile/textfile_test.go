package textfile_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/codewright/retouch-cli/internal/textfile"
)

func TestReadWriteRoundTrip(t *testing.T) {
	tdir := t.TempDir()
	path := filepath.Join(tdir, "quiz-tab.tsx")
	content := "<div className=\"h-4 w-4\">\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := textfile.Read(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got != content {
		t.Fatalf("got %q, want %q", got, content)
	}
	if err := textfile.Write(path, "<div className=\"h-3 w-3\">\n"); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err = textfile.Read(path)
	if err != nil {
		t.Fatalf("re-read: %v", err)
	}
	if got != "<div className=\"h-3 w-3\">\n" {
		t.Fatalf("got %q after write", got)
	}
	// No temp file left behind
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatal("temp file left behind")
	}
}

func TestReadMissingFile(t *testing.T) {
	if _, err := textfile.Read(filepath.Join(t.TempDir(), "nope.tsx")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestReadRejectsBinary(t *testing.T) {
	tdir := t.TempDir()
	path := filepath.Join(tdir, "blob.bin")
	if err := os.WriteFile(path, []byte{0xff, 0xfe, 0x00, 0x80}, 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := textfile.Read(path)
	if !errors.Is(err, textfile.ErrNotText) {
		t.Fatalf("expected ErrNotText, got %v", err)
	}
}

func TestBackup(t *testing.T) {
	tdir := t.TempDir()
	path := filepath.Join(tdir, "quiz-tab.tsx")
	if err := os.WriteFile(path, []byte("original"), 0o644); err != nil {
		t.Fatal(err)
	}
	bak, err := textfile.Backup(path, ".bak")
	if err != nil {
		t.Fatalf("backup: %v", err)
	}
	if bak != path+".bak" {
		t.Fatalf("unexpected backup path %s", bak)
	}
	b, err := os.ReadFile(bak)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "original" {
		t.Fatalf("backup content %q", b)
	}
}
