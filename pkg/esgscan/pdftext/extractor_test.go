package pdftext

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/disclosurelab/esgscan/internal/console"
)

func TestRunMissingInputDir(t *testing.T) {
	console.SetOutput(io.Discard)
	defer console.SetOutput(os.Stdout)

	e := NewExtractor(filepath.Join(t.TempDir(), "missing"), t.TempDir())
	if _, err := e.Run(); err == nil {
		t.Fatal("expected error for missing input directory")
	}
}

func TestRunNoPDFs(t *testing.T) {
	console.SetOutput(io.Discard)
	defer console.SetOutput(os.Stdout)

	out := t.TempDir()
	e := NewExtractor(t.TempDir(), out)
	log, err := e.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if log != nil {
		t.Errorf("log = %+v, want nil for empty input", log)
	}
	if _, err := os.Stat(filepath.Join(out, LogFile)); err == nil {
		t.Error("run log written despite no input files")
	}
}

func TestFindPDFsSorted(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b/z.pdf", "a/y.PDF", "a/x.pdf", "a/notes.txt"} {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("%PDF-1.4"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	files, err := findPDFs(dir)
	if err != nil {
		t.Fatalf("findPDFs: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("got %d files, want 3: %v", len(files), files)
	}
	for i := 1; i < len(files); i++ {
		if files[i-1] > files[i] {
			t.Errorf("files not sorted: %v", files)
		}
	}
}
