package strip

import (
	"compress/gzip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"

	striperrors "github.com/utilmind/mysqlstrip/internal/errors"
)

// ── helpers ──────────────────────────────────────────────────────────────────

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func readInput(t *testing.T, path string) (string, int64) {
	t.Helper()
	r, size, err := OpenInput(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer r.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data), size
}

// ── Plain files ──────────────────────────────────────────────────────────────

func TestOpenInputPlainFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "dump.sql", []byte("SELECT 1;\n"))
	got, size := readInput(t, path)
	if got != "SELECT 1;\n" {
		t.Fatalf("got %q", got)
	}
	if size != int64(len("SELECT 1;\n")) {
		t.Fatalf("size = %d, want %d", size, len("SELECT 1;\n"))
	}
}

func TestOpenInputMissingFile(t *testing.T) {
	_, _, err := OpenInput(filepath.Join(t.TempDir(), "nope.sql"))
	if err == nil {
		t.Fatal("expected an error")
	}
	var inputErr *striperrors.InputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("error type %T, want *errors.InputError", err)
	}
}

func TestOpenInputDirectory(t *testing.T) {
	_, _, err := OpenInput(t.TempDir())
	if err == nil {
		t.Fatal("expected an error")
	}
}

// ── Encoding ─────────────────────────────────────────────────────────────────

func TestIllFormedUTF8Replaced(t *testing.T) {
	path := writeFile(t, t.TempDir(), "dump.sql", []byte{'a', 0xff, 'b'})
	got, _ := readInput(t, path)
	if got != "a�b" {
		t.Fatalf("got %q, want %q", got, "a�b")
	}
}

// ── Compressed input ─────────────────────────────────────────────────────────

func TestOpenInputGzip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dump.sql.gz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	gz := gzip.NewWriter(f)
	if _, err := gz.Write([]byte("/*!40101 SET NAMES utf8 */;\n")); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	got, size := readInput(t, path)
	if got != "/*!40101 SET NAMES utf8 */;\n" {
		t.Fatalf("got %q", got)
	}
	if size != -1 {
		t.Fatalf("size = %d, want -1 for compressed input", size)
	}
}

func TestOpenInputZstd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dump.sql.zst")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw, err := zstd.NewWriter(f)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := zw.Write([]byte("SELECT 1;\n")); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	got, size := readInput(t, path)
	if got != "SELECT 1;\n" {
		t.Fatalf("got %q", got)
	}
	if size != -1 {
		t.Fatalf("size = %d, want -1 for compressed input", size)
	}
}

// ── Output ───────────────────────────────────────────────────────────────────

func TestOpenOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.sql")
	w, err := OpenOutput(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte("data")); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "data" {
		t.Fatalf("got %q", data)
	}
}

func TestOpenOutputStdoutNotClosed(t *testing.T) {
	w, err := OpenOutput(Stdio)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}
