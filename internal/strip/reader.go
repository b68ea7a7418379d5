package strip

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"github.com/utilmind/mysqlstrip/internal/errors"
)

// Stdio is the path designator for the standard input/output streams.
const Stdio = "-"

// input bundles the decoded reader with whatever needs closing under it.
type input struct {
	io.Reader
	closers []io.Closer
}

func (in *input) Close() error {
	var first error
	for i := len(in.closers) - 1; i >= 0; i-- {
		if err := in.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

/*
 * OpenInput opens path for reading. "-" means stdin. Files ending in
 * .gz or .zst are decompressed transparently.
 *
 * The returned reader replaces ill-formed UTF-8 with U+FFFD instead of
 * failing; dumps with mangled encodings still convert.
 *
 * size is the number of bytes the transform will consume, for progress
 * reporting. It is -1 when unknown (stdin, or compressed input whose
 * decoded size is not recorded up front).
 */
func OpenInput(path string) (io.ReadCloser, int64, error) {
	if path == Stdio {
		return &input{Reader: sanitize(os.Stdin)}, -1, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, 0, errors.NewInputError(path, "not found")
		}
		return nil, 0, fmt.Errorf("failed to stat input: %w", err)
	}
	if info.IsDir() {
		return nil, 0, errors.NewInputError(path, "is a directory")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open input: %w", err)
	}

	switch {
	case strings.HasSuffix(path, ".gz"):
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, 0, fmt.Errorf("failed to open gzip reader: %w", err)
		}
		return &input{Reader: sanitize(gz), closers: []io.Closer{f, gz}}, -1, nil

	case strings.HasSuffix(path, ".zst"):
		zr, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, 0, fmt.Errorf("failed to open zstd reader: %w", err)
		}
		rc := zr.IOReadCloser()
		return &input{Reader: sanitize(rc), closers: []io.Closer{f, rc}}, -1, nil

	default:
		return &input{Reader: sanitize(f), closers: []io.Closer{f}}, info.Size(), nil
	}
}

// OpenOutput opens path for writing, truncating any existing file.
// "-" means stdout, which is not closed by the returned WriteCloser.
func OpenOutput(path string) (io.WriteCloser, error) {
	if path == Stdio {
		return nopWriteCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.NewOutputError(path, err.Error())
	}
	return f, nil
}

// sanitize substitutes U+FFFD for ill-formed UTF-8 so decoding never fails.
func sanitize(r io.Reader) io.Reader {
	return transform.NewReader(r, runes.ReplaceIllFormed())
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
