package strip

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/utilmind/mysqlstrip/internal/progress"
)

/*
 * ChunkFunc supplies the next chunk of input text, returning io.EOF
 * when no input remains. Chunks must not split a "/*!<digits>" opener:
 * newline-terminated lines satisfy this (the opener contains no
 * newline), as does yielding the whole text at once. A comment body may
 * be split at any byte; the processor stitches it back together.
 */
type ChunkFunc func() (string, error)

// Processor runs the versioned-comment transform, in one shot over a
// whole buffer or incrementally over a stream of chunks. It is not safe
// for concurrent use; create one per input.
type Processor struct {
	threshold uint64
	sink      progress.Sink
	total     int64
}

// NewProcessor creates a Processor. A zero threshold falls back to
// DefaultThreshold.
func NewProcessor(threshold uint64) *Processor {
	if threshold == 0 {
		threshold = DefaultThreshold
	}
	return &Processor{
		threshold: threshold,
		sink:      progress.Discard,
		total:     -1,
	}
}

// SetProgress routes progress updates to sink. total is the input size
// in bytes, or -1 when unknown.
func (p *Processor) SetProgress(sink progress.Sink, total int64) {
	if sink == nil {
		sink = progress.Discard
	}
	p.sink = sink
	p.total = total
}

// String transforms src and returns the result.
func (p *Processor) String(src string) string {
	done := false
	next := func() (string, error) {
		if done {
			return "", io.EOF
		}
		done = true
		return src, nil
	}
	var b strings.Builder
	b.Grow(len(src))
	// The supplier and the builder cannot fail.
	_ = p.Transform(next, &b)
	return b.String()
}

/*
 * Transform pulls chunks from next and writes the transformed text to
 * w. Text outside versioned comments is copied through unchanged. When
 * the input ends while a versioned comment is still open, everything
 * accumulated so far is written verbatim: a truncated dump comes out
 * unmodified rather than half-rewritten.
 */
func (p *Processor) Transform(next ChunkFunc, w io.Writer) error {
	var processed int64

	read := func() (string, error) {
		chunk, err := next()
		if len(chunk) > 0 {
			processed += int64(len(chunk))
			p.sink.Report(processed, p.total)
		}
		return chunk, err
	}

	line, err := read()
	if err == io.EOF {
		p.sink.Done()
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	pos := 0
	for {
		idx := strings.Index(line[pos:], opener)
		if idx < 0 {
			// No opener ahead: emit the tail and move to the next chunk.
			if err := writeString(w, line[pos:]); err != nil {
				return err
			}
			line, err = read()
			if err == io.EOF {
				p.sink.Done()
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			pos = 0
			continue
		}
		idx += pos

		end, inner, ok := matchEnd(line[idx:])
		if !ok {
			// "/*!" with no digit after it is literal text. Emit the
			// three bytes and resume scanning right after them.
			if err := writeString(w, line[pos:idx+len(opener)]); err != nil {
				return err
			}
			pos = idx + len(opener)
			continue
		}

		if end < 0 {
			// The comment is open past the end of this chunk.
			// Accumulate chunks until its closer appears.
			comment := line[idx:]
			for {
				chunk, err := read()
				if err == io.EOF {
					// Input exhausted mid-comment: emit what we have,
					// unmodified, and finish.
					if err := writeString(w, line[pos:idx]); err != nil {
						return err
					}
					if err := writeString(w, comment); err != nil {
						return err
					}
					p.sink.Done()
					return nil
				}
				if err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}
				comment += chunk
				if end, inner, _ = matchEnd(comment); end >= 0 {
					break
				}
			}
			if err := writeString(w, line[pos:idx]); err != nil {
				return err
			}
			if err := rewrite(w, comment[:end+2], inner, end, p.threshold); err != nil {
				return err
			}
			// The remainder after the closer becomes the current chunk;
			// it may hold further openers handled in this same pass.
			line = comment[end+2:]
			pos = 0
			continue
		}

		if err := writeString(w, line[pos:idx]); err != nil {
			return err
		}
		if err := rewrite(w, line[idx:idx+end+2], inner, end, p.threshold); err != nil {
			return err
		}
		pos = idx + end + 2
	}
}

// Copy streams src through the transform into dst, chunking on lines.
func (p *Processor) Copy(dst io.Writer, src io.Reader) error {
	return p.Transform(LineChunks(src), dst)
}

// LineChunks returns a ChunkFunc yielding newline-terminated lines from
// r (the final line may lack the terminator).
func LineChunks(r io.Reader) ChunkFunc {
	br := bufio.NewReader(r)
	return func() (string, error) {
		line, err := br.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return line, err
		}
		return line, nil
	}
}

func writeString(w io.Writer, s string) error {
	if s == "" {
		return nil
	}
	if _, err := io.WriteString(w, s); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
