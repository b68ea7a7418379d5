/*
 * Package strip removes version-gated compatibility comments from
 * MySQL/MariaDB dump text.
 *
 * A versioned comment has the form
 *
 *	/*!<digits> inner SQL ... * /
 *
 * where <digits> is the minimum server version the inner SQL is meant
 * for (e.g. 50003 for 5.0.3). When that version is below the configured
 * threshold the delimiters are stripped and only the inner SQL remains,
 * making the statement unconditionally active. At or above the
 * threshold the comment is kept verbatim: it is still conditional for
 * newer servers. Ordinary block comments, line comments, and regular
 * SQL pass through byte-for-byte.
 *
 * Nested ordinary comments are legal inside a versioned comment; the
 * closing "* /" of the versioned comment is the first one encountered
 * at nesting depth zero.
 */
package strip

import (
	"io"
	"strconv"
)

// DefaultThreshold is the MySQL 8.0 version boundary. Versioned
// comments tagged below it are unwrapped by default.
const DefaultThreshold = 80000

// opener is the three-byte prefix of a versioned comment. The bytes are
// only significant when immediately followed by at least one digit;
// otherwise they are ordinary text.
const opener = "/*!"

/*
 * matchEnd scans text that begins with "/*!", locating the "* /" that
 * closes this versioned comment.
 *
 * Returns (end, inner, ok):
 *
 *	ok    - false when no digit follows "/*!"; the text is not a
 *	        versioned comment and must pass through as-is.
 *	inner - offset just past the digit run (start of inner content).
 *	end   - offset where the closing "* /" starts, or -1 when the
 *	        available text ends before the comment closes (the caller
 *	        either appends more input and retries, or gives up and
 *	        emits the text verbatim).
 *
 * The scan examines the two-byte window at every offset, so overlapping
 * token candidates resolve strictly left to right: a '*' shared between
 * adjacent candidates still begins the closer at depth zero.
 */
func matchEnd(comment string) (end, inner int, ok bool) {
	n := len(comment)
	j := len(opener)
	for j < n && comment[j] >= '0' && comment[j] <= '9' {
		j++
	}
	if j == len(opener) {
		return 0, 0, false
	}
	inner = j

	depth := 0
	for k := j; k < n-1; {
		switch {
		case comment[k] == '/' && comment[k+1] == '*':
			// Nested ordinary block comment.
			depth++
			k += 2
		case comment[k] == '*' && comment[k+1] == '/':
			if depth == 0 {
				return k, inner, true
			}
			depth--
			k += 2
		default:
			k++
		}
	}
	return -1, inner, true
}

/*
 * version parses the digit run of a versioned comment. A run too long
 * for a uint64 parses as 0, i.e. below any threshold, so the comment is
 * unwrapped. Losing the delimiters of an absurdly-tagged comment is
 * harmless; losing its SQL would not be.
 */
func version(digits string) uint64 {
	v, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

/*
 * rewrite emits one complete versioned comment span (from "/*!" through
 * the closing "* /" inclusive). end is the offset of the closer within
 * span; inner is the offset just past the digit run.
 *
 * Below the threshold only the inner content is written; the
 * "/*!<digits>" prefix and the trailing "* /" are dropped. Otherwise
 * the whole span is written unchanged.
 */
func rewrite(w io.Writer, span string, inner, end int, threshold uint64) error {
	if version(span[len(opener):inner]) < threshold {
		return writeString(w, span[inner:end])
	}
	return writeString(w, span)
}

// String transforms src in one pass and returns the result. Unchanged
// input comes back equal, byte for byte.
func String(src string, threshold uint64) string {
	return NewProcessor(threshold).String(src)
}

// Bytes is String for a byte slice.
func Bytes(src []byte, threshold uint64) []byte {
	return []byte(String(string(src), threshold))
}
