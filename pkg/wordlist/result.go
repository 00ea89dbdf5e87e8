package wordlist

import (
	"bufio"
	"io"
	"iter"
	"strings"
)

// PreviewSize is the number of leading words shown as a preview.
const PreviewSize = 50

// Result is the ordered, duplicate-free output of one generation.
type Result struct {
	words []string
}

// Len returns the number of words.
func (r *Result) Len() int {
	return len(r.words)
}

// Words returns the words in generation order. The slice is shared with the
// Result and must not be modified.
func (r *Result) Words() []string {
	return r.words
}

// Preview returns up to n leading words.
func (r *Result) Preview(n int) []string {
	if n <= 0 {
		return []string{}
	}
	n = min(n, len(r.words))
	out := make([]string, n)
	copy(out, r.words[:n])
	return out
}

// All iterates the words in generation order.
func (r *Result) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, w := range r.words {
			if !yield(w) {
				return
			}
		}
	}
}

// Text joins all words with newlines.
func (r *Result) Text() string {
	return strings.Join(r.words, "\n")
}

// WriteTo writes the same content as Text without materializing it.
func (r *Result) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriterSize(w, 64<<10)
	var written int64
	for i, word := range r.words {
		if i > 0 {
			if err := bw.WriteByte('\n'); err != nil {
				return written, err
			}
			written++
		}
		n, err := bw.WriteString(word)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, bw.Flush()
}
