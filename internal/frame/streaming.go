package frame

// streaming.go cleans up source bytes before the CSV parser sees them:
//
//   - bomSkipper drops a leading UTF-8 BOM (0xEF 0xBB 0xBF)
//   - utf8Sanitizer replaces invalid UTF-8 bytes with '?'
//   - CountingReader tracks bytes read for logging
//
// Use WrapSource to apply all three in the right order.

import (
	"bufio"
	"io"
	"unicode/utf8"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// bomSkipper discards a UTF-8 BOM at the very start of the stream.
type bomSkipper struct {
	r       *bufio.Reader
	checked bool
}

func newBOMSkipper(r io.Reader) *bomSkipper {
	return &bomSkipper{r: bufio.NewReader(r)}
}

func (b *bomSkipper) Read(p []byte) (int, error) {
	if !b.checked {
		b.checked = true
		head, err := b.r.Peek(len(utf8BOM))
		if err == nil && string(head) == string(utf8BOM) {
			if _, err := b.r.Discard(len(utf8BOM)); err != nil {
				return 0, err
			}
		}
	}
	return b.r.Read(p)
}

// utf8Sanitizer replaces bytes that are not valid UTF-8 with '?'. A
// multi-byte sequence split across reads is held back until it completes.
type utf8Sanitizer struct {
	r       io.Reader
	pending []byte
	buf     []byte
}

func newUTF8Sanitizer(r io.Reader) *utf8Sanitizer {
	return &utf8Sanitizer{r: r}
}

func (s *utf8Sanitizer) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	if cap(s.buf) < len(p) {
		s.buf = make([]byte, len(p))
	}
	buf := s.buf[:len(p)]

	offset := copy(buf, s.pending)
	s.pending = s.pending[:0]

	// Never read more than p can hold once the pending prefix is counted.
	n, err := s.r.Read(buf[offset:])
	n += offset
	if n == 0 {
		return 0, err
	}

	data := buf[:n]
	atEOF := err == io.EOF
	out := 0

	for i := 0; i < len(data); {
		if data[i] < utf8.RuneSelf {
			p[out] = data[i]
			out++
			i++
			continue
		}

		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			if !atEOF && !utf8.FullRune(data[i:]) {
				s.pending = append(s.pending, data[i:]...)
				break
			}
			p[out] = '?'
			out++
			i++
			continue
		}

		out += copy(p[out:], data[i:i+size])
		i += size
	}

	if out == 0 && err == nil {
		// Only an incomplete sequence arrived; ask for more.
		return s.Read(p)
	}
	return out, err
}

// CountingReader counts the bytes that pass through it.
type CountingReader struct {
	r         io.Reader
	BytesRead int64
}

// Read implements io.Reader.
func (c *CountingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.BytesRead += int64(n)
	return n, err
}

// WrapSource strips a BOM, sanitizes UTF-8 and counts bytes, in that order.
func WrapSource(r io.Reader) *CountingReader {
	return &CountingReader{r: newUTF8Sanitizer(newBOMSkipper(r))}
}
