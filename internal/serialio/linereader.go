package serialio

import (
	"strings"
	"unicode/utf8"
)

// LineReader turns the raw byte stream of a Transport into whole,
// cleanly decoded text lines. NMEA output is continuous UTF-8 text, so
// a consumer that starts reading mid-stream can land part-way through a
// multi-byte character; the reader discards such lines until one
// decodes cleanly.
type LineReader struct {
	t Transport
}

func NewLineReader(t Transport) *LineReader {
	return &LineReader{t: t}
}

// Drain discards any backlog buffered on the transport, then reads and
// discards lines until one decodes cleanly, so the next NextLine call
// returns live, aligned data rather than stale readings.
func (r *LineReader) Drain() error {
	if err := r.t.Flush(); err != nil {
		return err
	}

	// Resync: the first read after a flush can start mid-line or
	// mid-character.
	_, err := r.NextLine()
	return err
}

// NextLine blocks until a whole line decodes cleanly as UTF-8 and
// returns it with the line delimiter and surrounding whitespace
// stripped. Undecodable lines are discarded and the read retried with
// no limit; on a healthy port this only recurs until alignment is
// recovered.
func (r *LineReader) NextLine() (string, error) {
	for {
		raw, err := r.t.ReadLine()
		if err != nil {
			return "", err
		}

		if !utf8.Valid(raw) {
			// Truncated multi-byte sequence; re-read.
			continue
		}

		return strings.TrimSpace(string(raw)), nil
	}
}
