package serialio

import (
	"errors"
	"io"
	"testing"
)

func TestNextLineStripsDelimiterAndWhitespace(t *testing.T) {
	tables := []struct {
		in       []byte
		expected string
	}{
		{[]byte("$GPGGA,123519,4807.038,N*XX\r\n"), "$GPGGA,123519,4807.038,N*XX"},
		{[]byte("  $GPGSV,3,1,11*XX \n"), "$GPGSV,3,1,11*XX"},
		{[]byte("\n"), ""},
	}

	for _, table := range tables {
		r := NewLineReader(NewScriptTransport(table.in))
		out, err := r.NextLine()
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", table.in, err)
		}
		if out != table.expected {
			t.Errorf("%q expected: %q, got: %q", table.in, table.expected, out)
		}
	}
}

func TestNextLineSkipsUndecodableLines(t *testing.T) {
	// 0xE2 0x82 is a truncated 3-byte UTF-8 sequence, as produced by a
	// read that starts mid-character.
	truncated := []byte{0xE2, 0x82, '\n'}
	r := NewLineReader(NewScriptTransport(
		truncated,
		[]byte{0xFF, 0xFE, '\n'},
		[]byte("$GPRMC,123519,A*XX\r\n"),
	))

	out, err := r.NextLine()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "$GPRMC,123519,A*XX" {
		t.Errorf("expected clean line after skipping invalid ones, got %q", out)
	}
}

func TestNextLineErrOnExhaustedTransport(t *testing.T) {
	r := NewLineReader(NewScriptTransport())
	if _, err := r.NextLine(); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

func TestDrainDiscardsBacklog(t *testing.T) {
	script := NewScriptTransport(
		[]byte("sync-line\r\n"),
		[]byte("live-line\r\n"),
	)
	script.Backlog(
		[]byte("stale-1\r\n"),
		[]byte("stale-2\r\n"),
	)

	r := NewLineReader(script)
	if err := r.Drain(); err != nil {
		t.Fatalf("unexpected drain error: %v", err)
	}

	// The backlog is flushed and the first live line is sacrificed to
	// resync, so the next read is the second live line.
	out, err := r.NextLine()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "live-line" {
		t.Errorf("expected %q after drain, got %q", "live-line", out)
	}
}

func TestDrainWithNoLiveDataBlocksRatherThanReturningStale(t *testing.T) {
	// A transport with only stale buffered data: drain must not let any
	// of it through. The scripted transport reports EOF where a real
	// port would block.
	script := NewScriptTransport()
	script.Backlog([]byte("stale-1\r\n"))

	r := NewLineReader(script)
	if err := r.Drain(); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF, got %v", err)
	}
}
