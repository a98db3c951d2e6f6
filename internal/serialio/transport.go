// Package serialio reads line-oriented text from a serial GPS receiver,
// recovering alignment on a stream that may be stale or mid-character
// when reading starts.
package serialio

import (
	"bufio"
	"fmt"

	serial "go.bug.st/serial"
)

// Transport is a raw, blocking, line-oriented byte source. A real serial
// port satisfies it, and so does a scripted in-memory stream for tests.
type Transport interface {
	// ReadLine blocks until one delimiter-terminated chunk of raw bytes
	// is available and returns it, delimiter included.
	ReadLine() ([]byte, error)

	// Flush discards all buffered-but-unread input, hardware and
	// software side, so the next ReadLine reflects live data.
	Flush() error

	Close() error
}

// Port is a Transport over a real serial device.
type Port struct {
	port serial.Port
	br   *bufio.Reader
}

// OpenPort opens the serial device at the given path and baud rate.
// GPS modules are typically at 9600 baud on /dev/ttyAMA0 or /dev/serial0.
func OpenPort(device string, baud int) (*Port, error) {
	mode := &serial.Mode{BaudRate: baud}

	port, err := serial.Open(device, mode)
	if err != nil {
		return nil, fmt.Errorf("serialio.OpenPort %s: %w", device, err)
	}

	return &Port{
		port: port,
		br:   bufio.NewReader(port),
	}, nil
}

func (p *Port) ReadLine() ([]byte, error) {
	line, err := p.br.ReadBytes('\n')
	if err != nil {
		return nil, fmt.Errorf("serialio.Port.ReadLine: %w", err)
	}
	return line, nil
}

// Flush resets the kernel input buffer and drops anything bufio has
// already read ahead.
func (p *Port) Flush() error {
	p.br.Reset(p.port)
	if err := p.port.ResetInputBuffer(); err != nil {
		return fmt.Errorf("serialio.Port.Flush: %w", err)
	}
	return nil
}

func (p *Port) Close() error {
	return p.port.Close()
}
