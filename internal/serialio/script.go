package serialio

import "io"

// ScriptTransport replays canned raw lines in place of a serial port.
// Lines queued with Backlog model data already sitting in the receive
// buffer: ReadLine serves them first and Flush drops them, while live
// lines survive a Flush. Once both queues are exhausted ReadLine
// returns io.EOF.
type ScriptTransport struct {
	backlog [][]byte
	live    [][]byte
}

func NewScriptTransport(live ...[]byte) *ScriptTransport {
	return &ScriptTransport{live: live}
}

// Backlog queues lines that represent a stale buffered stream.
func (s *ScriptTransport) Backlog(lines ...[]byte) *ScriptTransport {
	s.backlog = append(s.backlog, lines...)
	return s
}

// Feed appends live lines to the stream.
func (s *ScriptTransport) Feed(lines ...[]byte) *ScriptTransport {
	s.live = append(s.live, lines...)
	return s
}

func (s *ScriptTransport) ReadLine() ([]byte, error) {
	if len(s.backlog) > 0 {
		line := s.backlog[0]
		s.backlog = s.backlog[1:]
		return line, nil
	}
	if len(s.live) > 0 {
		line := s.live[0]
		s.live = s.live[1:]
		return line, nil
	}
	return nil, io.EOF
}

func (s *ScriptTransport) Flush() error {
	s.backlog = nil
	return nil
}

func (s *ScriptTransport) Close() error {
	return nil
}
