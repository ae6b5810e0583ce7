package usbx

import "io"

// ScriptStep is one scripted poll result.
type ScriptStep struct {
	Data []byte
	Err  error
}

// ScriptTransport replays a fixed sequence of poll results. Once the script
// is exhausted, ReadReport fails with io.EOF, which the driver treats as a
// fatal transport error, so a test's loop terminates deterministically.
type ScriptTransport struct {
	Steps  []ScriptStep
	ArmErr error

	Armed  bool
	Closed bool
	pos    int
}

func (s *ScriptTransport) Arm() error {
	s.Armed = true
	return s.ArmErr
}

func (s *ScriptTransport) ReadReport(buf []byte) (int, error) {
	if s.pos >= len(s.Steps) {
		return 0, io.EOF
	}
	step := s.Steps[s.pos]
	s.pos++
	if step.Err != nil {
		return 0, step.Err
	}
	return copy(buf, step.Data), nil
}

func (s *ScriptTransport) Close() error {
	s.Closed = true
	return nil
}
