package ser

import (
	"fmt"
	"os"
)

// Session holds the file open across multiple frame reads. It exists
// purely to avoid per-read open/close overhead; results are
// byte-identical to File.Frame.
//
// A Session owns one file handle with a shared seek position, so it is
// not safe for concurrent use; callers sharing a Session across
// goroutines must serialize Frame calls. Independent Sessions on the
// same file are safe.
type Session struct {
	file   *File
	f      *os.File
	closed bool
}

// NewSession opens the file for a sequence of frame reads. The caller
// must call Close when done, typically via defer, so the handle is
// released on all exit paths.
func (f *File) NewSession() (*Session, error) {
	fh, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	return &Session{file: f, f: fh}, nil
}

// Frame reads frame i through the session's open handle. The handle is
// seeked explicitly before every read, so calls may request frames in
// any order.
func (s *Session) Frame(i int) (*Frame, error) {
	if s.closed {
		return nil, ErrClosed
	}
	if err := s.file.checkIndex(i); err != nil {
		return nil, err
	}
	return s.file.readFrame(s.f, i)
}

// Close releases the session's file handle. Closing an already-closed
// session is a no-op.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.f.Close()
}
