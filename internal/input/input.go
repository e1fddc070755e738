package input

import (
	"bufio"
	"io"
	"time"
)

// escapeDelay is how long to wait for the rest of an escape sequence
// before treating a lone ESC byte as the Escape key.
const escapeDelay = 25 * time.Millisecond

const escByte = '\x1b'

// Stream delivers input bytes via a channel and decodes them into keys.
type Stream struct {
	ch      chan byte
	pending []byte
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The goroutine exits when r returns an error; the stream then reports io.EOF.
func StartStream(r io.Reader) *Stream {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := br.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Next waits up to timeout for the next key press.
// It returns false when no key arrived in time, and io.EOF once the reader is exhausted.
func (s *Stream) Next(timeout time.Duration) (Key, bool, error) {
	b, ok, err := s.readByte(timeout)
	if err != nil || !ok {
		return Key{}, false, err
	}
	if b != escByte {
		return keyFromByte(b), true, nil
	}

	// ESC [ <code> for arrow keys, ESC O <code> in application cursor mode
	next, ok, err := s.readByte(escapeDelay)
	if err != nil || !ok {
		return SpecialKey(KeyEscape), true, nil
	}
	if next != '[' && next != 'O' {
		s.pending = append(s.pending, next)
		return SpecialKey(KeyEscape), true, nil
	}

	final, ok, err := s.readByte(escapeDelay)
	if err != nil {
		return Key{}, false, err
	}
	if !ok {
		return SpecialKey(KeyUnknown), true, nil
	}
	switch final {
	case 'A':
		return SpecialKey(KeyUp), true, nil
	case 'B':
		return SpecialKey(KeyDown), true, nil
	case 'C':
		return SpecialKey(KeyRight), true, nil
	case 'D':
		return SpecialKey(KeyLeft), true, nil
	}
	return SpecialKey(KeyUnknown), true, nil
}

// readByte returns a pushed-back byte first, then waits on the channel.
// A non-positive timeout only checks for bytes that are already buffered.
func (s *Stream) readByte(timeout time.Duration) (byte, bool, error) {
	if len(s.pending) > 0 {
		b := s.pending[0]
		s.pending = s.pending[1:]
		return b, true, nil
	}

	if timeout <= 0 {
		select {
		case b, ok := <-s.ch:
			if !ok {
				return 0, false, io.EOF
			}
			return b, true, nil
		default:
			return 0, false, nil
		}
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case b, ok := <-s.ch:
		if !ok {
			return 0, false, io.EOF
		}
		return b, true, nil
	case <-timer.C:
		return 0, false, nil
	}
}

// keyFromByte decodes a single byte that is not part of an escape sequence.
func keyFromByte(b byte) Key {
	switch {
	case b == '\r' || b == '\n':
		return SpecialKey(KeyEnter)
	case b == '\b' || b == '\x7f':
		return SpecialKey(KeyBackspace)
	case b >= 1 && b <= 26:
		// Ctrl+A .. Ctrl+Z arrive as 0x01 .. 0x1a
		return CtrlKey(rune('a' + b - 1))
	case b < 0x20:
		return SpecialKey(KeyUnknown)
	default:
		return RuneKey(rune(b))
	}
}
