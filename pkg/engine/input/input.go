package input

import (
	"context"
	"os"
	"time"

	"golang.org/x/term"
)

// TerminalReader puts stdin into raw mode and streams key presses.
type TerminalReader struct {
	fd       int
	oldState *term.State
}

// NewTerminalReader switches the terminal into raw mode.
// Call Close to restore it.
func NewTerminalReader() (*TerminalReader, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return &TerminalReader{fd: fd, oldState: oldState}, nil
}

// Close restores the terminal state
func (r *TerminalReader) Close() error {
	if r.oldState == nil {
		return nil
	}
	return term.Restore(r.fd, r.oldState)
}

// readByte reads a single byte from stdin in raw mode
func readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := os.Stdin.Read(buf)
	return buf[0], err
}

// tryReadArrowKey attempts to read an arrow key escape sequence.
// Returns the arrow direction string if successful, "escape" for a lone ESC
// followed by another key, and empty for unknown sequences.
func tryReadArrowKey(firstByte byte) string {
	b2, err := readByte()
	if err != nil {
		return ""
	}

	// Handle both CSI sequences (ESC [) and SS3 sequences (ESC O)
	if b2 == '[' || b2 == 'O' {
		b3, err := readByte()
		if err != nil {
			return ""
		}

		switch b3 {
		case 'A':
			return "arrow_up"
		case 'B':
			return "arrow_down"
		case 'C':
			return "arrow_right"
		case 'D':
			return "arrow_left"
		}
		return ""
	}

	return "escape"
}

// codeForByte maps a single raw byte to a binding code
func codeForByte(b byte) string {
	switch {
	case b == 3:
		return "quit"
	case b == '\r' || b == '\n':
		return "enter"
	case b == ' ':
		return "space"
	case b == '\t':
		return "tab"
	case b >= 'A' && b <= 'Z':
		return string(rune(b - 'A' + 'a'))
	case b >= 32 && b < 127:
		return string(rune(b))
	}
	return ""
}

// Stream reads key presses until ctx is cancelled or stdin fails.
// Ctrl+C is delivered as the "q" code.
func (r *TerminalReader) Stream(ctx context.Context) <-chan RawInput {
	out := make(chan RawInput, 16)
	go func() {
		defer close(out)
		for {
			b, err := readByte()
			if err != nil {
				return
			}

			code := ""
			if b == 0x1b {
				code = tryReadArrowKey(b)
			} else {
				code = codeForByte(b)
			}
			if code == "quit" {
				code = "q"
			}
			if code == "" {
				continue
			}

			select {
			case out <- RawInput{Device: DeviceTerminal, Code: code, Timestamp: time.Now()}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}
