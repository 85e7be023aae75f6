package input

import (
	"io"
	"os"
	"time"

	"golang.org/x/term"
)

// KeyCode names a single byte read from a terminal in raw mode. Escape
// sequences such as arrow keys are not bound, so only their first byte
// matters.
func KeyCode(b byte) string {
	switch {
	case b == 3:
		return "ctrl+c"
	case b == 4:
		return "ctrl+d"
	case b == 0x1b:
		return "escape"
	case b == '\r' || b == '\n':
		return "enter"
	case b == ' ':
		return "space"
	case b >= 'A' && b <= 'Z':
		return string(rune(b - 'A' + 'a'))
	case b > 32 && b < 127:
		return string(rune(b))
	}
	return ""
}

// ReadRaw reads one key press from r and wraps it as a terminal event.
func ReadRaw(r io.Reader) (RawInput, error) {
	buf := make([]byte, 1)
	if _, err := r.Read(buf); err != nil {
		return RawInput{}, err
	}
	return RawInput{Device: DeviceTerminal, Code: KeyCode(buf[0]), Timestamp: time.Now()}, nil
}

// ReadIntent puts f into raw mode for a single key press and maps it to an
// intent. When f is not a terminal it reads without changing modes.
func ReadIntent(f *os.File) (Intent, error) {
	fd := int(f.Fd())
	if term.IsTerminal(fd) {
		oldState, err := term.MakeRaw(fd)
		if err != nil {
			return Intent{}, err
		}
		defer term.Restore(fd, oldState)
	}

	raw, err := ReadRaw(f)
	if err != nil {
		return Intent{}, err
	}
	return MapToIntent(NewDebouncedInput(raw)), nil
}
