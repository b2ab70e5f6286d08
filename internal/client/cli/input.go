package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dmitrijs2005/eldercare/internal/common"
	"golang.org/x/term"
)

// readPassword and isTerminal are test seams for the x/term calls.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// TimeLayout is how dates are typed in and printed, in local time.
const TimeLayout = "2006-01-02 15:04"

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	return readLine(reader)
}

// ClearValue typed at a GetWithDefault prompt empties the field.
const ClearValue = "-"

// GetWithDefault works like GetSimpleText but shows current in brackets and
// returns it unchanged when the user just presses Enter. ClearValue returns "".
func GetWithDefault(reader *bufio.Reader, prompt, current string, w io.Writer) (string, error) {
	if current != "" {
		prompt = fmt.Sprintf("%s [%s]", prompt, current)
	}
	s, err := GetSimpleText(reader, prompt, w)
	if err != nil {
		return "", err
	}
	switch s {
	case "":
		return current, nil
	case ClearValue:
		return "", nil
	}
	return s, nil
}

// GetPassword prints prompt and reads a password without echo. When stdin is
// not a terminal (pipes, scripts) the line is read from reader instead; only
// the line ending is removed, so spaces survive as they do on a terminal.
func GetPassword(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	fd := int(os.Stdin.Fd())
	if !isTerminal(fd) {
		if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
			return "", err
		}
		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
			return "", err
		}
		return strings.TrimRight(line, "\r\n"), nil
	}

	if _, err := fmt.Fprint(w, prompt+": "); err != nil {
		return "", err
	}
	pw, err := readPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// GetTime reads a TimeLayout value in local time. Empty input keeps current;
// dates cannot be cleared, so ClearValue keeps it too.
func GetTime(reader *bufio.Reader, prompt string, current time.Time, w io.Writer) (time.Time, error) {
	def := ""
	if !current.IsZero() {
		def = current.Local().Format(TimeLayout)
	}
	s, err := GetWithDefault(reader, prompt+" (YYYY-MM-DD HH:MM)", def, w)
	if err != nil {
		return time.Time{}, err
	}
	if s == def || s == "" {
		return current, nil
	}
	t, err := time.ParseInLocation(TimeLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a date like 2025-03-01 14:30", common.ErrValidation, s)
	}
	return t, nil
}

func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(TimeLayout)
}
