package codes

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

const (
	// LineComment starts a comment that runs to the end of the line.
	LineComment = "//"
	// InputEnd marks the end of meaningful input.
	InputEnd = "####"
)

var (
	// ErrMalformedLine indicates a line with characters other than digits and 'A'.
	ErrMalformedLine = errors.New("codes: malformed line")
)

var linePattern = regexp.MustCompile(`^[0-9A]+$`)

// Read parses codes from r, one per line.
func Read(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for number := 1; sc.Scan(); number++ {
		text, end := sanitise(sc.Text())
		if text != "" {
			if !linePattern.MatchString(text) {
				return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedLine, number, text)
			}
			out = append(out, text)
		}
		if end {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("codes: read: %w", err)
	}
	return out, nil
}

// ReadFile parses codes from the file at path.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("codes: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// sanitise strips markers and whitespace from one line and reports whether
// the input-end marker was met.
func sanitise(line string) (text string, end bool) {
	if i := strings.Index(line, InputEnd); i >= 0 {
		line, end = line[:i], true
	}
	if i := strings.Index(line, LineComment); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line), end
}
