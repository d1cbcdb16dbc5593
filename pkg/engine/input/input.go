// Package input reads and interprets typed commands.
package input

import (
	"bufio"
	"io"
	"strings"
)

// Reader reads one command per line
type Reader struct {
	r *bufio.Reader
}

// NewReader creates a command reader over r
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// ReadLine returns the next line without its line ending.
// A final line without a newline is returned with a nil error; io.EOF is
// returned once nothing is left.
func (r *Reader) ReadLine() (string, error) {
	line, err := r.r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadIntent reads the next line and maps it to an Intent
func (r *Reader) ReadIntent() (Intent, string, error) {
	line, err := r.ReadLine()
	if err != nil {
		return Intent{}, "", err
	}
	return MapToIntent(line), line, nil
}
