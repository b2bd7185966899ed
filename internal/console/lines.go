package console

import (
	"bufio"
	"errors"
	"io"
)

// MaxLineLength is the longest command line accepted, terminator excluded
const MaxLineLength = 64 * 1024

var ErrLineTooLong = errors.New("line too long")

// readLine returns the next line without its "\n" or "\r\n" terminator. A
// line longer than MaxLineLength is consumed whole and reported as
// ErrLineTooLong, so the caller can skip it and keep reading. io.EOF is only
// returned once no data is left.
func readLine(r *bufio.Reader) (string, error) {
	var line []byte
	read, tooLong := false, false
	for {
		chunk, err := r.ReadSlice('\n')
		read = read || len(chunk) > 0
		if !tooLong {
			line = append(line, chunk...)
			if len(line) > MaxLineLength+2 {
				tooLong, line = true, nil
			}
		}
		if err == bufio.ErrBufferFull {
			continue
		}
		if err != nil && !(err == io.EOF && read) {
			return "", err
		}
		break
	}

	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
	}
	if n := len(line); n > 0 && line[n-1] == '\r' {
		line = line[:n-1]
	}
	if tooLong || len(line) > MaxLineLength {
		return "", ErrLineTooLong
	}
	return string(line), nil
}
