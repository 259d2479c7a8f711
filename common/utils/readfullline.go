package utils

import (
	"bufio"
	"strings"
)

// ReadFullLine reads one line without its terminator, however long the line
// is. At end of input it returns io.EOF.
func ReadFullLine(r *bufio.Reader) (string, error) {
	line, isPrefix, readErr := r.ReadLine()

	if readErr != nil {
		return "", readErr
	}

	if !isPrefix {
		return string(line), nil
	}

	var buf strings.Builder
	buf.Write(line)

	for isPrefix {
		line, isPrefix, readErr = r.ReadLine()
		if readErr != nil {
			return "", readErr
		}

		buf.Write(line)
	}

	return buf.String(), nil
}
