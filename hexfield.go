package dln

import (
	"fmt"
	"strconv"
)

// maxHexDigits keeps decoded fields within a non-negative int64.
const maxHexDigits = 15

// appendHexField appends n as lowercase hex digits without prefix or padding.
func appendHexField(dst []byte, n int) []byte {
	return strconv.AppendUint(dst, uint64(n), 16)
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f')
}

// readHexField parses the hex field starting at data[pos]. The first
// non-digit byte terminates the field and is left for the caller.
func readHexField(data []byte, pos int) (int, int, error) {
	end := pos
	for end < len(data) && isHexDigit(data[end]) {
		end++
	}
	if end == pos {
		return 0, pos, fmt.Errorf("%w: at offset %d", ErrEmptyField, pos)
	}
	if end-pos > maxHexDigits {
		return 0, pos, fmt.Errorf("%w: %d hex digits at offset %d", ErrSizeOverflow, end-pos, pos)
	}

	v, err := strconv.ParseUint(string(data[pos:end]), 16, 64)
	if err != nil {
		return 0, pos, fmt.Errorf("%w: %v", ErrSizeOverflow, err)
	}
	n, err := intFromUint64(v)
	if err != nil {
		return 0, pos, err
	}

	return n, end, nil
}
