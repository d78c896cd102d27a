package dln

import (
	"errors"
	"fmt"
	"io"
)

const (
	// Magic starts every DLN file.
	Magic = "DLN"
	// Version is the format generation written and accepted by this package (0.1).
	Version byte = 0x01

	// maxHeaderSize is magic, three hex fields at full width and three fixed bytes.
	maxHeaderSize = len(Magic) + 3*maxHexDigits + 3
)

// Header holds the fields stored in front of the compressed sections.
type Header struct {
	Width       int
	Height      int
	Mode        string
	MetaPasses  int // compression passes over the metadata section
	PixelPasses int // compression passes over the pixel section
	MetaLength  int // size of the compressed metadata section in bytes
	Version     byte
}

// VersionString renders a version byte as major.minor, one nibble each.
func VersionString(v byte) string {
	return fmt.Sprintf("%d.%d", v/16, v%16)
}

// passByte packs both pass counts into one byte.
func (h Header) passByte() (byte, error) {
	if h.MetaPasses < 0 || h.MetaPasses > MaxMetadataPasses {
		return 0, fmt.Errorf("%w: metadata %d (max %d)", ErrInvalidPassCount, h.MetaPasses, MaxMetadataPasses)
	}
	if h.PixelPasses < 0 || h.PixelPasses > MaxPixelPasses {
		return 0, fmt.Errorf("%w: pixels %d (max %d)", ErrInvalidPassCount, h.PixelPasses, MaxPixelPasses)
	}

	// #nosec G115 -- both nibbles bounds checked above.
	return byte(h.MetaPasses<<4 | h.PixelPasses), nil
}

// AppendHeader appends the encoded header to dst.
func (h Header) AppendHeader(dst []byte) ([]byte, error) {
	if h.Width < 0 || h.Height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrNegativeDimension, h.Width, h.Height)
	}
	if h.MetaLength < 0 {
		return nil, fmt.Errorf("%w: metadata length %d", ErrSizeOverflow, h.MetaLength)
	}
	mode, err := ModeCode(h.Mode)
	if err != nil {
		return nil, err
	}
	passes, err := h.passByte()
	if err != nil {
		return nil, err
	}

	dst = append(dst, Magic...)
	dst = appendHexField(dst, h.Width)
	dst = append(dst, passes)
	dst = appendHexField(dst, h.Height)
	dst = append(dst, mode)
	dst = appendHexField(dst, h.MetaLength)
	dst = append(dst, h.Version)
	return dst, nil
}

// ParseHeader parses the header at the start of data and returns it with
// the offset of the first metadata byte. The version must equal Version.
func ParseHeader(data []byte) (Header, int, error) {
	var h Header

	if len(data) < len(Magic) || string(data[:len(Magic)]) != Magic {
		return h, 0, ErrInvalidMagic
	}
	pos := len(Magic)

	width, pos, err := readHexField(data, pos)
	if err != nil {
		return h, 0, fmt.Errorf("width: %w", err)
	}
	if pos >= len(data) {
		return h, 0, fmt.Errorf("%w: missing pass count byte", ErrTruncated)
	}
	passes := data[pos]
	pos++

	height, pos, err := readHexField(data, pos)
	if err != nil {
		return h, 0, fmt.Errorf("height: %w", err)
	}
	if pos >= len(data) {
		return h, 0, fmt.Errorf("%w: missing mode byte", ErrTruncated)
	}
	mode, err := ModeName(data[pos])
	if err != nil {
		return h, 0, err
	}
	pos++

	metaLength, pos, err := readHexField(data, pos)
	if err != nil {
		return h, 0, fmt.Errorf("metadata length: %w", err)
	}
	if pos >= len(data) {
		return h, 0, fmt.Errorf("%w: missing version byte", ErrTruncated)
	}
	version := data[pos]
	pos++
	if version != Version {
		return h, 0, fmt.Errorf("%w: should be %q, but got %q", ErrVersionMismatch, VersionString(Version), VersionString(version))
	}

	h = Header{
		Width:       width,
		Height:      height,
		Mode:        mode,
		MetaPasses:  int(passes >> 4),
		PixelPasses: int(passes & 0x0f),
		MetaLength:  metaLength,
		Version:     version,
	}
	if h.MetaPasses > MaxMetadataPasses {
		return Header{}, 0, fmt.Errorf("%w: metadata %d (max %d)", ErrInvalidPassCount, h.MetaPasses, MaxMetadataPasses)
	}

	return h, pos, nil
}

// splitSections cuts the compressed metadata and pixel sections that
// follow a header ending at off.
func splitSections(data []byte, h Header, off int) ([]byte, []byte, error) {
	rest := data[off:]
	if h.MetaLength > len(rest) {
		return nil, nil, fmt.Errorf("%w: metadata needs %d bytes, have %d", ErrTruncated, h.MetaLength, len(rest))
	}

	return rest[:h.MetaLength], rest[h.MetaLength:], nil
}

// ReadHeader reads and parses a header from r without touching the sections.
// It consumes at most the largest possible header from r.
func ReadHeader(r io.Reader) (Header, error) {
	buf := make([]byte, maxHeaderSize)
	n, err := io.ReadFull(r, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return Header{}, fmt.Errorf("%w: %v", ErrReadData, err)
	}

	h, _, err := ParseHeader(buf[:n])
	return h, err
}
