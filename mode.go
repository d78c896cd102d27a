package dln

import "fmt"

// Mode names understood by the registry.
const (
	ModeBilevel   = "1"     // 1-bit pixels, stored one pixel per byte
	ModeGray      = "L"     // 8-bit grayscale
	ModePalette   = "P"     // 8-bit palette indices
	ModeRGB       = "RGB"   // 3x8-bit true color
	ModeRGBA      = "RGBA"  // 4x8-bit true color with alpha
	ModeCMYK      = "CMYK"  // 4x8-bit color separation
	ModeInt32     = "I"     // 32-bit signed integer pixels
	ModeFloat32   = "F"     // 32-bit floating point pixels
	ModeGrayAlpha = "LA"    // grayscale with alpha
	ModeRGBX      = "RGBX"  // true color with padding
	ModeYCbCr     = "YCbCr" // 3x8-bit color video format
	ModeGray16    = "I;16"  // 16-bit unsigned integer pixels, little endian
)

// modes is the registry; a mode code is the index into this list.
// The order is part of the file format.
var modes = [...]string{
	ModeBilevel,
	ModeGray,
	ModePalette,
	ModeRGB,
	ModeRGBA,
	ModeCMYK,
	ModeInt32,
	ModeFloat32,
	ModeGrayAlpha,
	ModeRGBX,
	ModeYCbCr,
	ModeGray16,
}

var bytesPerPixel = map[string]int{
	ModeBilevel:   1,
	ModeGray:      1,
	ModePalette:   1,
	ModeRGB:       3,
	ModeRGBA:      4,
	ModeCMYK:      4,
	ModeInt32:     4,
	ModeFloat32:   4,
	ModeGrayAlpha: 2,
	ModeRGBX:      4,
	ModeYCbCr:     3,
	ModeGray16:    2,
}

var modeCodes = func() map[string]byte {
	m := make(map[string]byte, len(modes))
	for i, name := range modes {
		m[name] = byte(i)
	}
	return m
}()

// Modes returns the registered mode names in code order.
func Modes() []string {
	out := make([]string, len(modes))
	copy(out, modes[:])
	return out
}

// ModeCode returns the code stored in the header for a mode name.
func ModeCode(name string) (byte, error) {
	code, ok := modeCodes[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedMode, name)
	}

	return code, nil
}

// ModeName resolves a header mode code.
func ModeName(code byte) (string, error) {
	if int(code) >= len(modes) {
		return "", fmt.Errorf("%w: %d (registry has %d modes)", ErrInvalidModeCode, code, len(modes))
	}

	return modes[code], nil
}

// BytesPerPixel returns the canonical pixel width of a mode in bytes.
func BytesPerPixel(name string) (int, error) {
	n, ok := bytesPerPixel[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedMode, name)
	}

	return n, nil
}
