// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dln

package dln

const maxInt = int(^uint(0) >> 1)

// intFromUint64 converts a decoded field value to an int.
func intFromUint64(v uint64) (int, error) {
	if v > uint64(maxInt) {
		return 0, ErrSizeOverflow
	}

	// #nosec G115 -- bounds checked above.
	return int(v), nil
}

// pixelLength returns width*height*bpp, failing on overflow.
func pixelLength(width, height, bpp int) (int, error) {
	if width < 0 || height < 0 {
		return 0, ErrNegativeDimension
	}
	if width == 0 || height == 0 {
		return 0, nil
	}
	if height > maxInt/width || bpp > maxInt/(width*height) {
		return 0, ErrSizeOverflow
	}

	return width * height * bpp, nil
}

const maxUint32 = uint64(^uint32(0))

// u32FromInt converts an int to a uint32.
func u32FromInt(n int) (uint32, error) {
	if n < 0 || uint64(n) > maxUint32 {
		return 0, ErrSizeOverflow
	}

	// #nosec G115 -- bounds checked above.
	return uint32(n), nil
}
