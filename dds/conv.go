// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dln

package dds

const maxUint32 = uint64(^uint32(0))

// u32FromInt converts an image dimension to a uint32.
func u32FromInt(n int) (uint32, error) {
	if n <= 0 || uint64(n) > maxUint32 {
		return 0, ErrInvalidSize
	}

	// #nosec G115 -- bounds checked above.
	return uint32(n), nil
}
