package dds

// maxMipLevels caps generated chains; 11 levels cover a 1024 pixel edge.
const maxMipLevels = 11

// mipLevels returns the length of a full mip chain for width x height.
func mipLevels(width, height int) int {
	count := 1
	for width > 1 || height > 1 {
		count++
		width = max(width/2, 1)
		height = max(height/2, 1)
	}

	return min(count, maxMipLevels)
}

// mipDimension returns the edge length of a mip level, never below 1.
func mipDimension(base, level int) int {
	return max(base>>level, 1)
}
