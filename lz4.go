package dln

import (
	"encoding/binary"
	"fmt"

	"github.com/pierrec/lz4/v4"
)

const (
	// BlockMagicCOPY marks an LZ4 section block stored uncompressed.
	BlockMagicCOPY = "COPY"
	// BlockMagicLZ4 marks an LZ4-compressed section block.
	BlockMagicLZ4 = "LZ4 "

	// magic(4) + uncompressed size(4, little endian)
	lz4BlockHeaderSize = 8

	// one LZ4 input byte expands to at most 255 output bytes
	lz4MaxRatio = 255
)

// LZ4Compressor compresses sections as a single LZ4 HC block behind a
// small header. Input that LZ4 cannot shrink is stored as a COPY block,
// which is always larger than the input and so ends the pass loop.
type LZ4Compressor struct {
	// Level is the HC search depth; zero selects the library default.
	Level lz4.CompressionLevel
}

// Compress encodes src into one block.
func (c LZ4Compressor) Compress(src []byte) ([]byte, error) {
	size, err := u32FromInt(len(src))
	if err != nil {
		return nil, fmt.Errorf("%w: %d bytes", err, len(src))
	}

	buf := make([]byte, lz4BlockHeaderSize+lz4.CompressBlockBound(len(src)))
	n, err := lz4.CompressBlockHC(src, buf[lz4BlockHeaderSize:], c.Level, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLZ4Compress, err)
	}

	if n == 0 || n >= len(src) {
		out := make([]byte, lz4BlockHeaderSize+len(src))
		copy(out, BlockMagicCOPY)
		binary.LittleEndian.PutUint32(out[4:], size)
		copy(out[lz4BlockHeaderSize:], src)
		return out, nil
	}

	copy(buf, BlockMagicLZ4)
	binary.LittleEndian.PutUint32(buf[4:], size)
	return buf[:lz4BlockHeaderSize+n], nil
}

// Decompress inflates a block produced by Compress.
func (c LZ4Compressor) Decompress(src []byte) ([]byte, error) {
	if len(src) < lz4BlockHeaderSize {
		return nil, fmt.Errorf("%w: need %d bytes header, have %d", ErrBlockTruncated, lz4BlockHeaderSize, len(src))
	}

	magic := string(src[:4])
	size := int(binary.LittleEndian.Uint32(src[4:lz4BlockHeaderSize]))
	body := src[lz4BlockHeaderSize:]

	switch magic {
	case BlockMagicCOPY:
		if len(body) != size {
			return nil, fmt.Errorf("%w: expected %d, got %d", ErrDecodedSizeMismatch, size, len(body))
		}
		out := make([]byte, size)
		copy(out, body)
		return out, nil

	case BlockMagicLZ4:
		if size > lz4MaxRatio*len(body)+16 {
			return nil, fmt.Errorf("%w: %d bytes claimed from %d byte block", ErrInvalidBlockSize, size, len(body))
		}
		out := make([]byte, size)
		n, err := lz4.UncompressBlock(body, out)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLZ4Decode, err)
		}
		if n != size {
			return nil, fmt.Errorf("%w: expected %d, got %d", ErrDecodedSizeMismatch, size, n)
		}
		return out, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBlockMagic, magic)
	}
}
