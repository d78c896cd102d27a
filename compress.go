package dln

import "fmt"

const (
	// MaxMetadataPasses bounds compression passes over the metadata section.
	MaxMetadataPasses = 2
	// MaxPixelPasses bounds compression passes over the pixel section.
	MaxPixelPasses = 15
)

// Compressor is a whole-buffer compressor. Decompress must fully reverse
// the most recent Compress that produced its input.
// Implementations must be safe for concurrent use.
type Compressor interface {
	Compress(src []byte) ([]byte, error)
	Decompress(src []byte) ([]byte, error)
}

// passStrategy is the greedy section policy: a pass is kept only when it
// makes the buffer strictly smaller, and the first rejected pass ends the loop.
type passStrategy struct {
	c Compressor
}

// attemptNextPass compresses cur once and reports whether the result shrank.
func (s passStrategy) attemptNextPass(cur []byte) ([]byte, bool, error) {
	if len(cur) == 0 {
		return nil, false, nil
	}

	out, err := s.c.Compress(cur)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrCompress, err)
	}
	if len(out) >= len(cur) {
		return nil, false, nil
	}

	return out, true, nil
}

// compressSection runs up to maxPasses cascading passes over data and
// returns the final buffer with the number of accepted passes.
func compressSection(c Compressor, data []byte, maxPasses int) ([]byte, int, error) {
	s := passStrategy{c: c}
	cur := data
	passes := 0
	for passes < maxPasses {
		next, ok, err := s.attemptNextPass(cur)
		if err != nil {
			return nil, 0, err
		}
		if !ok {
			break
		}
		cur = next
		passes++
	}

	return cur, passes, nil
}

// decompressSection applies Decompress exactly passes times. Compressor
// errors are returned as is.
func decompressSection(c Compressor, data []byte, passes int) ([]byte, error) {
	cur := data
	for i := 0; i < passes; i++ {
		out, err := c.Decompress(cur)
		if err != nil {
			return nil, err
		}
		cur = out
	}

	return cur, nil
}
