package dln

import (
	"sync"

	"github.com/klauspost/compress/zstd"
)

// ZstdCompressor compresses sections as single Zstandard frames.
// Encoders and decoders are pooled, so one value may serve many goroutines.
type ZstdCompressor struct {
	encPool sync.Pool
	decPool sync.Pool
}

// NewZstdCompressor returns a Zstandard compressor at the given level.
func NewZstdCompressor(level zstd.EncoderLevel) *ZstdCompressor {
	c := &ZstdCompressor{}
	c.encPool.New = func() any {
		return mustNewZstdEncoder(level)
	}
	c.decPool.New = func() any {
		return mustNewZstdDecoder()
	}

	return c
}

func mustNewZstdEncoder(level zstd.EncoderLevel) *zstd.Encoder {
	enc, err := zstd.NewWriter(
		nil,
		zstd.WithEncoderConcurrency(1),
		zstd.WithEncoderLevel(level),
	)
	if err != nil {
		panic(err)
	}
	return enc
}

func mustNewZstdDecoder() *zstd.Decoder {
	dec, err := zstd.NewReader(
		nil,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderLowmem(true),
	)
	if err != nil {
		panic(err)
	}
	return dec
}

// Compress encodes src as one Zstandard frame.
func (c *ZstdCompressor) Compress(src []byte) ([]byte, error) {
	enc := c.encPool.Get().(*zstd.Encoder)
	out := enc.EncodeAll(src, nil)
	c.encPool.Put(enc)
	return out, nil
}

// Decompress decodes all Zstandard frames in src.
func (c *ZstdCompressor) Decompress(src []byte) ([]byte, error) {
	dec := c.decPool.Get().(*zstd.Decoder)
	out, err := dec.DecodeAll(src, nil)
	c.decPool.Put(dec)
	return out, err
}

var defaultCompressor = NewZstdCompressor(zstd.SpeedDefault)

// DefaultCompressor returns the shared Zstandard compressor used when
// options leave Compressor unset.
func DefaultCompressor() Compressor {
	return defaultCompressor
}
