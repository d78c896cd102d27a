package dln

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// Image is the raw form of a DLN image: pixels packed row by row in the
// layout of Mode with no row padding, plus its metadata.
type Image struct {
	Width    int
	Height   int
	Mode     string
	Pix      []byte
	Metadata Metadata
}

// EncodeOptions configures DLN encoding.
type EncodeOptions struct {
	// Compressor is applied to both sections. Nil selects DefaultCompressor.
	Compressor Compressor
	// MetadataCodec serializes Image.Metadata. Nil selects CBORCodec.
	MetadataCodec MetadataCodec
	// Store disables compression; both sections are written as is.
	Store bool
	// CheckPixelLength rejects images whose Pix length differs from
	// Width*Height*BytesPerPixel(Mode).
	CheckPixelLength bool
}

// DecodeOptions configures DLN decoding.
type DecodeOptions struct {
	// Compressor must match the one used for encoding. Nil selects DefaultCompressor.
	Compressor Compressor
	// MetadataCodec must match the one used for encoding. Nil selects CBORCodec.
	MetadataCodec MetadataCodec
	// CheckPixelLength verifies the decoded pixel section against
	// Width*Height*BytesPerPixel(Mode). Off by default: the pixel bytes are
	// returned as stored.
	CheckPixelLength bool
}

func (o *EncodeOptions) compressor() Compressor {
	if o == nil || o.Compressor == nil {
		return defaultCompressor
	}
	return o.Compressor
}

func (o *EncodeOptions) metadataCodec() MetadataCodec {
	if o == nil || o.MetadataCodec == nil {
		return CBORCodec{}
	}
	return o.MetadataCodec
}

func (o *DecodeOptions) compressor() Compressor {
	if o == nil || o.Compressor == nil {
		return defaultCompressor
	}
	return o.Compressor
}

func (o *DecodeOptions) metadataCodec() MetadataCodec {
	if o == nil || o.MetadataCodec == nil {
		return CBORCodec{}
	}
	return o.MetadataCodec
}

// checkPixelLength compares a pixel buffer with the size implied by the mode.
func checkPixelLength(width, height int, mode string, pix []byte) error {
	bpp, err := BytesPerPixel(mode)
	if err != nil {
		return err
	}
	want, err := pixelLength(width, height, bpp)
	if err != nil {
		return err
	}
	if len(pix) != want {
		return fmt.Errorf("%w: %s %dx%d expects %d bytes, got %d", ErrPixelLengthMismatch, mode, width, height, want, len(pix))
	}

	return nil
}

// Encode encodes img into DLN bytes with default options.
func Encode(img *Image) ([]byte, error) {
	return EncodeWithOptions(img, nil)
}

// EncodeWithOptions encodes img into DLN bytes.
// Nil opts uses the Zstandard compressor and CBOR metadata.
func EncodeWithOptions(img *Image, opts *EncodeOptions) ([]byte, error) {
	if _, err := ModeCode(img.Mode); err != nil {
		return nil, err
	}
	if img.Width < 0 || img.Height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrNegativeDimension, img.Width, img.Height)
	}
	if opts != nil && opts.CheckPixelLength {
		if err := checkPixelLength(img.Width, img.Height, img.Mode, img.Pix); err != nil {
			return nil, err
		}
	}

	meta, err := opts.metadataCodec().MarshalMetadata(img.Metadata)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMetadataEncode, err)
	}

	metaMax, pixMax := MaxMetadataPasses, MaxPixelPasses
	if opts != nil && opts.Store {
		metaMax, pixMax = 0, 0
	}

	c := opts.compressor()
	meta, metaPasses, err := compressSection(c, meta, metaMax)
	if err != nil {
		return nil, fmt.Errorf("metadata: %w", err)
	}
	pix, pixPasses, err := compressSection(c, img.Pix, pixMax)
	if err != nil {
		return nil, fmt.Errorf("pixels: %w", err)
	}

	h := Header{
		Width:       img.Width,
		Height:      img.Height,
		Mode:        img.Mode,
		MetaPasses:  metaPasses,
		PixelPasses: pixPasses,
		MetaLength:  len(meta),
		Version:     Version,
	}

	out := make([]byte, 0, maxHeaderSize+len(meta)+len(pix))
	out, err = h.AppendHeader(out)
	if err != nil {
		return nil, err
	}
	out = append(out, meta...)
	out = append(out, pix...)

	return out, nil
}

// Decode decodes DLN bytes with default options.
func Decode(data []byte) (*Image, error) {
	return DecodeWithOptions(data, nil)
}

// DecodeWithOptions decodes DLN bytes. Nil opts uses the defaults.
func DecodeWithOptions(data []byte, opts *DecodeOptions) (*Image, error) {
	h, off, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}
	metaSection, pixSection, err := splitSections(data, h, off)
	if err != nil {
		return nil, err
	}

	c := opts.compressor()
	meta, err := decompressSection(c, metaSection, h.MetaPasses)
	if err != nil {
		return nil, err
	}
	pix, err := decompressSection(c, pixSection, h.PixelPasses)
	if err != nil {
		return nil, err
	}
	if opts != nil && opts.CheckPixelLength {
		if err := checkPixelLength(h.Width, h.Height, h.Mode, pix); err != nil {
			return nil, err
		}
	}

	md, err := opts.metadataCodec().UnmarshalMetadata(meta)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMetadataDecode, err)
	}

	// sections with zero passes alias data; the caller owns the result
	if h.PixelPasses == 0 {
		pix = bytes.Clone(pix)
	}

	return &Image{
		Width:    h.Width,
		Height:   h.Height,
		Mode:     h.Mode,
		Pix:      pix,
		Metadata: md,
	}, nil
}

// Dump encodes img and writes it to w.
func Dump(w io.Writer, img *Image) error {
	return DumpWithOptions(w, img, nil)
}

// DumpWithOptions encodes img with opts and writes it to w.
func DumpWithOptions(w io.Writer, img *Image, opts *EncodeOptions) error {
	data, err := EncodeWithOptions(img, opts)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteData, err)
	}

	return nil
}

// Load reads all of r and decodes it.
func Load(r io.Reader) (*Image, error) {
	return LoadWithOptions(r, nil)
}

// LoadWithOptions reads all of r and decodes it with opts.
func LoadWithOptions(r io.Reader, opts *DecodeOptions) (*Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadData, err)
	}

	return DecodeWithOptions(data, opts)
}

// Write writes img as a DLN file.
func Write(img *Image, path string) error {
	return WriteWithOptions(img, path, nil)
}

// WriteWithOptions writes img as a DLN file encoded with opts.
// Nothing is created when encoding fails.
func WriteWithOptions(img *Image, path string, opts *EncodeOptions) error {
	data, err := EncodeWithOptions(img, opts)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrCreateFile, path, err)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrWriteData, path, err)
	}

	return f.Close()
}

// Read reads and decodes a DLN file.
func Read(path string) (*Image, error) {
	return ReadWithOptions(path, nil)
}

// ReadWithOptions reads and decodes a DLN file with opts.
func ReadWithOptions(path string, opts *DecodeOptions) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrOpenFile, path, err)
	}
	defer func() { _ = f.Close() }()

	return LoadWithOptions(f, opts)
}

// ReadConfig reads the header of a DLN file without decoding its sections.
func ReadConfig(path string) (Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return Header{}, fmt.Errorf("%w: %q: %v", ErrOpenFile, path, err)
	}
	defer func() { _ = f.Close() }()

	return ReadHeader(f)
}
