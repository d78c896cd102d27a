package dds

import (
	"fmt"
	"image"
	"io"

	"github.com/woozymasta/bcn"
)

// WriteOptions configures DDS writing.
type WriteOptions struct {
	// Format is the surface layout. FormatUnknown selects BGRA8.
	Format bcn.Format
	// MaxMipMaps limits the mip chain; 0 writes the full chain.
	MaxMipMaps int
	// EncodeOptions are passed to the BCn encoder (e.g. QualityLevel).
	EncodeOptions *bcn.EncodeOptions
}

// Write encodes img as an uncompressed BGRA8 DDS with a full mip chain.
func Write(w io.Writer, img image.Image) error {
	return WriteWithOptions(w, img, nil)
}

// WriteWithOptions encodes img as a DDS stream. Nil opts is the same as Write.
func WriteWithOptions(w io.Writer, img image.Image, opts *WriteOptions) error {
	format := bcn.FormatBGRA8
	maxMips := 0
	var encOpts *bcn.EncodeOptions
	if opts != nil {
		if opts.Format != bcn.FormatUnknown {
			format = opts.Format
		}
		maxMips = opts.MaxMipMaps
		encOpts = opts.EncodeOptions
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	w32, err := u32FromInt(width)
	if err != nil {
		return fmt.Errorf("%w: %dx%d", err, width, height)
	}
	h32, err := u32FromInt(height)
	if err != nil {
		return fmt.Errorf("%w: %dx%d", err, width, height)
	}

	levels := mipLevels(width, height)
	if maxMips > 0 && maxMips < levels {
		levels = maxMips
	}

	mips := bcn.GenerateMipmaps(img, false)
	if len(mips) > levels {
		mips = mips[:levels]
	}

	payloads := make([][]byte, len(mips))
	for i, mip := range mips {
		data, _, _, err := bcn.EncodeImageWithOptions(mip, format, encOpts)
		if err != nil {
			return fmt.Errorf("%w: mipmap %d: %v", ErrEncodeMipmap, i, err)
		}
		want := surfaceSize(format, mipDimension(width, i), mipDimension(height, i))
		if len(data) != want {
			return fmt.Errorf("%w: mipmap %d: expected %d, got %d", ErrMipmapSizeMismatch, i, want, len(data))
		}
		payloads[i] = data
	}

	// #nosec G115 -- at most maxMipLevels entries.
	header, err := newHeader(w32, h32, uint32(len(payloads)), format)
	if err != nil {
		return err
	}

	if err := bcn.WriteDDSMagic(w); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteDDSMagic, err)
	}
	if err := bcn.WriteDDSHeader(w, header); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteDDSHeader, err)
	}
	for i, data := range payloads {
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("%w: mipmap %d: %v", ErrWriteSurface, i, err)
		}
	}

	return nil
}
