package dds

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/woozymasta/bcn"
)

// ReadOptions configures DDS reading.
type ReadOptions struct {
	// DecodeOptions are passed to the BCn decoder (e.g. Workers).
	DecodeOptions *bcn.DecodeOptions
}

// DecodeConfig reads the DDS header from r.
func DecodeConfig(r io.Reader) (image.Config, error) {
	header, _, err := readHeaders(r)
	if err != nil {
		return image.Config{}, err
	}

	return image.Config{
		Width:      int(header.Width),
		Height:     int(header.Height),
		ColorModel: color.NRGBAModel,
	}, nil
}

// Read decodes the largest surface of a DDS stream.
func Read(r io.Reader) (image.Image, error) {
	return ReadWithOptions(r, nil)
}

// ReadWithOptions decodes the largest surface of a DDS stream.
// Smaller mip levels after it are left unread.
func ReadWithOptions(r io.Reader, opts *ReadOptions) (image.Image, error) {
	header, dx10, err := readHeaders(r)
	if err != nil {
		return nil, err
	}

	format, source := surfaceFormat(header, dx10)
	width, height := int(header.Width), int(header.Height)
	size := surfaceSize(format, width, height)
	if size < 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, source)
	}

	data := make([]byte, size)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadSurface, err)
	}

	var decOpts *bcn.DecodeOptions
	if opts != nil {
		decOpts = opts.DecodeOptions
	}
	img, err := bcn.DecodeImageWithOptions(data, width, height, format, decOpts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeImage, err)
	}

	return img, nil
}

// readHeaders reads the DDS magic, header and optional DX10 header.
func readHeaders(r io.Reader) (*bcn.DDSHeader, *bcn.DDSHeaderDX10, error) {
	header, err := bcn.ReadDDSHeader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrDDSHeaderRead, err)
	}

	dx10, err := bcn.ReadDDSHeaderDX10(r, header)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrDDSDX10Read, err)
	}

	return header, dx10, nil
}
