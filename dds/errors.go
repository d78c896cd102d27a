package dds

import "errors"

var (
	// ErrInvalidFormat indicates unsupported format.
	ErrInvalidFormat = errors.New("invalid format")
	// ErrUnknownFormat indicates a DDS pixel format this package cannot decode.
	ErrUnknownFormat = errors.New("unknown format")
	// ErrInvalidSize indicates zero or oversized image dimensions.
	ErrInvalidSize = errors.New("invalid image size")
	// ErrDDSHeaderRead indicates DDS header read failed.
	ErrDDSHeaderRead = errors.New("reading DDS header failed")
	// ErrDDSDX10Read indicates DDS DX10 header read failed.
	ErrDDSDX10Read = errors.New("reading DDS DX10 header failed")
	// ErrReadSurface indicates reading the top-level surface failed.
	ErrReadSurface = errors.New("reading surface data failed")
	// ErrDecodeImage indicates image decode failed.
	ErrDecodeImage = errors.New("decode image failed")
	// ErrEncodeMipmap indicates encoding a mip level failed.
	ErrEncodeMipmap = errors.New("encode mipmap failed")
	// ErrMipmapSizeMismatch indicates an encoded mip level has an unexpected size.
	ErrMipmapSizeMismatch = errors.New("mipmap size mismatch")
	// ErrWriteDDSMagic indicates DDS magic write failed.
	ErrWriteDDSMagic = errors.New("writing DDS magic failed")
	// ErrWriteDDSHeader indicates DDS header write failed.
	ErrWriteDDSHeader = errors.New("writing DDS header failed")
	// ErrWriteSurface indicates writing mip level data failed.
	ErrWriteSurface = errors.New("writing surface data failed")
)
