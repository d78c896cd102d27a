package dln

import "errors"

var (
	// ErrInvalidMagic indicates the data does not start with the DLN magic.
	ErrInvalidMagic = errors.New("invalid DLN file format")
	// ErrVersionMismatch indicates the version byte differs from Version.
	ErrVersionMismatch = errors.New("invalid DLN file version")
	// ErrEmptyField indicates a hex field without a single digit.
	ErrEmptyField = errors.New("empty hex field")
	// ErrTruncated indicates the data ends inside the header or metadata.
	ErrTruncated = errors.New("truncated DLN data")
	// ErrSizeOverflow indicates a size or dimension exceeds supported limits.
	ErrSizeOverflow = errors.New("size overflow")
	// ErrUnsupportedMode indicates a pixel mode name missing from the registry.
	ErrUnsupportedMode = errors.New("unsupported mode")
	// ErrInvalidModeCode indicates a mode code outside the registry.
	ErrInvalidModeCode = errors.New("invalid mode code")
	// ErrInvalidPassCount indicates a pass count above its section limit.
	ErrInvalidPassCount = errors.New("invalid pass count")
	// ErrPixelLengthMismatch indicates pixel data does not match width*height*bytes per pixel.
	ErrPixelLengthMismatch = errors.New("pixel length mismatch")
	// ErrNegativeDimension indicates a negative width or height.
	ErrNegativeDimension = errors.New("negative dimension")
	// ErrMetadataEncode indicates metadata serialization failed.
	ErrMetadataEncode = errors.New("encode metadata failed")
	// ErrMetadataDecode indicates metadata deserialization failed.
	ErrMetadataDecode = errors.New("decode metadata failed")
	// ErrCompress indicates a section compression pass failed.
	ErrCompress = errors.New("compress section failed")
	// ErrUnsupportedImage indicates an image type or mode without a conversion.
	ErrUnsupportedImage = errors.New("unsupported image")
	// ErrOpenFile indicates DLN file open failed.
	ErrOpenFile = errors.New("open file failed")
	// ErrCreateFile indicates DLN file creation failed.
	ErrCreateFile = errors.New("create file failed")
	// ErrReadData indicates reading DLN data from a source failed.
	ErrReadData = errors.New("reading DLN data failed")
	// ErrWriteData indicates writing DLN data to a sink failed.
	ErrWriteData = errors.New("writing DLN data failed")
	// ErrLZ4Compress indicates LZ4 compression failed.
	ErrLZ4Compress = errors.New("LZ4 compression failed")
	// ErrLZ4Decode indicates LZ4 decode failed.
	ErrLZ4Decode = errors.New("LZ4 decode failed")
	// ErrUnknownBlockMagic indicates an unknown LZ4 section block magic.
	ErrUnknownBlockMagic = errors.New("unknown block magic")
	// ErrBlockTruncated indicates an LZ4 section block shorter than its header.
	ErrBlockTruncated = errors.New("block truncated")
	// ErrInvalidBlockSize indicates an LZ4 block header claiming more output
	// than its body can expand to.
	ErrInvalidBlockSize = errors.New("invalid block size")
	// ErrDecodedSizeMismatch indicates an LZ4 block decoded to an unexpected size.
	ErrDecodedSizeMismatch = errors.New("LZ4 decoded size mismatch")
)
