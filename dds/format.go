package dds

import (
	"fmt"

	"github.com/woozymasta/bcn"
)

// fourCCFormats maps FourCC codes to the block formats they store.
var fourCCFormats = map[string]bcn.Format{
	"DXT1": bcn.FormatDXT1,
	"DXT2": bcn.FormatDXT3,
	"DXT3": bcn.FormatDXT3,
	"DXT4": bcn.FormatDXT5,
	"DXT5": bcn.FormatDXT5,
	"ATI1": bcn.FormatBC4,
	"BC4U": bcn.FormatBC4,
	"BC4S": bcn.FormatBC4,
	"ATI2": bcn.FormatBC5,
	"BC5U": bcn.FormatBC5,
	"BC5S": bcn.FormatBC5,
}

// dxgiFormats maps DX10 DXGI_FORMAT values to block formats.
var dxgiFormats = map[uint32]bcn.Format{
	28: bcn.FormatRGBA8,
	71: bcn.FormatDXT1,
	74: bcn.FormatDXT3,
	77: bcn.FormatDXT5,
	80: bcn.FormatBC4,
	83: bcn.FormatBC5,
	87: bcn.FormatBGRA8,
}

// blockFourCC is the FourCC written for each block format.
var blockFourCC = map[bcn.Format]string{
	bcn.FormatDXT1: "DXT1",
	bcn.FormatDXT3: "DXT3",
	bcn.FormatDXT5: "DXT5",
	bcn.FormatBC4:  "ATI1",
	bcn.FormatBC5:  "ATI2",
}

// surfaceFormat resolves the pixel layout declared by a DDS header.
// The second result names the source of the decision for error messages.
func surfaceFormat(header *bcn.DDSHeader, dx10 *bcn.DDSHeaderDX10) (bcn.Format, string) {
	if dx10 != nil {
		if f, ok := dxgiFormats[dx10.DXGIFormat]; ok {
			return f, fmt.Sprintf("DXGI %d", dx10.DXGIFormat)
		}
		return bcn.FormatUnknown, fmt.Sprintf("DXGI %d", dx10.DXGIFormat)
	}

	pf := header.PixelFormat
	switch {
	case pf.Flags&bcn.DDSPFFourCC != 0:
		code := fourCCString(pf.FourCC)
		if f, ok := fourCCFormats[code]; ok {
			return f, code
		}
		return bcn.FormatUnknown, code

	case pf.Flags&bcn.DDSPFRGB != 0 && pf.Flags&bcn.DDSPFAlphaPixels != 0 && pf.RGBBitCount == 32:
		if pf.ABitMask != 0xff000000 || pf.GBitMask != 0x0000ff00 {
			break
		}
		switch {
		case pf.RBitMask == 0x000000ff && pf.BBitMask == 0x00ff0000:
			return bcn.FormatRGBA8, "RGBA8"
		case pf.RBitMask == 0x00ff0000 && pf.BBitMask == 0x000000ff:
			return bcn.FormatBGRA8, "BGRA8"
		}

	case pf.Flags&bcn.DDSPFLuminance != 0 && pf.RGBBitCount == 8:
		return bcn.FormatRGBA8, "LUMINANCE8"
	}

	return bcn.FormatUnknown, "UNKNOWN"
}

func fourCCString(v uint32) string {
	return string([]byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)})
}

func fourCC(code string) uint32 {
	return uint32(code[0]) | uint32(code[1])<<8 | uint32(code[2])<<16 | uint32(code[3])<<24
}

// surfaceSize returns the byte size of one surface, or -1 for unknown formats.
func surfaceSize(format bcn.Format, width, height int) int {
	blocks := ((width + 3) / 4) * ((height + 3) / 4)
	switch format {
	case bcn.FormatDXT1, bcn.FormatBC4:
		return blocks * 8
	case bcn.FormatDXT3, bcn.FormatDXT5, bcn.FormatBC5:
		return blocks * 16
	case bcn.FormatRGBA8, bcn.FormatBGRA8:
		return width * height * 4
	default:
		return -1
	}
}

// newHeader builds a DDS header for a surface chain of mipMapCount levels.
func newHeader(width, height, mipMapCount uint32, format bcn.Format) (*bcn.DDSHeader, error) {
	hdr := &bcn.DDSHeader{
		Size:        bcn.DDSHeaderSize,
		Flags:       uint32(bcn.DDSFlagCaps | bcn.DDSFlagHeight | bcn.DDSFlagWidth | bcn.DDSFlagPixelFormat),
		Height:      height,
		Width:       width,
		Depth:       1,
		MipMapCount: mipMapCount,
		Caps:        uint32(bcn.DDSCapsTexture),
	}
	hdr.PixelFormat.Size = bcn.DDSPixelFormatSize
	if mipMapCount > 1 {
		hdr.Flags |= bcn.DDSFlagMipmapCount
		hdr.Caps |= bcn.DDSCapsComplex | bcn.DDSCapsMipmap
	}

	if code, ok := blockFourCC[format]; ok {
		hdr.Flags |= bcn.DDSFlagLinearSize
		hdr.PixelFormat.Flags = bcn.DDSPFFourCC
		hdr.PixelFormat.FourCC = fourCC(code)
		// #nosec G115 -- block surfaces are smaller than the RGBA8 surface.
		hdr.PitchOrLinearSize = uint32(surfaceSize(format, int(width), int(height)))
		return hdr, nil
	}

	switch format {
	case bcn.FormatRGBA8:
		hdr.PixelFormat.RBitMask = 0x000000ff
		hdr.PixelFormat.BBitMask = 0x00ff0000
	case bcn.FormatBGRA8:
		hdr.PixelFormat.RBitMask = 0x00ff0000
		hdr.PixelFormat.BBitMask = 0x000000ff
	default:
		return nil, ErrInvalidFormat
	}
	hdr.Flags |= bcn.DDSFlagPitch
	hdr.PixelFormat.Flags = bcn.DDSPFRGB | bcn.DDSPFAlphaPixels
	hdr.PixelFormat.RGBBitCount = 32
	hdr.PixelFormat.GBitMask = 0x0000ff00
	hdr.PixelFormat.ABitMask = 0xff000000
	hdr.PitchOrLinearSize = width * 4

	return hdr, nil
}
