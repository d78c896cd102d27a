package dln

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/disintegration/imaging"
)

func init() {
	image.RegisterFormat("dln", Magic, decodeImage, DecodeConfig)
}

// decodeImage is the image.Decode hook.
func decodeImage(r io.Reader) (image.Image, error) {
	img, err := Load(r)
	if err != nil {
		return nil, err
	}

	return img.ToImage()
}

// DecodeConfig returns the dimensions and color model of a DLN stream
// from its header alone. Modes ToImage cannot convert are rejected here
// too, so DecodeConfig succeeds exactly when decoding can.
func DecodeConfig(r io.Reader) (image.Config, error) {
	h, err := ReadHeader(r)
	if err != nil {
		return image.Config{}, err
	}
	if h.Mode == ModeInt32 || h.Mode == ModeFloat32 {
		return image.Config{}, fmt.Errorf("%w: mode %q", ErrUnsupportedImage, h.Mode)
	}

	return image.Config{
		ColorModel: colorModel(h.Mode),
		Width:      h.Width,
		Height:     h.Height,
	}, nil
}

// grayPalette stands in for palettes, which DLN does not store.
var grayPalette = func() color.Palette {
	p := make(color.Palette, 256)
	for i := range p {
		p[i] = color.Gray{Y: uint8(i)}
	}
	return p
}()

func colorModel(mode string) color.Model {
	switch mode {
	case ModeBilevel, ModeGray:
		return color.GrayModel
	case ModePalette:
		return grayPalette
	case ModeGray16:
		return color.Gray16Model
	case ModeCMYK:
		return color.CMYKModel
	default:
		return color.NRGBAModel
	}
}

// FromImage converts a decoded image into raw DLN form. Gray, Gray16 and
// CMYK images keep their channels; everything else becomes RGB when opaque
// and RGBA otherwise.
func FromImage(m image.Image) (*Image, error) {
	b := m.Bounds()
	w, h := b.Dx(), b.Dy()

	switch src := m.(type) {
	case *image.Gray:
		pix := make([]byte, 0, w*h)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			i := src.PixOffset(b.Min.X, y)
			pix = append(pix, src.Pix[i:i+w]...)
		}
		return &Image{Width: w, Height: h, Mode: ModeGray, Pix: pix}, nil

	case *image.Gray16:
		pix := make([]byte, 0, w*h*2)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			i := src.PixOffset(b.Min.X, y)
			row := src.Pix[i : i+w*2]
			for x := 0; x < len(row); x += 2 {
				pix = append(pix, row[x+1], row[x])
			}
		}
		return &Image{Width: w, Height: h, Mode: ModeGray16, Pix: pix}, nil

	case *image.CMYK:
		pix := make([]byte, 0, w*h*4)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			i := src.PixOffset(b.Min.X, y)
			pix = append(pix, src.Pix[i:i+w*4]...)
		}
		return &Image{Width: w, Height: h, Mode: ModeCMYK, Pix: pix}, nil
	}

	n := imaging.Clone(m)
	if n.Opaque() {
		pix := make([]byte, 0, w*h*3)
		for i := 0; i+3 < len(n.Pix); i += 4 {
			pix = append(pix, n.Pix[i], n.Pix[i+1], n.Pix[i+2])
		}
		return &Image{Width: w, Height: h, Mode: ModeRGB, Pix: pix}, nil
	}

	return &Image{Width: w, Height: h, Mode: ModeRGBA, Pix: n.Pix}, nil
}

// ToImage converts raw DLN pixels into a standard library image.
// Modes I and F have no standard image type and are rejected.
func (img *Image) ToImage() (image.Image, error) {
	if err := checkPixelLength(img.Width, img.Height, img.Mode, img.Pix); err != nil {
		return nil, err
	}

	r := image.Rect(0, 0, img.Width, img.Height)
	src := img.Pix

	switch img.Mode {
	case ModeGray:
		dst := image.NewGray(r)
		copy(dst.Pix, src)
		return dst, nil

	case ModeBilevel:
		dst := image.NewGray(r)
		for i, v := range src {
			if v != 0 {
				dst.Pix[i] = 0xff
			}
		}
		return dst, nil

	case ModePalette:
		dst := image.NewPaletted(r, grayPalette)
		copy(dst.Pix, src)
		return dst, nil

	case ModeGray16:
		dst := image.NewGray16(r)
		for i := 0; i+1 < len(src); i += 2 {
			dst.Pix[i], dst.Pix[i+1] = src[i+1], src[i]
		}
		return dst, nil

	case ModeCMYK:
		dst := image.NewCMYK(r)
		copy(dst.Pix, src)
		return dst, nil

	case ModeRGBA:
		dst := image.NewNRGBA(r)
		copy(dst.Pix, src)
		return dst, nil

	case ModeRGB:
		dst := image.NewNRGBA(r)
		for i, j := 0, 0; i+2 < len(src); i, j = i+3, j+4 {
			dst.Pix[j], dst.Pix[j+1], dst.Pix[j+2], dst.Pix[j+3] = src[i], src[i+1], src[i+2], 0xff
		}
		return dst, nil

	case ModeRGBX:
		dst := image.NewNRGBA(r)
		for i := 0; i+3 < len(src); i += 4 {
			dst.Pix[i], dst.Pix[i+1], dst.Pix[i+2], dst.Pix[i+3] = src[i], src[i+1], src[i+2], 0xff
		}
		return dst, nil

	case ModeGrayAlpha:
		dst := image.NewNRGBA(r)
		for i, j := 0, 0; i+1 < len(src); i, j = i+2, j+4 {
			dst.Pix[j], dst.Pix[j+1], dst.Pix[j+2], dst.Pix[j+3] = src[i], src[i], src[i], src[i+1]
		}
		return dst, nil

	case ModeYCbCr:
		dst := image.NewNRGBA(r)
		for i, j := 0, 0; i+2 < len(src); i, j = i+3, j+4 {
			cr, cg, cb := color.YCbCrToRGB(src[i], src[i+1], src[i+2])
			dst.Pix[j], dst.Pix[j+1], dst.Pix[j+2], dst.Pix[j+3] = cr, cg, cb, 0xff
		}
		return dst, nil
	}

	return nil, fmt.Errorf("%w: mode %q", ErrUnsupportedImage, img.Mode)
}
