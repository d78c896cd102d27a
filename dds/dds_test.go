package dds

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/woozymasta/bcn"
)

func testImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{
				R: uint8(x * 20), //nolint:gosec // bounded
				G: uint8(y * 20), //nolint:gosec // bounded
				B: 90,
				A: 255,
			})
		}
	}
	return img
}

func TestWriteReadBGRA8(t *testing.T) {
	t.Parallel()

	img := testImage(8, 8)

	var buf bytes.Buffer
	if err := Write(&buf, img); err != nil {
		t.Fatalf("Write: %v", err)
	}

	cfg, err := DecodeConfig(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("DecodeConfig: %v", err)
	}
	if cfg.Width != 8 || cfg.Height != 8 {
		t.Fatalf("unexpected size: %dx%d", cfg.Width, cfg.Height)
	}

	got, err := Read(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	gotNRGBA, ok := got.(*image.NRGBA)
	if !ok {
		t.Fatalf("expected *image.NRGBA, got %T", got)
	}
	if !bytes.Equal(gotNRGBA.Pix, img.Pix) {
		t.Fatalf("pixel mismatch")
	}
}

func TestWriteBlockFormat(t *testing.T) {
	t.Parallel()

	img := testImage(16, 16)

	var buf bytes.Buffer
	err := WriteWithOptions(&buf, img, &WriteOptions{
		Format:     bcn.FormatDXT5,
		MaxMipMaps: 1,
		EncodeOptions: &bcn.EncodeOptions{
			QualityLevel: bcn.QualityLevelFast,
		},
	})
	if err != nil {
		t.Fatalf("WriteWithOptions: %v", err)
	}

	// magic + header + one 16x16 DXT5 surface
	if want := 4 + int(bcn.DDSHeaderSize) + 256; buf.Len() != want {
		t.Fatalf("stream size = %d, want %d", buf.Len(), want)
	}

	got, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got.Bounds().Dx() != 16 || got.Bounds().Dy() != 16 {
		t.Fatalf("unexpected size: %v", got.Bounds())
	}
}

func TestWriteEmptyImage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := Write(&buf, image.NewNRGBA(image.Rect(0, 0, 0, 4)))
	if !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("expected ErrInvalidSize, got %v", err)
	}
}

func TestSurfaceFormatTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header *bcn.DDSHeader
		dx10   *bcn.DDSHeaderDX10
		want   bcn.Format
	}{
		{
			name: "fourcc-dxt1",
			header: &bcn.DDSHeader{
				PixelFormat: bcn.DDSPixelFormat{
					Flags:  bcn.DDSPFFourCC,
					FourCC: fourCC("DXT1"),
				},
			},
			want: bcn.FormatDXT1,
		},
		{
			name: "fourcc-bc5s",
			header: &bcn.DDSHeader{
				PixelFormat: bcn.DDSPixelFormat{
					Flags:  bcn.DDSPFFourCC,
					FourCC: fourCC("BC5S"),
				},
			},
			want: bcn.FormatBC5,
		},
		{
			name: "rgb-bgra8",
			header: &bcn.DDSHeader{
				PixelFormat: bcn.DDSPixelFormat{
					Flags:       bcn.DDSPFRGB | bcn.DDSPFAlphaPixels,
					RGBBitCount: 32,
					RBitMask:    0x00ff0000,
					GBitMask:    0x0000ff00,
					BBitMask:    0x000000ff,
					ABitMask:    0xff000000,
				},
			},
			want: bcn.FormatBGRA8,
		},
		{
			name: "dxgi-dxt5",
			dx10: &bcn.DDSHeaderDX10{DXGIFormat: 77},
			want: bcn.FormatDXT5,
		},
		{
			name: "dxgi-unknown",
			dx10: &bcn.DDSHeaderDX10{DXGIFormat: 2},
			want: bcn.FormatUnknown,
		},
		{
			name: "unknown",
			header: &bcn.DDSHeader{
				PixelFormat: bcn.DDSPixelFormat{
					Flags:  bcn.DDSPFFourCC,
					FourCC: fourCC("XXXX"),
				},
			},
			want: bcn.FormatUnknown,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, _ := surfaceFormat(tc.header, tc.dx10)
			if got != tc.want {
				t.Fatalf("surfaceFormat() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSurfaceSizeTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format bcn.Format
		w      int
		h      int
		want   int
	}{
		{name: "dxt1-4x4", format: bcn.FormatDXT1, w: 4, h: 4, want: 8},
		{name: "dxt1-5x7", format: bcn.FormatDXT1, w: 5, h: 7, want: 32},
		{name: "dxt5-4x4", format: bcn.FormatDXT5, w: 4, h: 4, want: 16},
		{name: "bgra8-5x7", format: bcn.FormatBGRA8, w: 5, h: 7, want: 140},
		{name: "unknown", format: bcn.FormatUnknown, w: 4, h: 4, want: -1},
	}

	for _, tc := range tests {
		if got := surfaceSize(tc.format, tc.w, tc.h); got != tc.want {
			t.Fatalf("%s: surfaceSize = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestMipLevels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		w, h int
		want int
	}{
		{w: 1, h: 1, want: 1},
		{w: 8, h: 8, want: 4},
		{w: 16, h: 4, want: 5},
		{w: 4096, h: 4096, want: maxMipLevels},
	}
	for _, tc := range tests {
		if got := mipLevels(tc.w, tc.h); got != tc.want {
			t.Fatalf("mipLevels(%d,%d) = %d, want %d", tc.w, tc.h, got, tc.want)
		}
	}

	if got := mipDimension(5, 4); got != 1 {
		t.Fatalf("mipDimension(5,4) = %d, want 1", got)
	}
}
