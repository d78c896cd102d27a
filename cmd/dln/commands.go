package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/klauspost/compress/zstd"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder

	"github.com/woozymasta/dln"
	"github.com/woozymasta/dln/dds"
)

// metaFlag collects repeated -meta key=value pairs.
type metaFlag dln.Metadata

func (m metaFlag) String() string {
	parts := make([]string, 0, len(m))
	for k, v := range m {
		parts = append(parts, fmt.Sprintf("%s=%v", k, v))
	}
	return strings.Join(parts, ",")
}

func (m metaFlag) Set(s string) error {
	k, v, ok := strings.Cut(s, "=")
	if !ok || k == "" {
		return fmt.Errorf("metadata must be key=value, got %q", s)
	}
	m[k] = v
	return nil
}

func compressorByName(name string) (dln.Compressor, error) {
	switch strings.ToLower(name) {
	case "", "zstd":
		return dln.DefaultCompressor(), nil
	case "zstd-best":
		return dln.NewZstdCompressor(zstd.SpeedBestCompression), nil
	case "lz4":
		return dln.LZ4Compressor{}, nil
	default:
		return nil, fmt.Errorf("unknown compressor %q", name)
	}
}

func isDDS(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".dds")
}

func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

func runEncode(args []string, logger *slog.Logger) error {
	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	out := fs.String("o", "", "output path (default: input with .dln extension)")
	comp := fs.String("compressor", "zstd", "section compressor: zstd, zstd-best or lz4")
	store := fs.Bool("store", false, "write sections without compression")
	meta := metaFlag{}
	fs.Var(meta, "meta", "metadata entry key=value (repeatable)")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() != 1 {
		return errUsage
	}

	in := fs.Arg(0)
	if *out == "" {
		*out = replaceExt(in, ".dln")
	}
	c, err := compressorByName(*comp)
	if err != nil {
		return err
	}

	src, err := openImage(in)
	if err != nil {
		return err
	}
	img, err := dln.FromImage(src)
	if err != nil {
		return err
	}
	img.Metadata = dln.Metadata(meta)

	opts := &dln.EncodeOptions{Compressor: c, Store: *store, CheckPixelLength: true}
	if err := dln.WriteWithOptions(img, *out, opts); err != nil {
		return err
	}

	attrs := []any{
		"input", in,
		"output", *out,
		"mode", img.Mode,
		"width", img.Width,
		"height", img.Height,
		"raw_pixels", len(img.Pix),
	}
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		// pass counts only exist in the written header
		h, err := dln.ReadConfig(*out)
		if err != nil {
			return err
		}
		attrs = append(attrs, "meta_passes", h.MetaPasses, "pixel_passes", h.PixelPasses)
	}
	logger.Debug("encoded", attrs...)
	logger.Info("wrote DLN", "path", *out)
	return nil
}

// openImage decodes a DDS texture or any format registered with image.
func openImage(path string) (image.Image, error) {
	if !isDDS(path) {
		return imaging.Open(path, imaging.AutoOrientation(true))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	return dds.Read(f)
}

// saveImage writes img in the format named by the path extension.
func saveImage(img image.Image, path string) error {
	if !isDDS(path) {
		return imaging.Save(img, path)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if err := dds.Write(f, img); err != nil {
		return err
	}
	return f.Close()
}

func runDecode(args []string, logger *slog.Logger) error {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	out := fs.String("o", "", "output path (default: input with .png extension)")
	comp := fs.String("compressor", "zstd", "section compressor used at encode time")
	strict := fs.Bool("strict", false, "verify pixel data length against the mode")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() != 1 {
		return errUsage
	}

	in := fs.Arg(0)
	if *out == "" {
		*out = replaceExt(in, ".png")
	}
	c, err := compressorByName(*comp)
	if err != nil {
		return err
	}

	img, err := dln.ReadWithOptions(in, &dln.DecodeOptions{Compressor: c, CheckPixelLength: *strict})
	if err != nil {
		return err
	}
	dst, err := img.ToImage()
	if err != nil {
		return err
	}
	if err := saveImage(dst, *out); err != nil {
		return err
	}

	logger.Debug("decoded", "input", in, "output", *out, "mode", img.Mode, "metadata", len(img.Metadata))
	logger.Info("wrote image", "path", *out)
	return nil
}

func runInfo(args []string, stdout io.Writer) error {
	if len(args) != 1 {
		return errUsage
	}

	h, err := dln.ReadConfig(args[0])
	if err != nil {
		return err
	}

	bpp, err := dln.BytesPerPixel(h.Mode)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "file:          %s\n", args[0])
	fmt.Fprintf(stdout, "version:       %s\n", dln.VersionString(h.Version))
	fmt.Fprintf(stdout, "size:          %dx%d\n", h.Width, h.Height)
	fmt.Fprintf(stdout, "mode:          %s (%d bytes per pixel)\n", h.Mode, bpp)
	fmt.Fprintf(stdout, "metadata:      %d bytes, %d passes\n", h.MetaLength, h.MetaPasses)
	fmt.Fprintf(stdout, "pixel passes:  %d\n", h.PixelPasses)
	return nil
}
