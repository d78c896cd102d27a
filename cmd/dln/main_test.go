package main

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/woozymasta/dln"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writePNG(t *testing.T, path string) *image.NRGBA {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, 6, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 40), G: uint8(y * 60), B: 7, A: 255}) //nolint:gosec // bounded
		}
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer func() { _ = f.Close() }()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return img
}

func TestRunUsage(t *testing.T) {
	t.Parallel()

	tests := [][]string{
		nil,
		{"bogus"},
		{"encode"},
		{"decode", "a", "b"},
		{"info"},
	}
	for _, args := range tests {
		if err := run(args, io.Discard, discardLogger()); !errors.Is(err, errUsage) {
			t.Fatalf("run(%q): expected usage error, got %v", args, err)
		}
	}
}

func TestRunVersion(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	if err := run([]string{"version"}, &out, discardLogger()); err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out.String(), "dln dev") {
		t.Fatalf("unexpected version output %q", out.String())
	}
}

func TestEncodeInfoDecode(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	src := writePNG(t, in)

	for _, comp := range []string{"zstd", "lz4"} {
		dlnPath := filepath.Join(dir, comp+".dln")
		outPath := filepath.Join(dir, comp+".png")

		err := run([]string{"encode", "-o", dlnPath, "-compressor", comp, "-meta", "author=me", in}, io.Discard, discardLogger())
		if err != nil {
			t.Fatalf("%s encode: %v", comp, err)
		}

		var info bytes.Buffer
		if err := run([]string{"info", dlnPath}, &info, discardLogger()); err != nil {
			t.Fatalf("%s info: %v", comp, err)
		}
		if !strings.Contains(info.String(), "6x4") || !strings.Contains(info.String(), "RGB") {
			t.Fatalf("%s info output %q", comp, info.String())
		}

		img, err := dln.ReadWithOptions(dlnPath, &dln.DecodeOptions{Compressor: mustCompressor(t, comp)})
		if err != nil {
			t.Fatalf("%s read: %v", comp, err)
		}
		if img.Metadata["author"] != "me" {
			t.Fatalf("%s metadata = %#v", comp, img.Metadata)
		}

		err = run([]string{"decode", "-o", outPath, "-compressor", comp, "-strict", dlnPath}, io.Discard, discardLogger())
		if err != nil {
			t.Fatalf("%s decode: %v", comp, err)
		}

		f, err := os.Open(outPath)
		if err != nil {
			t.Fatalf("open: %v", err)
		}
		got, err := png.Decode(f)
		_ = f.Close()
		if err != nil {
			t.Fatalf("png.Decode: %v", err)
		}
		for y := 0; y < 4; y++ {
			for x := 0; x < 6; x++ {
				r0, g0, b0, a0 := src.At(x, y).RGBA()
				r1, g1, b1, a1 := got.At(x, y).RGBA()
				if r0 != r1 || g0 != g1 || b0 != b1 || a0 != a1 {
					t.Fatalf("%s pixel (%d,%d) mismatch", comp, x, y)
				}
			}
		}
	}
}

func TestDecodeToDDS(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	writePNG(t, in)

	dlnPath := filepath.Join(dir, "in.dln")
	ddsPath := filepath.Join(dir, "out.dds")
	if err := run([]string{"encode", in}, io.Discard, discardLogger()); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := run([]string{"decode", "-o", ddsPath, dlnPath}, io.Discard, discardLogger()); err != nil {
		t.Fatalf("decode: %v", err)
	}

	back := filepath.Join(dir, "back.dln")
	if err := run([]string{"encode", "-o", back, ddsPath}, io.Discard, discardLogger()); err != nil {
		t.Fatalf("encode dds: %v", err)
	}
	h, err := dln.ReadConfig(back)
	if err != nil {
		t.Fatalf("ReadConfig: %v", err)
	}
	if h.Width != 6 || h.Height != 4 {
		t.Fatalf("unexpected header %+v", h)
	}
}

func TestBadMetaFlag(t *testing.T) {
	t.Parallel()

	m := metaFlag{}
	if err := m.Set("novalue"); err == nil {
		t.Fatalf("expected error for missing '='")
	}
	if err := m.Set("k=v=w"); err != nil || m["k"] != "v=w" {
		t.Fatalf("Set(k=v=w) = %v, map %v", err, m)
	}
}

func mustCompressor(t *testing.T, name string) dln.Compressor {
	t.Helper()

	c, err := compressorByName(name)
	if err != nil {
		t.Fatalf("compressorByName: %v", err)
	}
	return c
}

func TestEncodeDebugLogging(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		level      slog.Level
		wantPasses bool
	}{
		{name: "debug", level: slog.LevelDebug, wantPasses: true},
		{name: "info", level: slog.LevelInfo, wantPasses: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			in := filepath.Join(dir, "in.png")
			writePNG(t, in)

			var logs bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: tc.level}))
			if err := runEncode([]string{in}, logger); err != nil {
				t.Fatalf("encode: %v", err)
			}

			out := logs.String()
			if !strings.Contains(out, "wrote DLN") {
				t.Fatalf("missing info line: %s", out)
			}
			if got := strings.Contains(out, "pixel_passes="); got != tc.wantPasses {
				t.Fatalf("pixel_passes logged = %v, want %v: %s", got, tc.wantPasses, out)
			}
			if tc.wantPasses && !strings.Contains(out, "width=6 height=4") {
				t.Fatalf("missing image attributes: %s", out)
			}
		})
	}
}
