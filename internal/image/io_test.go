package image

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	icolor "github.com/gogpu/rasterfx/internal/color"
)

func testRaster(t *testing.T) *Raster {
	t.Helper()
	r, err := NewRaster(5, 3)
	if err != nil {
		t.Fatal(err)
	}
	for y := range 3 {
		for x := range 5 {
			r.Set(x, y, icolor.PackOpaque(uint8(x*40), uint8(y*80), uint8(x+y)))
		}
	}
	return r
}

func assertSameRGB(t *testing.T, got, want *Raster) {
	t.Helper()
	if !got.SameSize(want) {
		t.Fatalf("size = %dx%d, want %dx%d", got.Width(), got.Height(), want.Width(), want.Height())
	}
	for y := range want.Height() {
		for x := range want.Width() {
			if got.At(x, y).RGB() != want.At(x, y).RGB() {
				t.Errorf("(%d, %d) = %#x, want %#x", x, y, got.At(x, y).RGB(), want.At(x, y).RGB())
			}
		}
	}
}

func TestFromStdImage_NRGBA(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.Set(2, 3, color.NRGBA{R: 200, G: 100, B: 50, A: 10})

	r, err := FromStdImage(img)
	if err != nil {
		t.Fatal(err)
	}
	if got := r.At(2, 3); got != 0xFFC86432 {
		t.Errorf("At(2, 3) = %#x, want 0xFFC86432", uint32(got))
	}
}

func TestFromStdImage_Gray(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 3, 3))
	img.SetGray(1, 1, color.Gray{Y: 128})

	r, err := FromStdImage(img)
	if err != nil {
		t.Fatal(err)
	}
	if got := r.At(1, 1); got != icolor.Gray(128) {
		t.Errorf("At(1, 1) = %#x, want %#x", uint32(got), uint32(icolor.Gray(128)))
	}
}

func TestFromStdImage_Offset(t *testing.T) {
	img := image.NewRGBA(image.Rect(10, 20, 13, 22))
	img.Set(10, 20, color.RGBA{R: 1, G: 2, B: 3, A: 255})

	r, err := FromStdImage(img)
	if err != nil {
		t.Fatal(err)
	}
	if r.Width() != 3 || r.Height() != 2 {
		t.Fatalf("size = %dx%d, want 3x2", r.Width(), r.Height())
	}
	if got := r.At(0, 0).RGB(); got != 0x010203 {
		t.Errorf("At(0, 0) = %#x, want 0x010203", got)
	}
}

func TestFromStdImage_Empty(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 0, 0))
	if _, err := FromStdImage(img); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("error = %v, want ErrInvalidDimensions", err)
	}
}

func TestToStdImage_IgnoresHighByte(t *testing.T) {
	r, _ := NewRaster(1, 1)
	r.Set(0, 0, 0x00102030)

	img := r.ToStdImage()
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 255}) {
		t.Errorf("NRGBAAt = %v, want opaque {16 32 48}", got)
	}
}

func TestEncodeDecode(t *testing.T) {
	for _, f := range []Format{FormatBMP, FormatPNG} {
		t.Run(f.String(), func(t *testing.T) {
			r := testRaster(t)
			var buf bytes.Buffer
			if err := r.Encode(&buf, f); err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			got, err := LoadFromBytes(buf.Bytes())
			if err != nil {
				t.Fatalf("LoadFromBytes() error = %v", err)
			}
			assertSameRGB(t, got, r)
		})
	}
}

func TestDecodeDetectsBMP(t *testing.T) {
	r := testRaster(t)
	var buf bytes.Buffer
	if err := r.Encode(&buf, FormatBMP); err != nil {
		t.Fatal(err)
	}
	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	assertSameRGB(t, got, r)
}

func TestEncodeJPEG(t *testing.T) {
	r := testRaster(t)
	var buf bytes.Buffer
	if err := r.Encode(&buf, FormatJPEG); err != nil {
		t.Fatalf("Encode(JPEG) error = %v", err)
	}
	got, err := LoadFromBytes(buf.Bytes())
	if err != nil {
		t.Fatalf("LoadFromBytes() error = %v", err)
	}
	if !got.SameSize(r) {
		t.Errorf("JPEG size = %dx%d, want 5x3", got.Width(), got.Height())
	}
}

func TestEncodeUnsupported(t *testing.T) {
	r := testRaster(t)
	if err := r.Encode(&bytes.Buffer{}, Format(99)); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestLoadFromBytes_Errors(t *testing.T) {
	if _, err := LoadFromBytes(nil); !errors.Is(err, ErrEmptyData) {
		t.Errorf("LoadFromBytes(nil) error = %v, want ErrEmptyData", err)
	}
	if _, err := LoadFromBytes([]byte("not an image")); err == nil {
		t.Error("LoadFromBytes(garbage) should fail")
	}
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	r := testRaster(t)

	for _, name := range []string{"out.bmp", "out.png", "out.bmp.zst", "noext"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := r.Save(path); err != nil {
				t.Fatalf("Save() error = %v", err)
			}
			got, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			assertSameRGB(t, got, r)
		})
	}
}

func TestSaveCompressedIsZstd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.bmp.zst")
	if err := testRaster(t).Save(path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	// zstd frame magic number, little endian 0xFD2FB528.
	if len(data) < 4 || !bytes.Equal(data[:4], []byte{0x28, 0xB5, 0x2F, 0xFD}) {
		t.Errorf("file does not start with zstd magic: % x", data[:4])
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.bmp"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want os.ErrNotExist", err)
	}
}

func TestSaveBadDirectory(t *testing.T) {
	err := testRaster(t).Save(filepath.Join(t.TempDir(), "missing", "out.bmp"))
	if err == nil {
		t.Error("Save into missing directory should fail")
	}
}
