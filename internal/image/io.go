package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"

	"github.com/gogpu/rasterfx/internal/color"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the container format is not supported.
	ErrUnsupportedFormat = errors.New("image: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("image: empty data")
)

// DefaultJPEGQuality is used by Encode for FormatJPEG.
const DefaultJPEGQuality = 95

// Load reads a raster from the given file path.
// BMP, PNG and JPEG are detected from content; a ".zst" suffix is
// decompressed first.
func Load(path string) (*Raster, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("image: read file: %w", err)
	}
	if _, compressed, _ := FormatFromPath(path); compressed {
		if data, err = Decompress(data); err != nil {
			return nil, err
		}
	}
	return LoadFromBytes(data)
}

// LoadFromBytes decodes a raster from a byte slice, auto-detecting the format.
func LoadFromBytes(data []byte) (*Raster, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Decode decodes a raster from the given reader, auto-detecting the format.
func Decode(r io.Reader) (*Raster, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("image: decode: %w", err)
	}
	return FromStdImage(img)
}

// Save writes the raster to path. The container format is chosen from the
// extension (BMP when unknown) and a ".zst" suffix adds zstd compression.
func (r *Raster) Save(path string) error {
	format, compressed, _ := FormatFromPath(path)

	var buf bytes.Buffer
	if err := r.Encode(&buf, format); err != nil {
		return err
	}
	data := buf.Bytes()
	if compressed {
		var err error
		if data, err = Compress(data); err != nil {
			return err
		}
	}

	if err := os.WriteFile(filepath.Clean(path), data, 0o644); err != nil { //nolint:gosec // output images are world-readable
		return fmt.Errorf("image: write file: %w", err)
	}
	return nil
}

// Encode writes the raster to w in the given container format.
func (r *Raster) Encode(w io.Writer, format Format) error {
	img := r.ToStdImage()
	var err error
	switch format {
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatJPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: DefaultJPEGQuality})
	default:
		return ErrUnsupportedFormat
	}
	if err != nil {
		return fmt.Errorf("image: encode %s: %w", format, err)
	}
	return nil
}

// FromStdImage creates a Raster from a standard library image.Image.
// RGB is taken from the image and the high byte is set to 0xFF; the
// source alpha is discarded.
func FromStdImage(img image.Image) (*Raster, error) {
	bounds := img.Bounds()
	r, err := NewRaster(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}

	nrgba, ok := img.(*image.NRGBA)
	if !ok {
		// Generic path: let x/image/draw do the color model conversion.
		nrgba = image.NewNRGBA(image.Rect(0, 0, r.width, r.height))
		draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)
		bounds = nrgba.Bounds()
	}

	for y := range r.height {
		srcStart := (bounds.Min.Y-nrgba.Rect.Min.Y+y)*nrgba.Stride + (bounds.Min.X-nrgba.Rect.Min.X)*4
		row := r.Row(y)
		for x := range row {
			p := nrgba.Pix[srcStart+x*4 : srcStart+x*4+3]
			row[x] = color.PackOpaque(p[0], p[1], p[2])
		}
	}
	return r, nil
}

// ToStdImage converts the raster to an opaque *image.NRGBA.
// The high byte of each packed value is ignored.
func (r *Raster) ToStdImage() *image.NRGBA {
	nrgba := image.NewNRGBA(image.Rect(0, 0, r.width, r.height))
	for y := range r.height {
		dst := nrgba.Pix[y*nrgba.Stride:]
		for x, c := range r.Row(y) {
			off := x * 4
			dst[off] = c.R()
			dst[off+1] = c.G()
			dst[off+2] = c.B()
			dst[off+3] = 255
		}
	}
	return nrgba
}
