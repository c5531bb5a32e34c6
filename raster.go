package rasterfx

import (
	"image"

	intImage "github.com/gogpu/rasterfx/internal/image"
	"github.com/gogpu/rasterfx/internal/parallel"
)

// Raster is a public alias for the internal raster buffer.
// It is a width x height grid of packed colors stored row-major with O(1)
// access by coordinate.
type Raster = intImage.Raster

// Format is a public alias for the container format used by Save.
type Format = intImage.Format

// Container formats.
const (
	// FormatBMP is the uncompressed bitmap container used for filter output.
	FormatBMP = intImage.FormatBMP

	// FormatPNG is lossless PNG.
	FormatPNG = intImage.FormatPNG

	// FormatJPEG is lossy baseline JPEG.
	FormatJPEG = intImage.FormatJPEG
)

// CompressedExt is the file suffix that makes Load and Save use zstd.
const CompressedExt = intImage.CompressedExt

// WorkerPool runs engine work in parallel. See NewWorkerPool.
type WorkerPool = parallel.WorkerPool

// NewRaster creates a zeroed raster.
// Returns ErrInvalidDimensions for non-positive sizes.
func NewRaster(width, height int) (*Raster, error) {
	return intImage.NewRaster(width, height)
}

// FromImage converts a standard library image to a Raster.
// Every resulting pixel has its high byte set to 0xFF.
func FromImage(img image.Image) (*Raster, error) {
	return intImage.FromStdImage(img)
}

// Load reads a BMP, PNG or JPEG file into a Raster.
// Files ending in ".zst" are zstd-decompressed first.
//
// Example:
//
//	src, err := rasterfx.Load("images/test_image.bmp")
func Load(path string) (*Raster, error) {
	return intImage.Load(path)
}

// LoadFromBytes decodes a raster from memory, auto-detecting the format.
func LoadFromBytes(data []byte) (*Raster, error) {
	return intImage.LoadFromBytes(data)
}

// Save writes r to path. The format follows the extension (BMP when
// unknown); a ".zst" suffix adds zstd compression.
func Save(r *Raster, path string) error {
	return r.Save(path)
}

// NewWorkerPool creates a pool with the given number of workers
// (GOMAXPROCS when workers <= 0). Close it when done.
func NewWorkerPool(workers int) *WorkerPool {
	return parallel.NewWorkerPool(workers)
}
