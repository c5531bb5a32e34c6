package image

import (
	"path/filepath"
	"strings"
)

// Format identifies an external raster container encoding.
type Format uint8

const (
	// FormatBMP is the uncompressed Windows bitmap container.
	// This is the default format for filter output.
	FormatBMP Format = iota

	// FormatPNG is lossless PNG.
	FormatPNG

	// FormatJPEG is lossy baseline JPEG.
	FormatJPEG

	// formatCount is the number of formats (for internal use).
	formatCount
)

// FormatInfo contains metadata about a container format.
type FormatInfo struct {
	// Name is the short lowercase name.
	Name string

	// Extensions lists file extensions, the first one is canonical.
	Extensions []string

	// Lossless indicates that encoding preserves every RGB value.
	Lossless bool
}

// formatInfoTable contains metadata for each format.
var formatInfoTable = [formatCount]FormatInfo{
	FormatBMP: {
		Name:       "bmp",
		Extensions: []string{".bmp"},
		Lossless:   true,
	},
	FormatPNG: {
		Name:       "png",
		Extensions: []string{".png"},
		Lossless:   true,
	},
	FormatJPEG: {
		Name:       "jpeg",
		Extensions: []string{".jpg", ".jpeg"},
		Lossless:   false,
	},
}

// CompressedExt is the suffix marking a zstd-wrapped container.
const CompressedExt = ".zst"

// Info returns the FormatInfo for this format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// String returns the short name of the format.
func (f Format) String() string {
	if !f.IsValid() {
		return "unknown"
	}
	return f.Info().Name
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// Ext returns the canonical file extension, including the dot.
func (f Format) Ext() string {
	if !f.IsValid() {
		return ""
	}
	return f.Info().Extensions[0]
}

// IsLossless reports whether encoding preserves every RGB value.
func (f Format) IsLossless() bool {
	return f.Info().Lossless
}

// FormatFromPath determines the container format and zstd wrapping from a
// file name. Names without a known extension map to FormatBMP.
func FormatFromPath(path string) (format Format, compressed bool, ok bool) {
	name := strings.ToLower(filepath.Base(path))
	if strings.HasSuffix(name, CompressedExt) {
		compressed = true
		name = strings.TrimSuffix(name, CompressedExt)
	}
	ext := filepath.Ext(name)
	for f := range formatCount {
		for _, e := range formatInfoTable[f].Extensions {
			if e == ext {
				return f, compressed, true
			}
		}
	}
	return FormatBMP, compressed, false
}
