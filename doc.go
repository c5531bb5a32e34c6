// Package rasterfx is a small image-transform engine.
//
// # Overview
//
// A filter maps an input raster, plus an optional mask raster of the same
// size, to a new raster of identical dimensions. Filters are pure values:
// they hold only their configuration and never mutate their inputs.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/rasterfx"
//		"github.com/gogpu/rasterfx/filter"
//	)
//
//	src, _ := rasterfx.Load("images/test_image.bmp")
//	out, err := filter.NewMonochromeFilter().Process(src)
//	if err != nil {
//		return err
//	}
//	_ = out.Save("monochrome_output.bmp")
//
// # Architecture
//
// The module is organized into:
//   - Public API: Raster, Color, WorkerPool, Load/Save, sentinel errors
//   - filter: the per-pixel and per-block engines, every concrete filter,
//     and Chain for composing per-pixel filters
//   - registry: named filter sets and the run-all driver loop
//   - Internal: image (raster buffer, codecs), color (packed channels),
//     parallel (worker pool, block grid)
//
// # Colors
//
// A Color is a packed 0xAARRGGBB value. Red sits in bits 16-23, green in
// bits 8-15 and blue in bits 0-7. The high byte is filter-dependent; encoders
// ignore it and write every raster as opaque RGB.
//
// # Concurrency
//
// Filters are synchronous. Engines accept an optional WorkerPool and then
// split work by row range or block row; results are identical to the
// sequential path.
package rasterfx

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
