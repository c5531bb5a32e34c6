// Package filter provides the rasterfx filter engines and concrete filters.
//
// Two engines cover every filter:
//   - PixelFilter applies a PixelTransform independently to every pixel,
//     optionally consulting the mask pixel at the same coordinate
//   - AreaFilter splits the raster into non-overlapping square blocks and
//     writes one AreaTransform aggregate per block
//
// Concrete filters:
//   - Monochrome, Negative, ColorBand, Threshold, ColorReplacement (pixel)
//   - Blur, Mosaic (area)
//
// Chain composes pixel filters in order. Every engine and Chain implements
// Filter, so callers can treat them polymorphically.
//
// All filters are immutable after construction and safe for concurrent use.
// Each Process call returns a new raster and never modifies its inputs.
package filter
