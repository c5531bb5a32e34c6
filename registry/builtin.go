package registry

import (
	"math/rand/v2"

	"github.com/gogpu/rasterfx/filter"
)

// Builtin filter names.
const (
	Monochrome              = "monochrome"
	ColorBand               = "colorBand"
	Threshold               = "threshold"
	MultiThreshold          = "multiThreshold"
	ColorReplacement        = "colorReplacement"
	MultiColorReplacement   = "multiColorReplacement"
	BlurWithoutMask         = "blurWithoutMask"
	BlurWithMask            = "blurWithMask"
	PixelGraphicWithoutMask = "pixelGraphicWithoutMask"
	PixelGraphicWithMask    = "pixelGraphicWithMask"
	Negative                = "negativFilter"
)

// Builtin returns a registry holding the standard filter set.
//
// The replacement colors of the two color replacement chains are drawn
// from rng; pass a seeded generator for reproducible output, or nil for
// fresh colors on every call. opts are applied to every engine, so
// filter.WithPool parallelizes the whole set.
func Builtin(rng *rand.Rand, opts ...filter.Option) (*Registry, error) {
	named := func(name string) []filter.Option {
		return append([]filter.Option{filter.WithName(name)}, opts...)
	}

	reg := New()
	add := func(name string, f filter.Filter, err error) error {
		if err != nil {
			return err
		}
		return reg.Register(name, f)
	}

	if err := add(Monochrome, filter.NewMonochromeFilter(named(Monochrome)...), nil); err != nil {
		return nil, err
	}

	band, err := filter.NewColorBandFilter(filter.BandRed, named(ColorBand)...)
	if err := add(ColorBand, band, err); err != nil {
		return nil, err
	}

	th, err := filter.NewThresholdFilter([]int{128}, named(Threshold)...)
	if err := add(Threshold, th, err); err != nil {
		return nil, err
	}

	multi, err := filter.NewThresholdFilter([]int{64, 128, 192}, named(MultiThreshold)...)
	if err := add(MultiThreshold, multi, err); err != nil {
		return nil, err
	}

	chain, err := replacementChain(rng, []int{128}, []int{0}, named(ColorReplacement))
	if err := add(ColorReplacement, chain, err); err != nil {
		return nil, err
	}

	chain, err = replacementChain(rng, []int{64, 128, 192}, []int{0, 96, 160, 255}, named(MultiColorReplacement))
	if err := add(MultiColorReplacement, chain, err); err != nil {
		return nil, err
	}

	blur, err := filter.NewBlur(5, false, named(BlurWithoutMask)...)
	if err := add(BlurWithoutMask, blur, err); err != nil {
		return nil, err
	}

	blur, err = filter.NewBlur(10, true, named(BlurWithMask)...)
	if err := add(BlurWithMask, blur, err); err != nil {
		return nil, err
	}

	mosaic, err := filter.NewMosaic(10, false, named(PixelGraphicWithoutMask)...)
	if err := add(PixelGraphicWithoutMask, mosaic, err); err != nil {
		return nil, err
	}

	mosaic, err = filter.NewMosaic(15, true, named(PixelGraphicWithMask)...)
	if err := add(PixelGraphicWithMask, mosaic, err); err != nil {
		return nil, err
	}

	if err := add(Negative, filter.NewNegativeFilter(named(Negative)...), nil); err != nil {
		return nil, err
	}

	return reg, nil
}

// replacementChain thresholds to the representative levels of cuts and
// then recolors the listed gray levels.
func replacementChain(rng *rand.Rand, cuts, levels []int, opts []filter.Option) (*filter.Chain, error) {
	th, err := filter.NewThresholdFilter(cuts, opts...)
	if err != nil {
		return nil, err
	}
	cr, err := filter.NewColorReplacementLevels(rng, levels...)
	if err != nil {
		return nil, err
	}
	return filter.NewChain(th, filter.NewColorReplacementFilter(cr, opts...)), nil
}
