package filter

import (
	"fmt"
	"slices"

	"github.com/gogpu/rasterfx"
	intImage "github.com/gogpu/rasterfx/internal/image"
)

// Chain runs pixel filters in sequence.
//
// The first stage receives the full argument set of Process, mask
// included. Every later stage receives only the output of the stage before
// it. Build the chain with Add during setup, then call Process any number
// of times; Chain keeps no per-call state.
type Chain struct {
	stages []*PixelFilter
}

// NewChain creates a chain of the given stages.
func NewChain(stages ...*PixelFilter) *Chain {
	c := &Chain{}
	for _, s := range stages {
		c.Add(s)
	}
	return c
}

// Add appends a stage. Nil stages are ignored.
func (c *Chain) Add(f *PixelFilter) {
	if f == nil {
		return
	}
	c.stages = append(c.stages, f)
}

// Len returns the number of stages.
func (c *Chain) Len() int {
	return len(c.stages)
}

// Filters returns a copy of the stage list.
func (c *Chain) Filters() []*PixelFilter {
	return slices.Clone(c.stages)
}

// Process implements Filter.
// An empty chain returns a copy of the source.
func (c *Chain) Process(images ...*rasterfx.Raster) (*rasterfx.Raster, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: nil chain", rasterfx.ErrInvalidInput)
	}
	src, _, err := splitArgs(images)
	if err != nil {
		return nil, err
	}
	if len(c.stages) == 0 {
		return src.Clone(), nil
	}

	rasterfx.Logger().Debug("chain", "stages", len(c.stages))

	result, err := c.stages[0].Process(images...)
	if err != nil {
		return nil, fmt.Errorf("chain stage 0: %w", err)
	}

	for i, stage := range c.stages[1:] {
		next, err := stage.Process(result)
		intImage.PutToDefault(result)
		if err != nil {
			return nil, fmt.Errorf("chain stage %d: %w", i+1, err)
		}
		result = next
	}
	return result, nil
}
