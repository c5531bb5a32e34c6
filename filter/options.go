package filter

import (
	"github.com/gogpu/rasterfx"
)

// Option configures a filter engine during creation.
//
// Example:
//
//	pool := rasterfx.NewWorkerPool(0)
//	defer pool.Close()
//	blur, _ := filter.NewBlur(5, false, filter.WithPool(pool))
type Option func(*options)

// options holds optional configuration shared by both engines.
type options struct {
	pool *rasterfx.WorkerPool
	name string
}

// buildOptions applies opts over the defaults.
func buildOptions(name string, opts []Option) options {
	o := options{name: name}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// workers returns the number of goroutines the engine will use.
func (o options) workers() int {
	if o.pool == nil {
		return 1
	}
	return o.pool.Workers()
}

// WithPool runs the engine on p: pixel filters split the raster by row
// range, area filters by block row. Output is identical to the sequential
// path. The pool is borrowed, not owned; the caller closes it.
func WithPool(p *rasterfx.WorkerPool) Option {
	return func(o *options) {
		o.pool = p
	}
}

// WithName sets the name reported in log records.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}
