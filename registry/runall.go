package registry

import (
	"github.com/gogpu/rasterfx"
)

// Sink receives the output of one filter, typically to persist it.
type Sink func(name string, out *rasterfx.Raster) error

// Result records the outcome of one filter in RunAll.
type Result struct {
	Name string
	Err  error
}

// OK reports whether the filter ran and its output was accepted.
func (r Result) OK() bool {
	return r.Err == nil
}

// RunAll applies every registered filter in name order and passes each
// output to sink. A failing filter or sink is recorded in its Result and
// the remaining filters still run. A nil sink discards outputs.
func (r *Registry) RunAll(src, mask *rasterfx.Raster, sink Sink) []Result {
	names := r.Names()
	results := make([]Result, 0, len(names))

	for _, name := range names {
		res := Result{Name: name}

		out, err := r.Apply(name, src, mask)
		if err == nil && sink != nil {
			err = sink(name, out)
		}
		if err != nil {
			res.Err = err
			rasterfx.Logger().Warn("filter failed", "name", name, "err", err)
		}

		results = append(results, res)
	}
	return results
}

// Failed returns the results that carry an error.
func Failed(results []Result) []Result {
	var failed []Result
	for _, res := range results {
		if !res.OK() {
			failed = append(failed, res)
		}
	}
	return failed
}
