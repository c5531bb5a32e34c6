package parallel

// Range is the half-open interval [Lo, Hi).
type Range struct {
	Lo, Hi int
}

// Ranges splits [0, n) into at most parts contiguous ranges whose lengths
// differ by at most one. Returns nil when n <= 0.
func Ranges(n, parts int) []Range {
	if n <= 0 {
		return nil
	}
	if parts <= 0 {
		parts = 1
	}
	if parts > n {
		parts = n
	}

	out := make([]Range, parts)
	size, extra := n/parts, n%parts
	lo := 0
	for i := range parts {
		hi := lo + size
		if i < extra {
			hi++
		}
		out[i] = Range{Lo: lo, Hi: hi}
		lo = hi
	}
	return out
}

// For runs fn over [0, n) split into one chunk per worker.
// A nil pool, or a pool with a single worker, runs fn once on the calling
// goroutine.
func For(p *WorkerPool, n int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	if p == nil || p.Workers() <= 1 {
		fn(0, n)
		return
	}

	// Several chunks per worker leave room for stealing.
	ranges := Ranges(n, p.Workers()*4)
	work := make([]func(), len(ranges))
	for i, r := range ranges {
		work[i] = func() { fn(r.Lo, r.Hi) }
	}
	p.ExecuteAll(work)
}
