package image

import "sync"

// Pool is a thread-safe pool for reusing Raster instances.
//
// Pool groups rasters by their dimensions so that pipelines producing many
// identically-sized intermediates do not allocate a fresh buffer per stage.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[poolKey][]*Raster
	maxSize int // max rasters per bucket
}

// poolKey identifies a bucket of identically-sized rasters.
type poolKey struct {
	width  int
	height int
}

// NewPool creates a new raster pool with the given maximum rasters per bucket.
// A maxPerBucket of 0 means unlimited (use with caution).
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[poolKey][]*Raster),
		maxSize: maxPerBucket,
	}
}

// Get retrieves a raster from the pool or creates a new one.
// The returned raster is always zeroed.
// Returns nil for non-positive dimensions.
func (p *Pool) Get(width, height int) *Raster {
	key := poolKey{width: width, height: height}

	p.mu.Lock()
	bucket := p.buckets[key]
	if len(bucket) > 0 {
		r := bucket[len(bucket)-1]
		p.buckets[key] = bucket[:len(bucket)-1]
		p.mu.Unlock()
		return r
	}
	p.mu.Unlock()

	r, err := NewRaster(width, height)
	if err != nil {
		return nil
	}
	return r
}

// Put returns a raster to the pool for reuse.
// The raster is cleared before being stored. The caller must not use it
// afterwards. If r is nil or the bucket is full, the raster is discarded.
func (p *Pool) Put(r *Raster) {
	if r == nil {
		return
	}

	r.Clear()

	key := poolKey{width: r.width, height: r.height}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[key] = append(bucket, r)
}

// defaultPool is the package-level pool for convenient usage.
var defaultPool = NewPool(8)

// GetFromDefault retrieves a raster from the default pool.
func GetFromDefault(width, height int) *Raster {
	return defaultPool.Get(width, height)
}

// PutToDefault returns a raster to the default pool.
func PutToDefault(r *Raster) {
	defaultPool.Put(r)
}
