package mandel

// Option configures a render.
//
// Example:
//
//	// Default: available parallelism, 255 iterations, no oversampling.
//	pm, err := mandel.Render(bounds, vp)
//
//	// Single-threaded render with a deeper iteration bound.
//	pm, err := mandel.Render(bounds, vp,
//		mandel.WithWorkers(1),
//		mandel.WithIterationLimit(1000),
//	)
type Option func(*renderOptions)

// renderOptions holds optional configuration for a render.
type renderOptions struct {
	workers    int
	limit      int
	oversample int
}

// defaultRenderOptions returns the default render options.
func defaultRenderOptions() renderOptions {
	return renderOptions{
		workers:    0, // resolved to the available parallelism at render time
		limit:      DefaultIterationLimit,
		oversample: 1,
	}
}

// WithWorkers sets how many bands render concurrently. Values below 1
// select the available parallelism (runtime.GOMAXPROCS at render time).
// The worker count never changes the rendered bytes, only the wall time.
func WithWorkers(n int) Option {
	return func(o *renderOptions) {
		o.workers = n
	}
}

// WithIterationLimit sets the escape-time iteration bound. Higher limits
// resolve finer detail near the set boundary at proportional cost; counts
// beyond 255 all shade to black. Values below 1 select
// DefaultIterationLimit.
func WithIterationLimit(n int) Option {
	return func(o *renderOptions) {
		if n < 1 {
			n = DefaultIterationLimit
		}
		o.limit = n
	}
}

// WithOversample renders at factor times the requested resolution and
// downscales to the target size, smoothing the hard escape-band edges.
// Factor 1 (the default) disables oversampling and reproduces the exact
// per-pixel escape-time bytes.
func WithOversample(factor int) Option {
	return func(o *renderOptions) {
		if factor < 1 {
			factor = 1
		}
		o.oversample = factor
	}
}
