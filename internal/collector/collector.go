package collector

import "context"

type Result[T any] struct {
	Result T
	Err    error
}

// Collector streams items until its source is exhausted or ctx is cancelled.
// The returned channel is always closed by the collector.
type Collector[T any] interface {
	Collect(ctx context.Context) (<-chan Result[T], error)
}
