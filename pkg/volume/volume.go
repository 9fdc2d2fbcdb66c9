// Package volume enumerates mounted volumes and reads their usage. The
// Source interface keeps platform differences out of the rendering layer;
// the implementation is selected at build time, never by runtime platform
// matching.
package volume

import "context"

// Usage is a volume's raw byte counts at the moment of the query.
type Usage struct {
	Total int64
	Used  int64
	Free  int64
}

// Source lists volumes and reads per-volume usage.
type Source interface {
	// List resolves which volumes to report on. With all set it returns
	// every available volume; with selectors it returns the subset that
	// exists (erroring when none do); otherwise the volume containing the
	// working directory. The returned order is the report order.
	List(ctx context.Context, all bool, selectors []string) ([]string, error)

	// Usage reads total, used and free bytes for one volume.
	Usage(ctx context.Context, id string) (Usage, error)
}
