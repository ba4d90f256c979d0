package ports

import "context"

// ViewCache memoizes rendered views of a route. Implementations key entries by
// route plus a variant string (query parameters) and drop all variants of a
// route at once on Invalidate.
type ViewCache interface {
	// Get returns the cached payload for a route variant, or ok=false on miss.
	// Cache errors are treated as misses; the view is recomputed.
	Get(ctx context.Context, route, variant string) (payload []byte, ok bool)
	// Set stores a rendered payload. Failures are logged, never surfaced.
	Set(ctx context.Context, route, variant string, payload []byte)
	// Invalidate marks every cached variant of the route stale. Fire-and-forget.
	Invalidate(ctx context.Context, route string)
}
