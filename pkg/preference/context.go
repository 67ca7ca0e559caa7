package preference

import "context"

type accessorContextKey struct{}

// WithAccessor stores acc in ctx.
func WithAccessor(ctx context.Context, acc *Accessor) context.Context {
	return context.WithValue(ctx, accessorContextKey{}, acc)
}

// AccessorFromContext returns the accessor stored by Middleware.
func AccessorFromContext(ctx context.Context) (*Accessor, bool) {
	if ctx == nil {
		return nil, false
	}
	acc, ok := ctx.Value(accessorContextKey{}).(*Accessor)
	return acc, ok && acc != nil
}

// MustAccessorFromContext panics with ErrNoAccessor when Middleware did not run.
func MustAccessorFromContext(ctx context.Context) *Accessor {
	acc, ok := AccessorFromContext(ctx)
	if !ok {
		panic(ErrNoAccessor)
	}
	return acc
}
