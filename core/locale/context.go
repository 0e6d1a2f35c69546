package locale

import "context"

// ContextKey is the context key under which Request is stored.
// Handlers that only have a SetValue-style API store the value under it directly.
type ContextKey struct{}

// Request carries the locale resolved for an inbound request together with the
// document base href rendering collaborators should use.
type Request struct {
	Locale   Code
	BaseHref string
}

// WithContext stores the request locale in ctx.
func WithContext(ctx context.Context, req Request) context.Context {
	return context.WithValue(ctx, ContextKey{}, req)
}

// FromContext returns the request locale stored by WithContext.
func FromContext(ctx context.Context) (Request, bool) {
	req, ok := ctx.Value(ContextKey{}).(Request)
	return req, ok
}
