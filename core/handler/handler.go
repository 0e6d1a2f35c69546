package handler

import "net/http"

// Response renders an HTTP response. Rendering errors go to the ErrorHandler.
type Response func(w http.ResponseWriter, r *http.Request) error

// HandlerFunc is a request handler bound to a context type.
type HandlerFunc[C Context] func(ctx C) Response

// ErrorHandler handles errors returned while rendering a Response.
type ErrorHandler[C Context] func(ctx C, err error)

// Middleware wraps a handler.
type Middleware[C Context] func(next HandlerFunc[C]) HandlerFunc[C]

// ContextFactory builds the handler context for an incoming request.
type ContextFactory[C Context] func(w http.ResponseWriter, r *http.Request) C

// Chain applies middlewares to h. The first middleware is the outermost.
func Chain[C Context](h HandlerFunc[C], middlewares ...Middleware[C]) HandlerFunc[C] {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

// HTTP adapts h to net/http. A nil onError writes a plain 500.
func HTTP[C Context](newContext ContextFactory[C], h HandlerFunc[C], onError ErrorHandler[C]) http.Handler {
	if onError == nil {
		onError = func(ctx C, err error) {
			http.Error(ctx.ResponseWriter(), http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := newContext(w, r)
		resp := h(ctx)
		if resp == nil {
			return
		}
		// Middlewares may have replaced the request through SetValue.
		if err := resp(ctx.ResponseWriter(), ctx.Request()); err != nil {
			onError(ctx, err)
		}
	})
}

// Wrap turns a net/http handler into a HandlerFunc.
func Wrap[C Context](next http.Handler) HandlerFunc[C] {
	return func(C) Response {
		return func(w http.ResponseWriter, r *http.Request) error {
			next.ServeHTTP(w, r)
			return nil
		}
	}
}
