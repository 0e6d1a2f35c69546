package handler

import (
	"context"
	"net/http"
	"time"
)

// Context is the request context passed to handlers.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	Param(key string) string
	SetValue(key, val any)
}

// RequestContext is the default Context. It delegates to the request's context.
type RequestContext struct {
	w      http.ResponseWriter
	r      *http.Request
	params map[string]string
}

// NewContext creates a RequestContext. It satisfies ContextFactory.
func NewContext(w http.ResponseWriter, r *http.Request) *RequestContext {
	return &RequestContext{w: w, r: r}
}

func (c *RequestContext) Deadline() (time.Time, bool) { return c.r.Context().Deadline() }
func (c *RequestContext) Done() <-chan struct{}       { return c.r.Context().Done() }
func (c *RequestContext) Err() error                  { return c.r.Context().Err() }
func (c *RequestContext) Value(key any) any           { return c.r.Context().Value(key) }

// SetValue stores val in the request's context.
func (c *RequestContext) SetValue(key, val any) {
	c.r = c.r.WithContext(context.WithValue(c.r.Context(), key, val))
}

// SetContext replaces the request's context.
func (c *RequestContext) SetContext(ctx context.Context) {
	c.r = c.r.WithContext(ctx)
}

func (c *RequestContext) Request() *http.Request              { return c.r }
func (c *RequestContext) ResponseWriter() http.ResponseWriter { return c.w }

// Param returns the path value for key. ServeMux wildcards are used when no
// explicit params were set.
func (c *RequestContext) Param(key string) string {
	if v, ok := c.params[key]; ok {
		return v
	}
	return c.r.PathValue(key)
}

// WithParams returns a copy of c with explicit path params.
func (c *RequestContext) WithParams(params map[string]string) *RequestContext {
	return &RequestContext{w: c.w, r: c.r, params: params}
}
