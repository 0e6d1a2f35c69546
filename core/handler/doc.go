// Package handler defines typed HTTP handlers, responses and middleware.
//
// A HandlerFunc receives a Context and returns a Response; HTTP adapts the
// pair to net/http:
//
//	h := handler.Chain(page, middleware.RequestID[*handler.RequestContext](), logMW)
//	mux.Handle("/", handler.HTTP(handler.NewContext, h, response.ErrorHandler))
package handler
