package health

import (
	"github.com/alquimiadental/site/core/handler"
	"github.com/alquimiadental/site/core/response"
)

// Liveness always answers "ALIVE" with 200 OK.
//
//	mux.Handle("GET /healthz", handler.HTTP(handler.NewContext, health.Liveness[*handler.RequestContext], nil))
func Liveness[C handler.Context](C) handler.Response {
	return response.String("ALIVE")
}
