package health

import (
	"context"
	"log/slog"

	"github.com/alquimiadental/site/core/handler"
	"github.com/alquimiadental/site/core/logger"
	"github.com/alquimiadental/site/core/response"
)

// Readiness answers "READY" when every check passes and 503 otherwise.
//
//	ready := health.Readiness[*handler.RequestContext](log,
//		static.Ready(staticCfg),
//		redis.Healthcheck(client),
//	)
func Readiness[C handler.Context](log *slog.Logger, checks ...func(context.Context) error) handler.HandlerFunc[C] {
	return func(ctx C) handler.Response {
		for _, check := range checks {
			if err := check(ctx); err != nil {
				log.ErrorContext(ctx, "readiness check failed", logger.Component("health"), logger.Error(err))
				return response.Error(response.ErrServiceUnavailable)
			}
		}
		return response.String("READY")
	}
}
