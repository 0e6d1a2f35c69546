// Package logger provides slog constructors and attribute helpers.
//
//	log := logger.New(
//		logger.WithProduction("site"),
//		logger.WithContextExtractors(requestIDFromContext),
//	)
//
//	log.Info("locale redirect",
//		logger.Component("locale"),
//		logger.Path(r.URL.Path),
//		logger.Target(target),
//		logger.Locale("es"),
//	)
//
// Attribute helpers return an empty slog.Attr for absent values, which slog drops.
package logger
