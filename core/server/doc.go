// Package server runs an http.Server with graceful shutdown.
//
//	srv, err := server.NewFromConfig(cfg, server.WithLogger(log))
//	if err != nil {
//		return err
//	}
//	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
//	defer stop()
//	return srv.Run(ctx, mux)()
//
// The function returned by Run yields nil once ctx is cancelled and the server
// stopped cleanly.
package server
