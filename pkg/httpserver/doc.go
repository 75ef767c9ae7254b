// Package httpserver runs an http.Handler with configurable timeouts and
// graceful shutdown.
//
// Run blocks until the context is cancelled or the process receives SIGINT or
// SIGTERM, then calls http.Server.Shutdown bounded by the shutdown timeout.
// The listener is opened before Run returns control to the serve loop, so
// bind errors surface as ErrStart and Addr reports the real port when the
// address is ":0".
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// LiveHandler and ReadyHandler serve plain-text probe endpoints.
package httpserver
