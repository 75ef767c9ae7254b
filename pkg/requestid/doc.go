// Package requestid tags every HTTP request with a correlation id.
//
// Middleware keeps a client supplied X-Request-ID when it is 1 to 128
// characters of letters, digits, '-' or '_'; anything else is replaced with a
// fresh UUID. The id is echoed in the response and stored in the context,
// where FromContext and LoggerExtractor read it.
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r.Use(requestid.Middleware)
package requestid
