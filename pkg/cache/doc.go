// Package cache memoises User-Agent classification results.
//
// Real traffic repeats a small set of User-Agent strings over and over, so a
// bounded LRU in front of useragent.Parse removes most of the regular
// expression work from the request path. Keys are xxhash digests of the raw
// string; the string itself is kept alongside the result so a digest
// collision can never return another client's classification.
//
// # Usage
//
//	c := cache.New(10_000)
//	res := c.Parse(ctx, r.UserAgent())
//
// A shared second tier (for example pkg/redis.ResultStore) can be plugged in
// with WithStore. It is consulted only on LRU misses, and its failures are
// logged and counted but never surface to the caller: classification always
// succeeds, with or without the store.
//
//	c := cache.New(10_000,
//		cache.WithStore(redis.NewResultStoreFromConfig(client, redisCfg)),
//		cache.WithLogger(log),
//	)
//
// Concurrent misses for the same string are collapsed with singleflight, so a
// burst of identical requests classifies the string once.
//
// # Middleware
//
// ParseFunc adapts the cache to useragent.NewMiddleware:
//
//	r.Use(useragent.NewMiddleware(c.ParseFunc()))
package cache
