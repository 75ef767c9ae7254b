// Package redis connects to Redis and provides ResultStore, the shared
// second tier of the classification cache.
//
// Connect retries the initial ping according to Config and Healthcheck turns
// a client into a readiness check.
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	c := cache.New(10000, cache.WithStore(redis.NewResultStoreFromConfig(client, cfg)))
//
// Values are JSON documents holding the User-Agent and its classification,
// stored under the configured prefix plus the hex xxhash of the string.
package redis
