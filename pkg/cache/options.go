package cache

import (
	"log/slog"

	"github.com/dmitrymomot/uaparse/pkg/useragent"
)

// Option configures a Cache.
type Option func(*Cache)

// WithStore adds a shared second tier consulted on LRU misses.
func WithStore(s Store) Option {
	return func(c *Cache) { c.store = s }
}

// WithParser replaces useragent.Parse, mostly useful in tests.
// Nil is ignored.
func WithParser(fn useragent.ParseFunc) Option {
	return func(c *Cache) {
		if fn != nil {
			c.parse = fn
		}
	}
}

// WithLogger sets the logger used to report store failures.
// Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *Cache) {
		if l != nil {
			c.logger = l
		}
	}
}
