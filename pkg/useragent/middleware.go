package useragent

import "net/http"

// Header is the request header the classifier reads.
const Header = "User-Agent"

// ParseFunc classifies a User-Agent string. Parse is the default; caching
// wrappers share the same signature.
type ParseFunc func(ua string) Result

// FromRequest classifies the request's User-Agent header. It returns
// ErrInvalidInput when the header is missing entirely; an empty header
// yields a zero Result.
func FromRequest(r *http.Request) (Result, error) {
	return fromRequest(r, Parse)
}

func fromRequest(r *http.Request, parse ParseFunc) (Result, error) {
	if r == nil {
		return Result{}, ErrInvalidInput
	}
	values := r.Header.Values(Header)
	if len(values) == 0 {
		return Result{}, ErrInvalidInput
	}
	return parse(values[0]), nil
}

// Middleware classifies every request with Parse and stores the result in
// the request context.
func Middleware(next http.Handler) http.Handler {
	return NewMiddleware(Parse)(next)
}

// NewMiddleware is Middleware with a custom parse function, typically a
// cache in front of Parse. Requests without a User-Agent header pass
// through untouched.
func NewMiddleware(parse ParseFunc) func(http.Handler) http.Handler {
	if parse == nil {
		parse = Parse
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res, err := fromRequest(r, parse)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), res)))
		})
	}
}
