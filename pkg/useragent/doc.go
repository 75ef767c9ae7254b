// Package useragent classifies raw HTTP User-Agent strings into three fields:
// platform (operating system or device family), browser and version.
//
// User-Agent strings follow no grammar, only decades of overlapping
// conventions, so the classifier is a best-effort heuristic rather than a
// parser. Unrecognised input is never an error: it yields a Result with some
// or all fields absent (empty).
//
// # Architecture
//
// Parse runs three stages in sequence, with no feedback between them:
//
//	┌────────────┐  UA string ┌───────────────┐
//	│   Parse    │───────────▶│  platform.go  │  first (...) clause → platform
//	└────────────┘            └───────────────┘
//	      │                   ┌───────────────┐
//	      ├──────────────────▶│  browser.go   │  ordered (name, version) tokens
//	      │                   └───────────────┘
//	      │                   ┌───────────────┐
//	      └──────────────────▶│  rules.go     │──► final Result
//	                          └───────────────┘
//
// The disambiguation stage is an ordered slice of rules; the first rule that
// fires decides the answer. Rule order is significant and mirrors the
// precedence real-world UA strings need (a Kindle Fire also announces Safari,
// Chrome-based browsers also announce Chrome, and so on).
//
// # Usage
//
//	res := useragent.Parse(r.UserAgent())
//	log.Printf("platform=%s browser=%s version=%s", res.Platform, res.Browser, res.Version)
//
// When the caller needs to tell "no header at all" apart from an empty one,
// use FromRequest or ParseOptional, which return ErrInvalidInput when no
// User-Agent is available:
//
//	res, err := useragent.FromRequest(r)
//	if errors.Is(err, useragent.ErrInvalidInput) {
//	    // no User-Agent header was sent
//	}
//
// Middleware stores the Result of every request in its context, retrievable
// with FromContext.
//
// # Concurrency
//
// Parse is a pure function. All patterns are compiled once at package
// initialisation with Go's RE2 engine, which matches in linear time, so
// hostile input cannot trigger catastrophic backtracking.
package useragent
