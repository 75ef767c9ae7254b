package useragent

import (
	"encoding/json"
	"fmt"
)

// Result is the classification of a User-Agent string.
// An empty field means the value could not be determined.
type Result struct {
	Platform string
	Browser  string
	Version  string
}

// IsZero reports whether nothing at all was recognised.
func (r Result) IsZero() bool {
	return r.Platform == "" && r.Browser == "" && r.Version == ""
}

// String returns a short identifier such as "Chrome/58.0 (Windows)",
// suitable for logs.
func (r Result) String() string {
	if r.IsZero() {
		return "unknown"
	}
	browser := r.Browser
	if browser == "" {
		browser = "unknown"
	}
	if r.Version != "" {
		browser += "/" + r.Version
	}
	if r.Platform == "" {
		return browser
	}
	return fmt.Sprintf("%s (%s)", browser, r.Platform)
}

type resultJSON struct {
	Platform *string `json:"platform"`
	Browser  *string `json:"browser"`
	Version  *string `json:"version"`
}

// MarshalJSON encodes absent fields as null rather than "".
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(resultJSON{
		Platform: nullable(r.Platform),
		Browser:  nullable(r.Browser),
		Version:  nullable(r.Version),
	})
}

// UnmarshalJSON accepts both null and string fields.
func (r *Result) UnmarshalJSON(data []byte) error {
	var raw resultJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = Result{
		Platform: deref(raw.Platform),
		Browser:  deref(raw.Browser),
		Version:  deref(raw.Version),
	}
	return nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Parse classifies a User-Agent string. It never fails: strings that match
// nothing produce a zero Result. "" and "0" count as no User-Agent at all.
func Parse(ua string) Result {
	if ua == "" || ua == "0" {
		return Result{}
	}

	platform := parsePlatform(ua)

	toks := extractTokens(ua)
	if len(toks) == 0 {
		return parseLeading(ua, platform)
	}

	return disambiguate(input{
		tokens:   toks,
		platform: platform,
		revision: extractRevision(ua),
	})
}

// ParseOptional classifies ua, or the first fallback when ua is nil.
// It returns ErrInvalidInput when neither is available.
func ParseOptional(ua *string, fallback ...string) (Result, error) {
	switch {
	case ua != nil:
		return Parse(*ua), nil
	case len(fallback) > 0:
		return Parse(fallback[0]), nil
	default:
		return Result{}, ErrInvalidInput
	}
}
