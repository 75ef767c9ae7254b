package api

import (
	"unicode/utf8"

	mssola "github.com/mssola/useragent"

	"github.com/dmitrymomot/uaparse/pkg/useragent"
)

// Classification is one entry of a classify response. Absent fields are
// null.
type Classification struct {
	UA       string  `json:"ua"`
	Platform *string `json:"platform"`
	Browser  *string `json:"browser"`
	Version  *string `json:"version"`
	Hints    Hints   `json:"hints"`
}

// Hints are coarse flags from a second, independent parser. They never
// replace the platform, browser or version fields.
type Hints struct {
	Mobile bool `json:"mobile"`
	Bot    bool `json:"bot"`
}

func newClassification(ua string, res useragent.Result) Classification {
	h := mssola.New(ua)
	return Classification{
		UA:       ua,
		Platform: optional(res.Platform),
		Browser:  optional(res.Browser),
		Version:  optional(res.Version),
		Hints:    Hints{Mobile: h.Mobile(), Bot: h.Bot()},
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// truncate cuts ua to at most n bytes without splitting a UTF-8 sequence.
// A non-positive n disables the limit.
func truncate(ua string, n int) string {
	if n <= 0 || len(ua) <= n {
		return ua
	}
	for n > 0 && !utf8.RuneStart(ua[n]) {
		n--
	}
	return ua[:n]
}
