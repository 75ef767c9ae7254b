package useragent

import (
	"regexp"
	"strings"
)

var (
	// Browser and engine names, each followed by a version after ':', '/' or
	// a space. A bare "/" (optionally followed by letters) matches with an
	// empty version. Alternation order matters: earlier names win at the
	// same position.
	tokenRegex = regexp.MustCompile(`(?i)(Camino|Kindle(?: Fire)?|Firefox|Iceweasel|IceCat|Safari|MSIE|Trident|AppleWebKit|TizenBrowser|(?:Headless)?Chrome|YaBrowser|Vivaldi|IEMobile|Opera|OPR|Silk|Midori|Edge|CriOS|UCBrowser|Puffin|SamsungBrowser|Baiduspider|Googlebot|YandexBot|bingbot|Lynx|Version|Wget|curl|Valve Steam Tenfoot|NintendoBrowser|PLAYSTATION (?:\d|Vita)+)\)?;?(?:[:/ ]([0-9A-Z.]+)|/[A-Z]*)`)

	// Leading "name/version" of non-browser clients such as HTTP libraries.
	leadingRegex = regexp.MustCompile(`(?i)^([A-Z0-9\-]+)(?:/([0-9A-Z.]+))?`)

	// Gecko-style revision, used to recover the real IE 11+ version.
	revisionRegex = regexp.MustCompile(`(?is)rv:([0-9A-Z.]+)`)
)

// token is one (name, version) pairing found in the UA string.
// Version is empty when the name was followed by a bare "/".
type token struct {
	name    string
	version string
}

type tokens []token

// hit is the outcome of a successful lookup: the position of the matching
// token and the spelling of the name that was searched for.
type hit struct {
	index int
	name  string
}

// find looks the names up in order and reports the first token, compared
// case-insensitively, matching the earliest name that is present at all.
func (t tokens) find(names ...string) (hit, bool) {
	for _, name := range names {
		for i, tok := range t {
			if strings.EqualFold(tok.name, name) {
				return hit{index: i, name: name}, true
			}
		}
	}
	return hit{}, false
}

// indexExact returns the position of the first token spelled exactly as
// name, or -1.
func (t tokens) indexExact(name string) int {
	for i, tok := range t {
		if tok.name == name {
			return i
		}
	}
	return -1
}

// versionAt returns the version paired with the token at i.
func (t tokens) versionAt(i int) string {
	if i < 0 || i >= len(t) {
		return ""
	}
	return t[i].version
}

// extractTokens scans the whole UA string for browser tokens in order of
// appearance. Duplicates are kept.
func extractTokens(ua string) tokens {
	matches := tokenRegex.FindAllStringSubmatch(ua, -1)
	if len(matches) == 0 {
		return nil
	}
	result := make(tokens, 0, len(matches))
	for _, m := range matches {
		result = append(result, token{name: m[1], version: m[2]})
	}
	return result
}

// extractRevision returns the value of the first "rv:" marker, if any.
func extractRevision(ua string) string {
	if m := revisionRegex.FindStringSubmatch(ua); m != nil {
		return m[1]
	}
	return ""
}

// parseLeading handles strings without any known browser token. Clients
// such as "Go-http-client/1.1" announce themselves with a leading
// name/version pair; strings claiming to be Mozilla are left unclassified.
func parseLeading(ua, platform string) Result {
	if strings.HasPrefix(strings.ToLower(ua), "mozilla") {
		return Result{}
	}
	m := leadingRegex.FindStringSubmatch(ua)
	if m == nil {
		return Result{}
	}
	return Result{Platform: platform, Browser: m[1], Version: m[2]}
}
