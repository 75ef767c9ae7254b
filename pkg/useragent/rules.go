package useragent

import (
	"regexp"
	"strings"
)

// input is everything the disambiguation rules may look at.
type input struct {
	tokens   tokens
	platform string
	revision string
}

// defaults is the answer when no rule fires: the first token pairing and
// the platform from the parenthesised clause.
func (in input) defaults() Result {
	return Result{
		Platform: in.platform,
		Browser:  in.tokens[0].name,
		Version:  in.tokens[0].version,
	}
}

// rule is one entry of the override chain. when reports whether the rule
// fires and which token triggered it; then builds the answer.
type rule struct {
	name string
	when func(in input) (hit, bool)
	then func(in input, h hit) Result
}

// findRule fires when any of the names is present in the token list.
func findRule(names ...string) func(in input) (hit, bool) {
	return func(in input) (hit, bool) {
		return in.tokens.find(names...)
	}
}

// pairedVersion keeps the defaults but takes the version of the hit token
// and renames the browser.
func pairedVersion(browser string) func(in input, h hit) Result {
	return func(in input, h hit) Result {
		res := in.defaults()
		res.Browser = browser
		res.Version = in.tokens.versionAt(h.index)
		return res
	}
}

var (
	playstationRegex = regexp.MustCompile(`(?i)playstation \d`)
	nonDigitRegex    = regexp.MustCompile(`\D`)
)

var puffinPlatforms = map[string]string{
	"IP": "iPhone",
	"IT": "iPad",
	"AP": "Android",
	"AT": "Android",
	"WP": "Windows Phone",
	"WT": "Windows",
}

// rules is evaluated top to bottom; order is significant.
var rules = []rule{
	{
		name: "gecko-rebrand",
		when: func(in input) (hit, bool) {
			name := in.tokens[0].name
			return hit{}, name == "Iceweasel" || strings.EqualFold(name, "icecat")
		},
		then: func(in input, _ hit) Result {
			res := in.defaults()
			res.Browser = "Firefox"
			return res
		},
	},
	{
		name: "playstation-vita",
		when: findRule("Playstation Vita"),
		then: func(in input, _ hit) Result {
			res := in.defaults()
			res.Platform = "PlayStation Vita"
			res.Browser = "Browser"
			return res
		},
	},
	{
		name: "kindle-fire",
		when: findRule("Kindle Fire", "Silk"),
		then: func(in input, h hit) Result {
			res := in.defaults()
			res.Browser = "Kindle"
			if h.name == "Silk" {
				res.Browser = "Silk"
			}
			res.Platform = "Kindle Fire"
			res.Version = in.tokens.versionAt(h.index)
			if res.Version == "" || !isDigit(res.Version[0]) {
				i := in.tokens.indexExact("Version")
				if i < 0 {
					i = 0
				}
				res.Version = in.tokens.versionAt(i)
			}
			return res
		},
	},
	{
		name: "nintendo",
		when: func(in input) (hit, bool) {
			if h, ok := in.tokens.find("NintendoBrowser"); ok {
				return h, true
			}
			// The 3DS browser does not always name itself; the version then
			// stays with the first token.
			return hit{}, in.platform == "Nintendo 3DS"
		},
		then: pairedVersion("NintendoBrowser"),
	},
	{
		name: "kindle",
		when: findRule("Kindle"),
		then: func(in input, h hit) Result {
			res := in.defaults()
			res.Browser = in.tokens[h.index].name
			res.Platform = h.name
			res.Version = in.tokens.versionAt(h.index)
			return res
		},
	},
	{
		name: "opera-next",
		when: findRule("OPR"),
		then: pairedVersion("Opera Next"),
	},
	{
		name: "opera",
		when: findRule("Opera"),
		then: func(in input, h hit) Result {
			res := in.defaults()
			res.Browser = h.name
			index := h.index
			if v, ok := in.tokens.find("Version"); ok {
				index = v.index
			}
			res.Version = in.tokens.versionAt(index)
			return res
		},
	},
	{
		name: "puffin",
		when: findRule("Puffin"),
		then: func(in input, h hit) Result {
			res := in.defaults()
			res.Browser = h.name
			res.Version = in.tokens.versionAt(h.index)
			// Puffin appends a device code such as "IP" or "AT" to its version.
			if len(res.Version) > 3 {
				suffix := res.Version[len(res.Version)-2:]
				if isUpper(suffix) {
					res.Version = res.Version[:len(res.Version)-2]
					if platform, ok := puffinPlatforms[suffix]; ok {
						res.Platform = platform
					}
				}
			}
			return res
		},
	},
	{
		name: "yandex",
		when: findRule("YaBrowser"),
		then: pairedVersion("Yandex"),
	},
	{
		name: "self-named",
		when: findRule("IEMobile", "Edge", "Midori", "Vivaldi", "SamsungBrowser", "Valve Steam Tenfoot", "Chrome", "HeadlessChrome"),
		then: func(in input, h hit) Result {
			return pairedVersion(h.name)(in, h)
		},
	},
	{
		name: "trident-revision",
		when: func(in input) (hit, bool) {
			if in.revision == "" {
				return hit{}, false
			}
			return in.tokens.find("Trident")
		},
		then: func(in input, _ hit) Result {
			res := in.defaults()
			res.Browser = "MSIE"
			res.Version = in.revision
			return res
		},
	},
	{
		name: "uc-browser",
		when: findRule("UCBrowser"),
		then: pairedVersion("UC Browser"),
	},
	{
		name: "chrome-ios",
		when: findRule("CriOS"),
		then: pairedVersion("Chrome"),
	},
	{
		name: "webkit",
		when: func(in input) (hit, bool) {
			return hit{}, in.tokens[0].name == "AppleWebKit"
		},
		then: func(in input, _ hit) Result {
			res := in.defaults()
			index := 0
			switch {
			case res.Platform == "Android":
				res.Browser = "Android Browser"
			case strings.HasPrefix(res.Platform, "BB"):
				res.Browser = "BlackBerry Browser"
				res.Platform = "BlackBerry"
			case res.Platform == "BlackBerry" || res.Platform == "PlayBook":
				res.Browser = "BlackBerry Browser"
			default:
				if h, ok := in.tokens.find("Safari"); ok {
					res.Browser, index = h.name, h.index
				} else if h, ok := in.tokens.find("TizenBrowser"); ok {
					res.Browser, index = h.name, h.index
				}
			}
			if v, ok := in.tokens.find("Version"); ok {
				index = v.index
			}
			res.Version = in.tokens.versionAt(index)
			return res
		},
	},
	{
		name: "netfront",
		when: func(in input) (hit, bool) {
			for i, tok := range in.tokens {
				if playstationRegex.MatchString(tok.name) {
					return hit{index: i, name: tok.name}, true
				}
			}
			return hit{}, false
		},
		then: func(in input, h hit) Result {
			res := in.defaults()
			res.Platform = "PlayStation " + nonDigitRegex.ReplaceAllString(h.name, "")
			res.Browser = "NetFront"
			return res
		},
	},
}

// disambiguate applies the first matching rule, or the defaults when none
// fires. The token list must not be empty.
func disambiguate(in input) Result {
	for _, r := range rules {
		if h, ok := r.when(in); ok {
			return r.then(in, h)
		}
	}
	return in.defaults()
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isUpper(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return s != ""
}
