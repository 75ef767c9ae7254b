package useragent

import "regexp"

var (
	// The first parenthesised clause, shortest match.
	clauseRegex = regexp.MustCompile(`\((.*?)\)`)

	// Platform tokens inside the clause. A token may carry one space-led
	// modifier and must end at ';' or at the end of the clause.
	platformRegex = regexp.MustCompile(`(?im)(BB\d+;|Android|CrOS|Tizen|iPhone|iPad|iPod|Linux|(?:Open|Net|Free)BSD|Macintosh|Windows(?: Phone)?|Silk|linux-gnu|BlackBerry|PlayBook|X11|(?:New )?Nintendo (?:WiiU?|3?DS|Switch)|Xbox(?: One)?)(?: [^;]*)?(?:;|$)`)
)

// platformPriority resolves clauses that announce several platforms,
// e.g. "Linux; Android 11" or "X11; CrOS x86_64".
var platformPriority = []string{
	"Xbox One",
	"Xbox",
	"Windows Phone",
	"Tizen",
	"Android",
	"FreeBSD",
	"NetBSD",
	"OpenBSD",
	"CrOS",
	"X11",
}

var platformAliases = map[string]string{
	"linux-gnu": "Linux",
	"X11":       "Linux",
	"CrOS":      "Chrome OS",
}

// platformCandidates returns the distinct platform tokens of the first
// parenthesised clause in order of appearance.
func platformCandidates(ua string) []string {
	clause := clauseRegex.FindStringSubmatch(ua)
	if clause == nil {
		return nil
	}

	matches := platformRegex.FindAllStringSubmatch(clause[1], -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	candidates := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, ok := seen[m[1]]; ok {
			continue
		}
		seen[m[1]] = struct{}{}
		candidates = append(candidates, m[1])
	}
	return candidates
}

// parsePlatform picks a single platform from the candidates and normalises
// its spelling. An empty string means no platform was recognised.
func parsePlatform(ua string) string {
	candidates := platformCandidates(ua)

	var platform string
	switch len(candidates) {
	case 0:
		return ""
	case 1:
		platform = candidates[0]
	default:
		platform = candidates[0]
		for _, p := range platformPriority {
			if contains(candidates, p) {
				platform = p
				break
			}
		}
	}

	if alias, ok := platformAliases[platform]; ok {
		return alias
	}
	return platform
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
