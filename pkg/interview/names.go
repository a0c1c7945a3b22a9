package interview

import (
	"regexp"
	"strings"
)

// nameMatcher is one heuristic for spotting a self-introduction. Matchers
// are tried in order and the first capture wins.
type nameMatcher struct {
	name string
	re   *regexp.Regexp
}

// ordered from most to least explicit; the bare-word matcher goes last since
// it fires on any short single-word reply
var nameMatchers = []nameMatcher{
	{"my name is", regexp.MustCompile(`(?i)\bmy\s+name\s+is\s+([A-Za-z]+)`)},
	{"i'm", regexp.MustCompile(`(?i)\bi['\x60]m\s+([A-Za-z]+)`)},
	{"i am", regexp.MustCompile(`(?i)\bi\s+am\s+([A-Za-z]+)`)},
	{"call me", regexp.MustCompile(`(?i)\bcall\s+me\s+([A-Za-z]+)`)},
	{"this is", regexp.MustCompile(`(?i)\bthis\s+is\s+([A-Za-z]+)`)},
	{"x here", regexp.MustCompile(`(?i)^\s*([A-Za-z]+)\s+here\b`)},
	{"bare name", regexp.MustCompile(`^\s*([A-Za-z]{2,20})[.!]?\s*$`)},
}

// ExtractName scans freeform text for a self-introduction and returns the
// normalized name, or empty string when nothing plausible is found. Pure
// function; the caller decides when extraction is appropriate.
func ExtractName(text string) string {
	for _, m := range nameMatchers {
		match := m.re.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		if name := normalizeName(match[1]); name != "" {
			return name
		}
	}
	return ""
}

// normalizeName title-cases the captured token, rejecting captures shorter
// than two letters
func normalizeName(token string) string {
	if len(token) < 2 {
		return ""
	}
	return strings.ToUpper(token[:1]) + strings.ToLower(token[1:])
}
