package deliverability

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// commonDomains are the providers a typo is most likely aimed at.
var commonDomains = []string{
	"gmail.com",
	"googlemail.com",
	"outlook.com",
	"hotmail.com",
	"live.com",
	"yahoo.com",
	"icloud.com",
	"me.com",
	"aol.com",
	"protonmail.com",
	"proton.me",
	"gmx.com",
	"zoho.com",
	"fastmail.com",
}

// knownTypos maps frequent misspellings straight to their intended domain,
// covering cases edit distance alone would miss or rank wrong.
var knownTypos = map[string]string{
	"gmail.co":     "gmail.com",
	"gmail.cm":     "gmail.com",
	"gmial.com":    "gmail.com",
	"gamil.com":    "gmail.com",
	"gmali.com":    "gmail.com",
	"hotmail.co":   "hotmail.com",
	"hotmial.com":  "hotmail.com",
	"outlok.com":   "outlook.com",
	"yaho.com":     "yahoo.com",
	"yahooo.com":   "yahoo.com",
	"iclould.com":  "icloud.com",
	"protonmai.lc": "protonmail.com",
}

// maxEditDistance bounds how far a domain may sit from a known provider
// before a suggestion stops being plausible.
const maxEditDistance = 2

// DidYouMean returns a corrected address when the domain looks like a typo
// of a common provider, or "" when the address looks intentional. An exact
// match against a known provider never yields a suggestion.
func DidYouMean(email string) string {
	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" || domain == "" {
		return ""
	}
	domain = strings.ToLower(domain)

	for _, known := range commonDomains {
		if domain == known {
			return ""
		}
	}

	if fixed, ok := knownTypos[domain]; ok {
		return local + "@" + fixed
	}

	best := ""
	bestDist := maxEditDistance + 1
	for _, known := range commonDomains {
		d := levenshtein.ComputeDistance(domain, known)
		if d < bestDist {
			best = known
			bestDist = d
		}
	}
	if best == "" {
		return ""
	}
	return local + "@" + best
}
