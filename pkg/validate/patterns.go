package validate

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/goliatone/go-formcheck/pkg/model"
)

var (
	// telPattern restricts telephone values to digits and '+'; at least one
	// digit is checked separately since RE2 has no lookahead.
	telPattern = regexp.MustCompile(`^[0-9+]+$`)
	hasDigit   = regexp.MustCompile(`[0-9]`)

	// emailPattern accepts a simple local@domain.tld shape.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// urlPattern accepts an optional http(s):// prefix, a label containing a
	// dot, and a TLD-like suffix of at least two non-space characters.
	urlPattern = regexp.MustCompile(`^(https?://)?[^\s]+\.[^\s]{2,}$`)
)

// freeMailDomains lists common free and consumer email providers rejected
// when a field is flagged business-email-only.
var freeMailDomains = map[string]struct{}{
	"gmail.com":      {},
	"googlemail.com": {},
	"yahoo.com":      {},
	"ymail.com":      {},
	"hotmail.com":    {},
	"outlook.com":    {},
	"live.com":       {},
	"msn.com":        {},
	"icloud.com":     {},
	"me.com":         {},
	"aol.com":        {},
	"protonmail.com": {},
	"proton.me":      {},
	"yandex.com":     {},
	"yandex.ru":      {},
	"gmx.com":        {},
	"gmx.de":         {},
	"zoho.com":       {},
	"mail.com":       {},
	"inbox.com":      {},
	"fastmail.com":   {},
	"hey.com":        {},
}

func telOK(value string) bool {
	return telPattern.MatchString(value) && hasDigit.MatchString(value)
}

func emailOK(value string, businessOnly bool) bool {
	if !emailPattern.MatchString(value) {
		return false
	}
	if !businessOnly {
		return true
	}
	at := strings.LastIndex(value, "@")
	domain := strings.ToLower(value[at+1:])
	_, free := freeMailDomains[domain]
	return !free
}

func urlOK(value string) bool {
	return urlPattern.MatchString(value)
}

func numberOK(value string, cons model.Constraints) bool {
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return false
	}
	if cons.Min != nil && parsed < *cons.Min {
		return false
	}
	if cons.Max != nil && parsed > *cons.Max {
		return false
	}
	return true
}

// patternOK fully matches value against an author-declared pattern. An
// unparsable pattern is treated as no constraint so one bad attribute does
// not break the whole form.
func patternOK(value, pattern string) bool {
	if pattern == "" {
		return true
	}
	re, err := regexp.Compile(`^(?:` + pattern + `)$`)
	if err != nil {
		return true
	}
	return re.MatchString(value)
}
