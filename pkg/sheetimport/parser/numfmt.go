package parser

import (
	"strings"

	"github.com/xuri/nfp"
)

// builtInDateFormats are the built-in number format ids that render dates.
var builtInDateFormats = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 22: true,
	27: true, 28: true, 29: true, 30: true, 31: true,
	34: true, 35: true, 36: true,
	50: true, 51: true, 52: true, 53: true, 54: true,
	57: true, 58: true,
}

// IsDateFormat reports whether a number format renders a calendar date.
// Time-only formats (h:mm, mm:ss) do not count.
func IsDateFormat(id int, code string) bool {
	if builtInDateFormats[id] {
		return true
	}
	if code == "" {
		return false
	}
	p := nfp.NumberFormatParser()
	for _, section := range p.Parse(code) {
		for _, tok := range section.Items {
			if tok.TType != nfp.TokenTypeDateTimes {
				continue
			}
			v := strings.ToLower(tok.TValue)
			if strings.ContainsAny(v, "yd") || strings.Contains(v, "mmm") {
				return true
			}
		}
	}
	return false
}
