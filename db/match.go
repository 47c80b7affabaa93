package db

import (
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/rlch/woql"
	"github.com/rlch/woql/query"
)

// escape quotes the metacharacters of s. Spaces and '#' are left alone;
// they are only special in free-spacing mode and not every engine accepts
// them escaped.
func escape(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == ' ' || r == '#' {
			b.WriteRune(r)
			continue
		}
		b.WriteString(regexp2.Escape(string(r)))
	}
	return b.String()
}

func match(str any, pattern string) *woql.Builder {
	return woql.New().Regexp(query.String(pattern), str, Fresh("match"))
}

// StartsWith holds when str begins with prefix, taken literally.
func StartsWith(str any, prefix string) *woql.Builder {
	return match(str, "^"+escape(prefix))
}

// EndsWith holds when str ends with suffix, taken literally.
func EndsWith(str any, suffix string) *woql.Builder {
	return match(str, escape(suffix)+"$")
}

// Contains holds when str contains sub, taken literally.
func Contains(str any, sub string) *woql.Builder {
	return match(str, escape(sub))
}
