package hello

import "strings"

// lookupQuery finds key in a raw query string using lenient form decoding:
// pairs split on '&' only, '+' decodes to a space, valid %XX escapes are
// decoded and malformed ones are kept verbatim. url.ParseQuery drops whole
// pairs containing ';' or a bad escape, which would turn a supplied name into
// an absent one. When key repeats, the last value wins.
func lookupQuery(rawQuery, key string) (string, bool) {
	var (
		value string
		found bool
	)
	for pair := range strings.SplitSeq(rawQuery, "&") {
		if pair == "" {
			continue
		}
		k, v, _ := strings.Cut(pair, "=")
		if formDecode(k) != key {
			continue
		}
		value = formDecode(v)
		found = true
	}
	return value, found
}

// formDecode percent-decodes s, leaving malformed escapes untouched and
// replacing invalid UTF-8 with U+FFFD.
func formDecode(s string) string {
	if !strings.ContainsAny(s, "+%") {
		return strings.ToValidUTF8(s, "\uFFFD")
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '+':
			b.WriteByte(' ')
		case c == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]):
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		default:
			b.WriteByte(c)
		}
	}
	return strings.ToValidUTF8(b.String(), "\uFFFD")
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
