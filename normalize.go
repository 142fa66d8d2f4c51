package rfc3986

import (
	"strings"

	"golang.org/x/net/idna"
)

// NormalizeScheme lowercases a scheme so that HTTP, Http and http compare
// equal, per RFC 3986 section 6.2.2.1.
func NormalizeScheme(scheme string) string {
	return strings.ToLower(scheme)
}

// NormalizeHost canonicalizes a host for comparison: registered names are
// lowercased and, when they contain non-ASCII labels, mapped to their ASCII
// (punycode) form. Bracketed IP literals are only lowercased. If the IDNA
// mapping fails the lowercased input is returned unchanged, leaving the
// grammar matchers to reject it.
func NormalizeHost(host string) string {
	if host == "" {
		return host
	}
	if host[0] == '[' {
		return strings.ToLower(host)
	}
	lowered := strings.ToLower(host)
	if isASCII(lowered) {
		return lowered
	}
	ascii, err := idna.Lookup.ToASCII(lowered)
	if err != nil {
		return lowered
	}
	return ascii
}

// NormalizePercentEncoding rewrites percent escapes into their canonical
// form: escapes of unreserved characters are decoded ("%7E" -> "~") and the
// hex digits of all remaining escapes are uppercased ("%3a" -> "%3A").
// Anything that is not a full escape triplet is copied through untouched.
func NormalizePercentEncoding(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '%' || i+2 >= len(s) {
			sb.WriteByte(s[i])
			continue
		}
		hi, okHi := unhex(s[i+1])
		lo, okLo := unhex(s[i+2])
		if !okHi || !okLo {
			sb.WriteByte(s[i])
			continue
		}
		if b := hi<<4 | lo; isUnreserved(b) {
			sb.WriteByte(b)
		} else {
			sb.WriteByte('%')
			sb.WriteByte(upperHex(s[i+1]))
			sb.WriteByte(upperHex(s[i+2]))
		}
		i += 2
	}
	return sb.String()
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 127 {
			return false
		}
	}
	return true
}

func isUnreserved(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	case b == '-' || b == '.' || b == '_' || b == '~':
		return true
	}
	return false
}

func unhex(b byte) (byte, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

func upperHex(b byte) byte {
	if b >= 'a' && b <= 'f' {
		return b - 'a' + 'A'
	}
	return b
}
