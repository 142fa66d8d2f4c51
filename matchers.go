package rfc3986

import (
	"regexp"
	"strconv"
	"strings"
)

// Character sets from RFC 3986 section 2. Percent escapes are matched as a
// whole triplet so that a bare "%" never slips through.
const (
	pctEncoded          = `%[0-9A-Fa-f]{2}`
	unreservedSubDelims = `a-zA-Z0-9\-._~!$&'()*+,;=`
	h16                 = `[0-9A-Fa-f]{1,4}`
)

// ipv4Shape is the lightweight dotted-quad form. It deliberately accepts
// out-of-range octets like 999; AuthorityIsValid applies the strict
// byte-range check on top of it.
const ipv4Shape = `(?:[0-9]{1,3}\.){3}[0-9]{1,3}`

const ls32 = `(?:` + h16 + `:` + h16 + `|` + ipv4Shape + `)`

// ipv6Address spells out all nine alternatives of the IPv6address rule.
const ipv6Address = `(?:` +
	`(?:` + h16 + `:){6}` + ls32 +
	`|::(?:` + h16 + `:){5}` + ls32 +
	`|(?:` + h16 + `)?::(?:` + h16 + `:){4}` + ls32 +
	`|(?:(?:` + h16 + `:)?` + h16 + `)?::(?:` + h16 + `:){3}` + ls32 +
	`|(?:(?:` + h16 + `:){0,2}` + h16 + `)?::(?:` + h16 + `:){2}` + ls32 +
	`|(?:(?:` + h16 + `:){0,3}` + h16 + `)?::` + h16 + `:` + ls32 +
	`|(?:(?:` + h16 + `:){0,4}` + h16 + `)?::` + ls32 +
	`|(?:(?:` + h16 + `:){0,5}` + h16 + `)?::` + h16 +
	`|(?:(?:` + h16 + `:){0,6}` + h16 + `)?::` +
	`)`

const (
	ipvFuture       = `v[0-9A-Fa-f]+\.[` + unreservedSubDelims + `:]+`
	ipLiteral       = `\[(?:` + ipv6Address + `|` + ipvFuture + `)\]`
	regName         = `(?:[` + unreservedSubDelims + `]|` + pctEncoded + `)*`
	hostPattern     = `(?:` + ipLiteral + `|` + ipv4Shape + `|` + regName + `)`
	userinfoPattern = `(?:[` + unreservedSubDelims + `:]|` + pctEncoded + `)*`
	portPattern     = `[0-9]*`

	subauthorityPattern = `(?:(?P<userinfo>` + userinfoPattern + `)@)?` +
		`(?P<host>` + hostPattern + `)` +
		`(?::(?P<port>` + portPattern + `))?`
)

// Compiled grammar matchers, one per RFC 3986 production. All are anchored at
// both ends: a matcher answers whether the entire string conforms to the
// production, never whether some prefix does. They are immutable and safe for
// concurrent use.
var (
	schemeMatcher = regexp.MustCompile(`\A[a-zA-Z][a-zA-Z0-9+.\-]*\z`)

	// subauthorityMatcher covers the authority rule without the leading "//":
	// [ userinfo "@" ] host [ ":" port ].
	subauthorityMatcher = regexp.MustCompile(`\A` + subauthorityPattern + `\z`)

	// pathMatcher accepts the union of path-abempty, path-absolute,
	// path-rootless, path-noscheme and path-empty: any run of pchar and "/".
	pathMatcher = regexp.MustCompile(`\A(?:[` + unreservedSubDelims + `:@/]|` + pctEncoded + `)*\z`)

	// query and fragment additionally permit "/" and "?".
	queryMatcher    = regexp.MustCompile(`\A(?:[` + unreservedSubDelims + `:@/?]|` + pctEncoded + `)*\z`)
	fragmentMatcher = regexp.MustCompile(`\A(?:[` + unreservedSubDelims + `:@/?]|` + pctEncoded + `)*\z`)

	ipv4Matcher = regexp.MustCompile(`\A` + ipv4Shape + `\z`)
)

// ValidIPv4HostAddress reports whether host is a well-formed IPv4 address:
// exactly four dot-separated parts, each a base-10 integer in [0, 255].
// Leading zeros are tolerated ("192.068.1.1" passes).
func ValidIPv4HostAddress(host string) bool {
	parts := strings.Split(host, ".")
	if len(parts) != 4 {
		return false
	}
	for _, part := range parts {
		octet, err := strconv.Atoi(part)
		if err != nil || octet < 0 || octet > 255 {
			return false
		}
	}
	return true
}
