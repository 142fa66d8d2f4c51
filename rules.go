package rfc3986

import "regexp"

// isValid implements the shared optional-value rule: a required value must
// be present and fully match the production; an optional value passes when
// absent or fully matching. Anchoring lives in the matchers themselves.
func isValid(value *string, matcher *regexp.Regexp, require bool) bool {
	if value == nil {
		return !require
	}
	return matcher.MatchString(*value)
}

// SchemeIsValid reports whether scheme conforms to the scheme production.
// A nil scheme is valid unless require is set.
func SchemeIsValid(scheme *string, require bool) bool {
	return isValid(scheme, schemeMatcher, require)
}

// PathIsValid reports whether path conforms to any of the RFC 3986 path
// forms. A nil path is valid unless require is set.
func PathIsValid(path *string, require bool) bool {
	return isValid(path, pathMatcher, require)
}

// QueryIsValid reports whether query conforms to the query production.
// A nil query is valid unless require is set.
func QueryIsValid(query *string, require bool) bool {
	return isValid(query, queryMatcher, require)
}

// FragmentIsValid reports whether fragment conforms to the fragment
// production. A nil fragment is valid unless require is set.
func FragmentIsValid(fragment *string, require bool) bool {
	return isValid(fragment, fragmentMatcher, require)
}

// AuthorityIsValid reports whether authority conforms to the subauthority
// grammar. When host is supplied and looks like a dotted quad, the loose
// grammar match is tightened with the byte-range check, so "999.1.1.1"
// fails even though reg-name would accept it.
func AuthorityIsValid(authority, host *string, require bool) bool {
	validated := isValid(authority, subauthorityMatcher, require)
	if validated && host != nil && ipv4Matcher.MatchString(*host) {
		return ValidIPv4HostAddress(*host)
	}
	return validated
}
