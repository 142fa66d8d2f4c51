package rfc3986

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidAuthority is reported when the authority segment of a reference
// does not conform to the subauthority grammar.
var ErrInvalidAuthority = errors.New("invalid authority")

// ParseError is returned by ParseReference for inputs it cannot split into
// components.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// referenceMatcher is the component-splitting expression from RFC 3986
// appendix B. It is purely syntactic: it separates components without
// judging their contents, which is the validators' job.
var referenceMatcher = regexp.MustCompile(
	`\A(?:(?P<scheme>[^:/?#]+):)?(?://(?P<authority>[^/?#]*))?` +
		`(?P<path>[^?#]*)(?:\?(?P<query>[^#]*))?(?:#(?P<fragment>.*))?\z`,
)

var (
	refSchemeIdx    = referenceMatcher.SubexpIndex("scheme")
	refAuthorityIdx = referenceMatcher.SubexpIndex("authority")
	refPathIdx      = referenceMatcher.SubexpIndex("path")
	refQueryIdx     = referenceMatcher.SubexpIndex("query")
	refFragmentIdx  = referenceMatcher.SubexpIndex("fragment")

	subUserinfoIdx = subauthorityMatcher.SubexpIndex("userinfo")
	subHostIdx     = subauthorityMatcher.SubexpIndex("host")
	subPortIdx     = subauthorityMatcher.SubexpIndex("port")
)

// ParseReference splits a URI reference string into its components. The
// split is syntactic; the result may still fail validation. An empty path
// is reported as absent so that required-component checks treat
// "http://example.com" as having no path.
//
// The only rejected inputs are those whose authority segment cannot be
// split into userinfo, host and port.
func ParseReference(s string) (*Reference, error) {
	m := referenceMatcher.FindStringSubmatchIndex(s)
	if m == nil {
		// The appendix B expression matches any string; this is unreachable
		// but kept so a future pattern change fails loudly.
		return nil, &ParseError{Input: s, Err: errors.New("not a URI reference")}
	}

	ref := &Reference{
		Scheme:   group(s, m, refSchemeIdx),
		Query:    group(s, m, refQueryIdx),
		Fragment: group(s, m, refFragmentIdx),
	}
	if path := group(s, m, refPathIdx); path != nil && *path != "" {
		ref.Path = path
	}

	if authority := group(s, m, refAuthorityIdx); authority != nil {
		am := subauthorityMatcher.FindStringSubmatchIndex(*authority)
		if am == nil {
			return nil, &ParseError{Input: s, Err: ErrInvalidAuthority}
		}
		ref.Userinfo = group(*authority, am, subUserinfoIdx)
		ref.Host = group(*authority, am, subHostIdx)
		ref.Port = group(*authority, am, subPortIdx)
	}
	return ref, nil
}

// group extracts a named submatch, keeping the absent/empty distinction: a
// group that did not participate in the match yields nil, a group that
// matched the empty string yields a pointer to "".
func group(s string, m []int, idx int) *string {
	if idx < 0 || m[2*idx] < 0 {
		return nil
	}
	v := s[m[2*idx]:m[2*idx+1]]
	return &v
}
