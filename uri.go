package rfc3986

import "strings"

// Reference holds the components of a parsed URI reference. Every field is
// optional: a nil pointer means the component is absent, which is not the
// same as present-but-empty (e.g. "http://example.com?" carries an empty
// query, "http://example.com" carries none).
//
// Reference values are treated as read-only by this package. Obtain one from
// ParseReference or build it directly.
type Reference struct {
	Scheme   *string
	Userinfo *string
	Host     *string
	Port     *string
	Path     *string
	Query    *string
	Fragment *string
}

// Component names recognized by Validator.RequireComponents.
const (
	ComponentScheme   = "scheme"
	ComponentUserinfo = "userinfo"
	ComponentHost     = "host"
	ComponentPort     = "port"
	ComponentPath     = "path"
	ComponentQuery    = "query"
	ComponentFragment = "fragment"
)

// componentAccessors maps each component name to its field, replacing the
// original's reflective attribute lookup. The map doubles as the fixed set
// of recognized component names.
var componentAccessors = map[string]func(*Reference) *string{
	ComponentScheme:   func(r *Reference) *string { return r.Scheme },
	ComponentUserinfo: func(r *Reference) *string { return r.Userinfo },
	ComponentHost:     func(r *Reference) *string { return r.Host },
	ComponentPort:     func(r *Reference) *string { return r.Port },
	ComponentPath:     func(r *Reference) *string { return r.Path },
	ComponentQuery:    func(r *Reference) *string { return r.Query },
	ComponentFragment: func(r *Reference) *string { return r.Fragment },
}

// Authority recomposes the [userinfo "@"] host [":" port] segment, or nil
// when the reference has no authority at all.
func (r *Reference) Authority() *string {
	if r == nil || (r.Userinfo == nil && r.Host == nil && r.Port == nil) {
		return nil
	}
	var sb strings.Builder
	if r.Userinfo != nil {
		sb.WriteString(*r.Userinfo)
		sb.WriteByte('@')
	}
	if r.Host != nil {
		sb.WriteString(*r.Host)
	}
	if r.Port != nil {
		sb.WriteByte(':')
		sb.WriteString(*r.Port)
	}
	authority := sb.String()
	return &authority
}

// String recomposes the reference per RFC 3986 section 5.3.
func (r *Reference) String() string {
	if r == nil {
		return ""
	}
	var sb strings.Builder
	if r.Scheme != nil {
		sb.WriteString(*r.Scheme)
		sb.WriteByte(':')
	}
	if authority := r.Authority(); authority != nil {
		sb.WriteString("//")
		sb.WriteString(*authority)
	}
	if r.Path != nil {
		sb.WriteString(*r.Path)
	}
	if r.Query != nil {
		sb.WriteByte('?')
		sb.WriteString(*r.Query)
	}
	if r.Fragment != nil {
		sb.WriteByte('#')
		sb.WriteString(*r.Fragment)
	}
	return sb.String()
}
