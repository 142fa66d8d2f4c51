package rfc3986

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Validator accumulates policy constraints and checks parsed references
// against them. Configuration methods mutate the receiver and return it, so
// constraints can be chained:
//
//	v := rfc3986.NewValidator().
//		AllowSchemes("https").
//		RequireComponents("scheme", "host").
//		ForbidUseOfPassword()
//
// Repeated calls accumulate into the existing sets, they never replace
// them. A Validator must not be configured from multiple goroutines, but
// once configuration is done concurrent Validate calls are safe: Validate
// never mutates state.
type Validator struct {
	allowedSchemes  map[string]struct{}
	allowedHosts    map[string]struct{}
	allowedPorts    map[int]struct{}
	allowPassword   bool
	requirePresence map[string]bool
}

// NewValidator returns a Validator with no restrictions: every component is
// optional, all values are allowed and passwords are permitted.
func NewValidator() *Validator {
	return &Validator{
		allowedSchemes:  make(map[string]struct{}),
		allowedHosts:    make(map[string]struct{}),
		allowedPorts:    make(map[int]struct{}),
		allowPassword:   true,
		requirePresence: make(map[string]bool, len(componentAccessors)),
	}
}

// AllowSchemes restricts the scheme to the given values. Entries are
// normalized before being added, so AllowSchemes("HTTPS") permits "https".
func (v *Validator) AllowSchemes(schemes ...string) *Validator {
	for _, scheme := range schemes {
		v.allowedSchemes[NormalizeScheme(scheme)] = struct{}{}
	}
	return v
}

// AllowHosts restricts the host to the given values, normalized for
// comparison (lowercased, IDN labels mapped to their ASCII form).
func (v *Validator) AllowHosts(hosts ...string) *Validator {
	for _, host := range hosts {
		v.allowedHosts[NormalizeHost(host)] = struct{}{}
	}
	return v
}

// AllowPorts restricts the port to the given values. Values outside
// [0, 65535] are silently dropped. A value that does not parse as a base-10
// integer is caller misuse and panics with a *ConfigError.
func (v *Validator) AllowPorts(ports ...string) *Validator {
	for _, port := range ports {
		n, err := strconv.Atoi(port)
		if err != nil {
			panic(&ConfigError{Err: fmt.Errorf("%q: %w", port, ErrInvalidPort)})
		}
		if n >= 0 && n <= 65535 {
			v.allowedPorts[n] = struct{}{}
		}
	}
	return v
}

// AllowUseOfPassword permits a password in the userinfo component. This is
// the default.
func (v *Validator) AllowUseOfPassword() *Validator {
	v.allowPassword = true
	return v
}

// ForbidUseOfPassword makes Validate fail any reference whose userinfo
// carries a password.
func (v *Validator) ForbidUseOfPassword() *Validator {
	v.allowPassword = false
	return v
}

// RequireComponents marks the named components as mandatory. Names are
// case-insensitive and must belong to the fixed component set (scheme,
// userinfo, host, port, path, query, fragment); an unrecognized name is a
// configuration error and panics with a *ConfigError immediately, never at
// Validate time.
func (v *Validator) RequireComponents(components ...string) *Validator {
	for _, component := range components {
		name := strings.ToLower(component)
		if _, ok := componentAccessors[name]; !ok {
			panic(&ConfigError{Err: fmt.Errorf("%q: %w", component, ErrUnknownComponent)})
		}
		v.requirePresence[name] = true
	}
	return v
}

// AllowedSchemes returns the configured scheme allow-list, sorted.
func (v *Validator) AllowedSchemes() []string { return sortedKeys(v.allowedSchemes) }

// AllowedHosts returns the configured host allow-list, sorted.
func (v *Validator) AllowedHosts() []string { return sortedKeys(v.allowedHosts) }

// AllowedPorts returns the configured port allow-list, sorted.
func (v *Validator) AllowedPorts() []int {
	ports := make([]int, 0, len(v.allowedPorts))
	for port := range v.allowedPorts {
		ports = append(ports, port)
	}
	sort.Ints(ports)
	return ports
}

// Validate checks ref against the accumulated constraints. It returns nil
// when every constraint holds, otherwise one of *PasswordForbiddenError,
// *MissingComponentsError or *UnpermittedComponentError, all of which
// unwrap to ErrValidationFailed.
//
// The password check fails fast. Missing required components are collected
// and reported together in one error, sorted alphabetically. Allow-list
// checks run afterwards in scheme, host, port order.
func (v *Validator) Validate(ref *Reference) error {
	if ref == nil {
		ref = &Reference{}
	}

	if !v.allowPassword {
		if err := checkPassword(ref); err != nil {
			return err
		}
	}

	var missing []string
	for name, required := range v.requirePresence {
		if required && componentAccessors[name](ref) == nil {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return &MissingComponentsError{URI: ref, Components: missing}
	}

	if len(v.allowedSchemes) > 0 {
		scheme := deref(ref.Scheme)
		if ref.Scheme == nil || !member(v.allowedSchemes, NormalizeScheme(scheme)) {
			return &UnpermittedComponentError{URI: ref, Component: ComponentScheme, Value: scheme}
		}
	}
	if len(v.allowedHosts) > 0 {
		host := deref(ref.Host)
		if ref.Host == nil || !member(v.allowedHosts, NormalizeHost(host)) {
			return &UnpermittedComponentError{URI: ref, Component: ComponentHost, Value: host}
		}
	}
	if len(v.allowedPorts) > 0 {
		port := deref(ref.Port)
		n, err := strconv.Atoi(port)
		if ref.Port == nil || err != nil || !memberInt(v.allowedPorts, n) {
			return &UnpermittedComponentError{URI: ref, Component: ComponentPort, Value: port}
		}
	}
	return nil
}

// checkPassword fails when userinfo holds anything after the first colon,
// e.g. "user:secret". A bare "user" or a trailing "user:" passes.
func checkPassword(ref *Reference) error {
	if ref.Userinfo == nil {
		return nil
	}
	userinfo := *ref.Userinfo
	if i := strings.IndexByte(userinfo, ':'); i >= 0 && i+1 < len(userinfo) {
		return &PasswordForbiddenError{URI: ref}
	}
	return nil
}

func member(set map[string]struct{}, v string) bool {
	_, ok := set[v]
	return ok
}

func memberInt(set map[int]struct{}, v int) bool {
	_, ok := set[v]
	return ok
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
