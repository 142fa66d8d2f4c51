// Package rfc3986 validates Uniform Resource Identifiers against the
// grammar of RFC 3986 and against caller-defined policy.
//
// The package splits the work into three layers:
//
//   - Grammar matchers – compiled, anchored patterns encoding the ABNF
//     productions for scheme, authority (without the "//" prefix), path,
//     query and fragment, plus a strict byte-range IPv4 check. They are
//     built once at init and shared read-only.
//
//   - Free validation functions – pure predicates (SchemeIsValid,
//     PathIsValid, QueryIsValid, FragmentIsValid, AuthorityIsValid) that
//     apply a matcher to an optional component. A nil component is valid
//     unless the caller requires its presence.
//
//   - Validator – a fluent rule-builder that accumulates allow-lists for
//     schemes, hosts and ports, required components and a password policy,
//     then checks a parsed Reference against all of them.
//
// # Usage
//
//	ref, err := rfc3986.ParseReference("https://user@example.com:443/index?q=1")
//	if err != nil {
//	    // the authority could not be split into its parts
//	}
//
//	v := rfc3986.NewValidator().
//	    AllowSchemes("http", "https").
//	    AllowHosts("example.com").
//	    RequireComponents("scheme", "host").
//	    ForbidUseOfPassword()
//
//	if err := v.Validate(ref); err != nil {
//	    var missing *rfc3986.MissingComponentsError
//	    if errors.As(err, &missing) {
//	        // missing.Components lists every absent component at once
//	    }
//	}
//
// # Error Handling
//
// Validate reports policy violations as typed errors
// (*PasswordForbiddenError, *MissingComponentsError,
// *UnpermittedComponentError) that all unwrap to ErrValidationFailed, so
// callers can branch on the category with errors.Is or on the kind with
// errors.As. Misconfiguring a Validator (an unknown component name, an
// unparseable port) panics with a *ConfigError at configuration time.
//
// # Concurrency
//
// Matchers and free functions are stateless and goroutine-safe. A Validator
// is mutable while being configured; once configuration is finished,
// concurrent Validate calls are safe because Validate never writes state.
//
// Reference resolution (RFC 3986 section 5) is out of scope: the package
// validates references, it does not merge them.
package rfc3986
