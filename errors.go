package rfc3986

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidationFailed is the category sentinel for every policy violation
// reported by Validator.Validate. All validation error types unwrap to it,
// so callers can branch generically with errors.Is and still reach the
// specific type through errors.As.
var ErrValidationFailed = errors.New("uri validation failed")

// Configuration misuse sentinels, wrapped by ConfigError.
var (
	// ErrUnknownComponent is reported when RequireComponents receives a name
	// outside the fixed component set.
	ErrUnknownComponent = errors.New("unknown component")

	// ErrInvalidPort is reported when AllowPorts receives a value that is
	// not a base-10 integer.
	ErrInvalidPort = errors.New("invalid port")
)

// PasswordForbiddenError reports a userinfo component carrying a password
// while the validator forbids one.
type PasswordForbiddenError struct {
	URI *Reference
}

func (e *PasswordForbiddenError) Error() string {
	return fmt.Sprintf("password is not permitted in %q", e.URI)
}

func (e *PasswordForbiddenError) Unwrap() error { return ErrValidationFailed }

// MissingComponentsError reports every required component absent from the
// reference, sorted alphabetically, in a single error.
type MissingComponentsError struct {
	URI        *Reference
	Components []string
}

func (e *MissingComponentsError) Error() string {
	return fmt.Sprintf("%q is missing required components: %s",
		e.URI, strings.Join(e.Components, ", "))
}

func (e *MissingComponentsError) Unwrap() error { return ErrValidationFailed }

// UnpermittedComponentError reports a component whose value is not in the
// configured allow-list. Value is empty when the component is absent.
type UnpermittedComponentError struct {
	URI       *Reference
	Component string
	Value     string
}

func (e *UnpermittedComponentError) Error() string {
	return fmt.Sprintf("%s %q is not an allowed %s in %q",
		e.Component, e.Value, e.Component, e.URI)
}

func (e *UnpermittedComponentError) Unwrap() error { return ErrValidationFailed }

// ConfigError reports validator misconfiguration. It is raised by panic at
// configuration time, never deferred to Validate, mirroring the
// regexp.MustCompile model for programmer errors.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("validator configuration: %v", e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }
