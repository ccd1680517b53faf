package ext

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// ContractVersion is the introspection contract version this binary was built
// against. Overridden via ldflags when packaging against a newer contract.
var ContractVersion = "0.12.0"

var (
	// ErrMalformedVersion is returned when a contract version is not valid semver.
	ErrMalformedVersion = errors.New("malformed introspection contract version")
	// ErrIncompatibleContract is wrapped by IncompatibleError.
	ErrIncompatibleContract = errors.New("incompatible introspection contract")
)

// IncompatibleError reports an extension built against a contract version the
// caller cannot read.
type IncompatibleError struct {
	Required string
	Declared string
}

func (e *IncompatibleError) Error() string {
	return fmt.Sprintf("extension was compiled with an incompatible version of ext-php-rs - extension: %s, cli: ^%s", e.Declared, e.Required)
}

func (e *IncompatibleError) Unwrap() error { return ErrIncompatibleContract }

// CheckContract reports whether an extension declaring contract version
// declared can be read by a caller built against required. Compatibility
// follows caret semantics: the major version must match, and below 1.0.0 the
// minor version must match as well.
func CheckContract(required, declared string) error {
	req, err := semver.StrictNewVersion(required)
	if err != nil {
		return fmt.Errorf("%w: parsing version %q the cli was compiled with: %w", ErrMalformedVersion, required, err)
	}
	have, err := semver.StrictNewVersion(declared)
	if err != nil {
		return fmt.Errorf("%w: parsing version %q the extension was compiled with: %w", ErrMalformedVersion, declared, err)
	}

	constraint, err := semver.NewConstraint("^" + req.String())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedVersion, err)
	}
	if !constraint.Check(have) {
		return &IncompatibleError{Required: req.String(), Declared: have.String()}
	}
	return nil
}
