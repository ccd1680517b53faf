package ext

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
)

var (
	// ErrNotAFile is returned when the extension path does not name a regular file.
	ErrNotAFile = errors.New("invalid extension path given, not a file")
	// ErrLoad is returned when the file cannot be loaded as a shared library.
	ErrLoad = errors.New("failed to load extension library")
	// ErrEntryPoint is returned when the describe symbol is missing or returns nothing.
	ErrEntryPoint = errors.New("failed to resolve extension describe function")
)

// OpenFunc loads the library at path and returns its raw description.
type OpenFunc func(path string) (*Raw, error)

// Loader describes extensions built against a contract version.
type Loader struct {
	// Contract is the contract version the caller reads. Defaults to ContractVersion.
	Contract string
	// Preload lists shared libraries opened with global symbol visibility
	// before the extension, e.g. libphp from the embed SAPI, so the
	// extension's references to PHP symbols resolve.
	Preload []string

	open OpenFunc
}

// NewLoader returns a Loader that opens libraries natively.
func NewLoader(preload ...string) *Loader {
	return &Loader{Contract: ContractVersion, Preload: preload}
}

// Describe loads the extension at path and returns its description. No
// descriptor is returned unless the extension's contract version is
// compatible with l.Contract and its module description is well formed.
//
// Loading runs the library's initializers in this process and the library is
// never unloaded.
func (l *Loader) Describe(path string) (*Descriptor, error) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotAFile, path)
	}

	open := l.open
	if open == nil {
		open = func(p string) (*Raw, error) { return dlopen(p, l.Preload) }
	}
	contract := l.Contract
	if contract == "" {
		contract = ContractVersion
	}

	log.Debug().Str("path", path).Msg("loading extension")
	raw, err := open(path)
	if err != nil {
		return nil, err
	}

	if err := CheckContract(contract, raw.Version); err != nil {
		return nil, err
	}

	data := []byte(raw.Module)
	if err := ValidateModule(data); err != nil {
		return nil, err
	}

	var module Module
	if err := json.Unmarshal(data, &module); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidModule, err)
	}

	name := raw.Name
	if name == "" {
		name = module.Name
	}
	log.Debug().Str("module", name).Str("version", raw.Version).Msg("extension described")

	return &Descriptor{
		Version:   raw.Version,
		Name:      name,
		Module:    &module,
		RawModule: json.RawMessage(data),
	}, nil
}
