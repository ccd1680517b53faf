// Package config manages user-level settings stored at ~/.cargo-php/config.yaml.
// Values can also come from the environment (PHP_CONFIG, CARGO, or the
// CARGO_PHP_ prefixed form of any key) and from a .env file in the working
// directory.
//
// The preload key lists shared libraries, separated by spaces, that are
// loaded before an extension is inspected. Extensions that link against
// libphp need it there to resolve PHP's symbols.
package config
