// Package workflow strings the stages together into the three user-facing
// operations: installing an extension into PHP, removing it again, and
// writing its IDE stubs. Every collaborator is an interface so the
// operations run in tests without cargo, php-config or a real library.
package workflow
