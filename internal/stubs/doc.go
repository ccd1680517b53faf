// Package stubs renders the module description of an extension as a PHP
// stub file. IDEs read the stubs for completion and type hints; the bodies
// are empty.
package stubs
