// Package prompt asks the user questions on the terminal: yes/no
// confirmations and picking one entry from a list. When stdin is not a
// terminal the list is printed as a numbered menu instead of an
// interactive selector.
package prompt
