// Package platform holds the operating-system specific details: shared
// library file naming, symlinks and permission bits. On Windows, where
// symlinks need developer mode, linking falls back to copying the file.
package platform
