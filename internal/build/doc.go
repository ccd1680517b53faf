// Package build compiles an extension with cargo and locates the shared
// library it produced. Cargo's line-delimited JSON messages are read as a lazy
// sequence of Events and correlated with the requested project.Target.
package build
