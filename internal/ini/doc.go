// Package ini edits the extension directives of a php.ini file. Every edit
// drops all lines that mention the extension's file name and, unless the
// extension is being removed, appends one canonical directive. Repeating an
// edit therefore never duplicates an entry.
//
// The rewrite goes through a temporary file renamed over the original, so a
// crash leaves either the old or the new contents. Concurrent writers are not
// coordinated.
package ini
