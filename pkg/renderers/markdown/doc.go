// Package markdown renders contract documentation models into Markdown pages.
// Layout lives in an embedded pongo2 template; parameter tables and anything
// whitespace-sensitive are built by Go filters so output stays byte-stable.
// Sections whose underlying collection is empty are suppressed entirely, and
// supplied ordering is never re-sorted.
package markdown
