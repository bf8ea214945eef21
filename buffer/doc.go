// Package buffer implements the styled, multi-line document model for inkwell.
//
// A Buffer is an ordered list of Lines; each Line carries its text and the
// explicit style spans applied to it. Cursor indexes are byte offsets into a
// line and always sit on a grapheme cluster boundary. Lines are treated as
// immutable values: every edit builds new Lines, so snapshots taken for
// history share storage safely.
package buffer
