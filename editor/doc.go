// Package editor implements the editing session over a buffer.
//
// An Editor owns a private copy of a buffer plus the cursor, the selection
// anchor and the redraw flag. Text and cursor change together only through
// Action. Layout turns the buffer into visual rows for a Shaper, which is
// how pointer positions become cursors and cursors become carets.
package editor
