// Package grapheme wraps uniseg with the byte-offset helpers the editing core
// needs. Every index in this package is a byte offset into a UTF-8 string and
// every returned index lies on a grapheme cluster boundary.
package grapheme

import (
	"unicode"

	"github.com/rivo/uniseg"
)

// Split returns the grapheme clusters of text in logical order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	out := make([]string, 0, len(text))
	state := -1
	for text != "" {
		var cluster string
		cluster, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		out = append(out, cluster)
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// CountBefore returns the number of clusters that end at or before idx.
// A cluster straddling idx is not counted.
func CountBefore(text string, idx int) int {
	if idx <= 0 {
		return 0
	}
	n, off := 0, 0
	state := -1
	rest := text
	for rest != "" {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if off+len(cluster) > idx {
			break
		}
		off += len(cluster)
		n++
	}
	return n
}

// ByteOffset returns the byte offset of the n-th cluster boundary in text.
// Counts past the end clamp to len(text).
func ByteOffset(text string, n int) int {
	if n <= 0 {
		return 0
	}
	off := 0
	state := -1
	rest := text
	for i := 0; i < n && rest != ""; i++ {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		off += len(cluster)
	}
	return off
}

// Next returns the boundary following idx, or len(text) at the end.
func Next(text string, idx int) int {
	if idx >= len(text) {
		return len(text)
	}
	idx = Floor(text, idx)
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(text[idx:], -1)
	return idx + len(cluster)
}

// Prev returns the boundary preceding idx, or 0 at the start.
func Prev(text string, idx int) int {
	if idx <= 0 {
		return 0
	}
	if idx > len(text) {
		idx = len(text)
	}
	prev, off := 0, 0
	state := -1
	rest := text
	for rest != "" {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if off+len(cluster) >= idx {
			return off
		}
		off += len(cluster)
		prev = off
	}
	return prev
}

// Floor snaps idx down to the nearest cluster boundary.
func Floor(text string, idx int) int {
	if idx <= 0 {
		return 0
	}
	if idx >= len(text) {
		return len(text)
	}
	off := 0
	state := -1
	rest := text
	for rest != "" {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if off+len(cluster) > idx {
			return off
		}
		off += len(cluster)
	}
	return off
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsPunct reports whether all runes in cluster are Unicode punctuation.
func IsPunct(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
			return false
		}
	}
	return true
}

// IsWord reports whether cluster belongs to a word for word motion.
func IsWord(cluster string) bool {
	return cluster != "" && !IsSpace(cluster) && !IsPunct(cluster)
}
