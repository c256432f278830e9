// Package separator implements the delimiter-inserting text formatter used by
// the field component.
//
// A Formatter watches successive snapshots of an input's text. When the text
// grows onto a group boundary it asks the host to redisplay the text with a
// single delimiter cluster inserted, and it absorbs the echo observation the
// host produces for that redisplay. Lengths and positions are counted in
// grapheme clusters.
//
// The package is pure: no rendering, no I/O, no locking. A Formatter belongs
// to exactly one input and must be driven from one goroutine.
package separator
