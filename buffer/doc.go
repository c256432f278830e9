// Package buffer implements the pure, grapheme-accurate document model behind
// the field component.
//
// A Buffer holds exactly one line. Positions are 0-based offsets in grapheme
// clusters; ranges are half-open: [Start, End).
package buffer
