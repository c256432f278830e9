// Package field provides a Bubble Tea single-line input that keeps a
// separator inserted between fixed-size groups of typed characters, the way
// card-number and phone inputs do.
//
// The Model owns a buffer.Buffer for the text and a separator.Formatter for
// the delimiter rules. Every text change is reported to the formatter; when
// it asks for a redisplay the Model overwrites the buffer, and the resulting
// second change is delivered to the formatter as the echo it expects.
// Hosts observe every effective mutation through Config.OnChange.
package field
