package buffer

// Range is a half-open span of grapheme offsets: [Start, End).
type Range struct {
	Start int
	End   int
}

func NormalizeRange(r Range) Range {
	if r.Start <= r.End {
		return r
	}
	return Range{Start: r.End, End: r.Start}
}

func (r Range) IsEmpty() bool { return r.Start == r.End }

func (r Range) Len() int {
	n := NormalizeRange(r)
	return n.End - n.Start
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampRange clamps both ends of r into [0, length].
func ClampRange(r Range, length int) Range {
	return Range{
		Start: clampInt(r.Start, 0, length),
		End:   clampInt(r.End, 0, length),
	}
}
