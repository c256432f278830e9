package grapheme

import "testing"

const family = "\U0001F468\u200d\U0001F469\u200d\U0001F467\u200d\U0001F466"

func TestSplitAndCount_MultiRuneGraphemes(t *testing.T) {
	text := "a" + "é" + family + "b"
	got := Split(text)
	if len(got) != 4 {
		t.Fatalf("split len=%d, want %d", len(got), 4)
	}
	if got[1] != "é" {
		t.Fatalf("split[1]=%q, want %q", got[1], "é")
	}
	if got[2] != family {
		t.Fatalf("split[2]=%q, want family emoji", got[2])
	}
	if c := Count(text); c != 4 {
		t.Fatalf("count=%d, want %d", c, 4)
	}
	if c := Count(""); c != 0 {
		t.Fatalf("count empty=%d, want 0", c)
	}
}

func TestFirst(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "-", want: "-"},
		{in: "-/", want: "-"},
		{in: "éx", want: "é"},
		{in: family + "z", want: family},
	}
	for _, tc := range cases {
		if got := First(tc.in); got != tc.want {
			t.Fatalf("First(%q)=%q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSlice_GraphemeSafe(t *testing.T) {
	text := "a" + "é" + family + "b"
	if got, want := Slice(text, 1, 3), "é"+family; got != want {
		t.Fatalf("slice=%q, want %q", got, want)
	}
	if got := Slice(text, 5, 6); got != "" {
		t.Fatalf("slice past end=%q, want empty", got)
	}
	if got := Slice(text, -3, 1); got != "a" {
		t.Fatalf("slice negative start=%q, want %q", got, "a")
	}
	if got := Slice(text, 3, 1); got != "" {
		t.Fatalf("slice inverted=%q, want empty", got)
	}
}

func TestJoin_RoundTripsSplit(t *testing.T) {
	text := "x" + family + "é"
	if got := Join(Split(text)); got != text {
		t.Fatalf("join(split)=%q, want %q", got, text)
	}
	if got := Join(nil); got != "" {
		t.Fatalf("join nil=%q, want empty", got)
	}
}

func TestClassifiers(t *testing.T) {
	if !IsSpace("\t") {
		t.Fatalf("tab should be space")
	}
	if IsSpace("a") {
		t.Fatalf("letter should not be space")
	}
	if !IsPunct("!") {
		t.Fatalf("exclamation should be punct")
	}
	if IsPunct("a") {
		t.Fatalf("letter should not be punct")
	}
	if IsSpace("") || IsPunct("") {
		t.Fatalf("empty cluster should not classify")
	}
}
