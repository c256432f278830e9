package main

import (
	"bytes"
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/division/field"
)

// displayed extracts the quoted display text of every state line.
func displayed(t *testing.T, out string) []string {
	t.Helper()
	var states []string
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		if strings.HasPrefix(line, "  event") || strings.HasPrefix(line, "value") {
			continue
		}
		require.Greater(t, len(line), 17, "line %q", line)
		quoted, err := strconv.QuotedPrefix(line[17:])
		require.NoError(t, err, "line %q", line)
		text, err := strconv.Unquote(quoted)
		require.NoError(t, err)
		states = append(states, text)
	}
	return states
}

func replay(t *testing.T, cfg field.Config, script string, events bool) string {
	t.Helper()
	steps, err := parseScript(strings.NewReader(script))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, runReplay(context.Background(), cfg, steps, &out, events))
	return out.String()
}

func TestParseScript(t *testing.T) {
	steps, err := parseScript(strings.NewReader(`
# card number
type 4111 1
key Backspace
paste 22
set 1234
reset
`))
	require.NoError(t, err)
	require.Len(t, steps, 5)

	assert.Equal(t, replayStep{Op: opType, Arg: "4111 1", Line: 3}, steps[0])
	assert.Equal(t, replayStep{Op: opKey, Arg: "backspace", Line: 4}, steps[1])
	assert.Equal(t, opPaste, steps[2].Op)
	assert.Equal(t, "1234", steps[3].Arg)
	assert.Equal(t, opReset, steps[4].Op)
}

func TestParseScript_Errors(t *testing.T) {
	cases := map[string]string{
		"jump 3\n":          "unknown step",
		"type a\nkey f13\n": "line 2: unknown key",
		"reset now\n":       "reset takes no argument",
	}
	for script, want := range cases {
		_, err := parseScript(strings.NewReader(script))
		require.Error(t, err, "script %q", script)
		assert.Contains(t, err.Error(), want)
	}
}

func TestReplay_TypeAndBackspace(t *testing.T) {
	out := replay(t, field.Config{Delimiter: "-", GroupSize: 3}, "type abc\nkey backspace\ntype d\n", false)

	assert.Equal(t, []string{"", "a", "ab", "abc-", "abc", "abc-d"}, displayed(t, out))
	assert.Contains(t, out, `"abcd"`)
}

func TestReplay_EventsShowEcho(t *testing.T) {
	out := replay(t, field.Config{Delimiter: "-", GroupSize: 3}, "type abc\n", true)

	assert.Contains(t, out, `source=local text=true echo=false "abc"`)
	assert.Contains(t, out, `source=formatter text=true echo=true "abc-"`)
}

func TestReplay_CutAndPasteUseMemoryClipboard(t *testing.T) {
	script := "type abcd\nkey shift+left\nkey shift+left\nkey ctrl+x\nkey ctrl+v\n"
	states := displayed(t, replay(t, field.Config{}, script, false))

	require.NotEmpty(t, states)
	assert.Equal(t, "ab", states[len(states)-2])
	assert.Equal(t, "abcd", states[len(states)-1])
}

func TestReplay_SetAndReset(t *testing.T) {
	states := displayed(t, replay(t, field.Config{Delimiter: " ", GroupSize: 4}, "set 1234\nreset\ntype 5\n", false))

	assert.Equal(t, []string{"", "1234 ", "", "5"}, states)
}

func TestReplayCommand_FlagsAndAttributeFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	attrPath := writeTestFile(t, "field.yaml", "placeHolder: \"/\"\nplaceIndex: 4\n")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs([]string{"replay", "--attrs", attrPath, "--place-index", "2"})
	cmd.SetIn(strings.NewReader("type abcd\n"))
	cmd.SetOut(&out)
	require.NoError(t, cmd.Execute())

	states := displayed(t, out.String())
	assert.Equal(t, "ab/cd/", states[len(states)-1])
	assert.Contains(t, out.String(), `"abcd"`)
}

func TestReplayCommand_BadScript(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cmd := newRootCmd()
	cmd.SetArgs([]string{"replay"})
	cmd.SetIn(strings.NewReader("hop\n"))
	cmd.SetOut(&bytes.Buffer{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}
