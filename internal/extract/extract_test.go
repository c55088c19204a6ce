// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/gendocs/pkg/types"
)

// runString extracts from input with the default directive set.
func runString(t *testing.T, input string) (string, types.Summary) {
	t.Helper()
	var out bytes.Buffer
	sum, err := Run(context.Background(), strings.NewReader(input), &out, types.ExtractConfig{})
	require.NoError(t, err)
	return out.String(), sum
}

func TestRun(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "no block markers",
			input: "int main() {\n  return 0;\n}\n",
			want:  "",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "single block",
			input: "/**\nhello\n*/\n",
			want:  "hello\n\n\n",
		},
		{
			name:  "section directive stripped",
			input: "/**\n$SECTION Intro\ntext\n*/\n",
			want:  "Intro\ntext\n\n\n",
		},
		{
			name:  "subtitle directive stripped",
			input: "/**\n$SUBTITLE Notes\n*/\n",
			want:  "Notes\n\n\n",
		},
		{
			name:  "two blocks concatenated",
			input: "/**\na\n*/\n/**\nb\n*/\n",
			want:  "a\n\n\nb\n\n\n",
		},
		{
			name:  "lines outside blocks dropped",
			input: "before\n/**\nin\n*/\nbetween\n/**\nagain\n*/\nafter\n",
			want:  "in\n\n\nagain\n\n\n",
		},
		{
			name:  "blank line inside block kept",
			input: "/**\nfirst\n\nsecond\n*/\n",
			want:  "first\n\nsecond\n\n\n",
		},
		{
			name:  "blank line outside block dropped",
			input: "\n\n/**\nx\n*/\n\n",
			want:  "x\n\n\n",
		},
		{
			name:  "indented markers",
			input: "  /**\n  indented text\n   */\n",
			want:  "  indented text\n\n\n",
		},
		{
			name:  "markers with trailing text still trigger",
			input: "/** begin\nbody\n*/ end\n",
			want:  "body\n\n\n",
		},
		{
			name:  "glued marker is not a trigger",
			input: "/**foo\nbody\n*/\n",
			want:  "",
		},
		{
			name:  "non-ascii space does not split tokens",
			input: "/**\u00a0x\nbody\n*/\n",
			want:  "",
		},
		{
			name:  "vertical tab and form feed split tokens",
			input: "\v/**\fx\nbody\n*/\n",
			want:  "body\n\n\n",
		},
		{
			name:  "nested open marker consumed",
			input: "/**\nouter\n/**\ninner\n*/\nafter\n",
			want:  "outer\ninner\n\n\n",
		},
		{
			name:  "close marker outside block ignored",
			input: "*/\n/**\nx\n*/\n",
			want:  "x\n\n\n",
		},
		{
			name:  "directive outside block dropped",
			input: "$SECTION Outside\n/**\nx\n*/\n",
			want:  "x\n\n\n",
		},
		{
			name:  "directive alone on a line",
			input: "/**\n$SECTION\nx\n*/\n",
			want:  "x\n\n\n",
		},
		{
			name:  "directive at EOF without newline",
			input: "/**\n$SECTION",
			want:  "",
		},
		{
			name:  "directive strips exactly one separator",
			input: "/**\n$SECTION   spaced\n*/\n",
			want:  "  spaced\n\n\n",
		},
		{
			name:  "directive with tab separator",
			input: "/**\n$SUBTITLE\tTabbed\n*/\n",
			want:  "Tabbed\n\n\n",
		},
		{
			name:  "indented directive",
			input: "/**\n  $SECTION Intro\n*/\n",
			want:  "Intro\n\n\n",
		},
		{
			name:  "directive must be the first token",
			input: "/**\nsee $SECTION above\n*/\n",
			want:  "see $SECTION above\n\n\n",
		},
		{
			name:  "directive prefix is not a directive",
			input: "/**\n$SECTIONS plural\n*/\n",
			want:  "$SECTIONS plural\n\n\n",
		},
		{
			name:  "unterminated block runs to EOF",
			input: "/**\none\ntwo\n",
			want:  "one\ntwo\n",
		},
		{
			name:  "last line without newline",
			input: "/**\nlast",
			want:  "last",
		},
		{
			name:  "crlf line endings preserved",
			input: "/**\r\nhello\r\n*/\r\n",
			want:  "hello\r\n\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := runString(t, tt.input)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRun_Idempotent(t *testing.T) {
	input := "/**\n$SECTION Intro\ntext\n*/\ncode();\n/**\nmore\n*/\n"
	first, _ := runString(t, input)
	require.NotEmpty(t, first)

	second, _ := runString(t, first)
	assert.Empty(t, second)
}

func TestRun_Summary(t *testing.T) {
	input := "code\n/**\n$SECTION A\nbody\n*/\n/**\n$SUBTITLE B\ntail\n"
	_, sum := runString(t, input)

	assert.Equal(t, 1, sum.Blocks)
	assert.Equal(t, 8, sum.LinesRead)
	assert.Equal(t, 4, sum.LinesEmitted)
	assert.Equal(t, 2, sum.DirectivesStripped)
	assert.True(t, sum.Unterminated)
}

func TestRun_CustomDirectives(t *testing.T) {
	cfg := types.ExtractConfig{Directives: []string{"@title", " "}}
	input := "/**\n@title Hello\n$SECTION Kept\n*/\n"

	var out bytes.Buffer
	sum, err := Run(context.Background(), strings.NewReader(input), &out, cfg)
	require.NoError(t, err)

	assert.Equal(t, "Hello\n$SECTION Kept\n\n\n", out.String())
	assert.Equal(t, 1, sum.DirectivesStripped)
}

func TestRun_ExtractorReusable(t *testing.T) {
	e := New(types.ExtractConfig{})
	for i := 0; i < 2; i++ {
		var out bytes.Buffer
		_, err := e.Run(context.Background(), strings.NewReader("/**\nx\n"), &out)
		require.NoError(t, err)
		assert.Equal(t, "x\n", out.String(), "state must not leak between runs")
	}
}

func TestRun_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	_, err := Run(ctx, strings.NewReader("/**\nx\n*/\n"), &out, types.ExtractConfig{})
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk gone") }

func TestRun_ReadError(t *testing.T) {
	var out bytes.Buffer
	_, err := Run(context.Background(), failingReader{}, &out, types.ExtractConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading input")
	assert.Contains(t, err.Error(), "disk gone")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("pipe closed") }

func TestRun_WriteError(t *testing.T) {
	_, err := Run(context.Background(), strings.NewReader("/**\nx\n*/\n"), failingWriter{}, types.ExtractConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing output")
}

func TestFirstToken(t *testing.T) {
	tests := []struct {
		line    string
		want    string
		wantEnd int
	}{
		{"", "", 0},
		{"\n", "", 0},
		{"   \t\n", "", 0},
		{"/**\n", "/**", 3},
		{"  */\n", "*/", 4},
		{"word", "word", 4},
		{"\tone two\n", "one", 4},
		{"/**\u00a0x\n", "/**\u00a0x", 6},
		{"\u2003*/\n", "\u2003*/", 5},
	}
	for _, tt := range tests {
		got, end := firstToken(tt.line)
		assert.Equal(t, tt.want, got, "line %q", tt.line)
		assert.Equal(t, tt.wantEnd, end, "line %q", tt.line)
	}
}

func TestWriteSummary(t *testing.T) {
	sum := types.Summary{
		Input:        "altest.c",
		Output:       "stdout",
		Blocks:       3,
		LinesRead:    40,
		LinesEmitted: 12,
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, sum))

	var got types.Summary
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sum, got)
	assert.Contains(t, buf.String(), "lines_emitted: 12")
}
