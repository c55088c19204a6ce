// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract pulls documentation blocks out of source files.
//
// A block starts at a line whose first whitespace-delimited token is "/**"
// and ends at a line whose first token is "*/". Lines inside a block are
// copied to the output; lines outside are dropped. A leading directive token
// such as "$SECTION" is removed from a line before it is copied.
package extract

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/gendocs/pkg/types"
)

const (
	openMarker  = "/**"
	closeMarker = "*/"

	// blockSeparator is written in place of every closing marker line.
	blockSeparator = "\n\n"

	// asciiSpace is the set of bytes that separate tokens. Other Unicode
	// spaces, such as U+00A0, are part of a token.
	asciiSpace = " \t\n\v\f\r"
)

// Extractor filters lines according to a fixed directive set. It holds no
// per-run state and may be reused across inputs.
type Extractor struct {
	directives map[string]struct{}
}

// New returns an Extractor for cfg. An empty directive list selects
// types.DefaultDirectives.
func New(cfg types.ExtractConfig) *Extractor {
	dirs := cfg.Directives
	if len(dirs) == 0 {
		dirs = types.DefaultDirectives()
	}
	set := make(map[string]struct{}, len(dirs))
	for _, d := range dirs {
		d = strings.TrimSpace(d)
		if d != "" {
			set[d] = struct{}{}
		}
	}
	return &Extractor{directives: set}
}

// Run is shorthand for New(cfg).Run(ctx, r, w).
func Run(ctx context.Context, r io.Reader, w io.Writer, cfg types.ExtractConfig) (types.Summary, error) {
	return New(cfg).Run(ctx, r, w)
}

// Run reads r line by line and writes the contents of every documentation
// block to w. Each closing marker is replaced by a blank-line separator.
// An input that ends inside a block emits everything up to EOF with no
// trailing separator and sets Summary.Unterminated.
//
// The returned Summary is valid even when err is non-nil and reflects the
// lines processed before the failure.
func (e *Extractor) Run(ctx context.Context, r io.Reader, w io.Writer) (types.Summary, error) {
	var sum types.Summary
	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)
	insideDoc := false

	for {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		line, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return sum, fmt.Errorf("reading input: %w", readErr)
		}
		if line == "" && readErr != nil {
			break
		}
		sum.LinesRead++

		word, end := firstToken(line)
		switch {
		case word == openMarker:
			insideDoc = true
		case !insideDoc:
			// Outside a block: dropped.
		case word == closeMarker:
			insideDoc = false
			sum.Blocks++
			if _, err := bw.WriteString(blockSeparator); err != nil {
				return sum, fmt.Errorf("writing output: %w", err)
			}
		default:
			out := line
			if _, ok := e.directives[word]; ok {
				out = stripDirective(line, end)
				sum.DirectivesStripped++
			}
			if _, err := bw.WriteString(out); err != nil {
				return sum, fmt.Errorf("writing output: %w", err)
			}
			sum.LinesEmitted++
		}

		if readErr != nil {
			break
		}
	}

	sum.Unterminated = insideDoc
	if err := bw.Flush(); err != nil {
		return sum, fmt.Errorf("writing output: %w", err)
	}
	return sum, nil
}

// firstToken returns the first whitespace-delimited word of line and the
// byte offset just past it. A line with no words yields ("", 0).
func firstToken(line string) (string, int) {
	start := strings.IndexFunc(line, func(r rune) bool { return !isSpace(r) })
	if start < 0 {
		return "", 0
	}
	n := strings.IndexFunc(line[start:], isSpace)
	if n < 0 {
		return line[start:], len(line)
	}
	return line[start : start+n], start + n
}

// stripDirective drops everything up to the end of the directive token plus
// one separator character. A directive with nothing after it becomes "".
func stripDirective(line string, end int) string {
	if end >= len(line) {
		return ""
	}
	return line[end+1:]
}

func isSpace(r rune) bool {
	return r < 0x80 && strings.ContainsRune(asciiSpace, r)
}
