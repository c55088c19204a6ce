// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Summary records what a single extraction pass did.
type Summary struct {
	// Input is the path of the file that was read.
	Input string `json:"input" yaml:"input"`

	// Output names the destination: a file path or "stdout".
	Output string `json:"output" yaml:"output"`

	// Blocks counts documentation blocks closed by a "*/" line.
	Blocks int `json:"blocks" yaml:"blocks"`

	// LinesRead counts every input line, inside or outside a block.
	LinesRead int `json:"lines_read" yaml:"lines_read"`

	// LinesEmitted counts content lines written. Block separators are not counted.
	LinesEmitted int `json:"lines_emitted" yaml:"lines_emitted"`

	// DirectivesStripped counts emitted lines that had a directive removed.
	DirectivesStripped int `json:"directives_stripped" yaml:"directives_stripped"`

	// Unterminated is true when the input ended inside a block.
	Unterminated bool `json:"unterminated" yaml:"unterminated"`
}
