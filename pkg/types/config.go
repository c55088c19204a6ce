// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Default directive tokens stripped from the start of lines inside a block.
const (
	DirectiveSection  = "$SECTION"
	DirectiveSubtitle = "$SUBTITLE"
)

// DefaultDirectives returns the directive set used when none is configured.
func DefaultDirectives() []string {
	return []string{DirectiveSection, DirectiveSubtitle}
}

// ExtractConfig holds settings for the block extraction pass.
type ExtractConfig struct {
	// Directives lists the tokens that are stripped, together with one
	// following character, when they lead a line inside a block.
	Directives []string `json:"directives" yaml:"directives"`
}

// OutputConfig holds settings for the extraction destination.
type OutputConfig struct {
	// Path is the output file. Empty means standard output.
	Path string `json:"path" yaml:"path"`

	// Tee also copies the extracted text to standard output when Path is set.
	Tee bool `json:"tee" yaml:"tee"`

	// StrictOutput turns a failure to open Path into an error instead of
	// falling back to standard output.
	StrictOutput bool `json:"strict_output" yaml:"strict_output"`
}

// RunConfig groups the settings for one gendocs invocation.
type RunConfig struct {
	Input   string        `json:"input" yaml:"input"`
	Extract ExtractConfig `json:"extract" yaml:"extract"`
	Output  OutputConfig  `json:"output" yaml:"output"`
}
