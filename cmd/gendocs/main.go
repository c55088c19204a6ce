// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the gendocs CLI, which copies the
// contents of /** ... */ documentation blocks out of a source file.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/gendocs/internal/extract"
	"github.com/pdiddy/gendocs/internal/output"
	"github.com/pdiddy/gendocs/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// usageLine is printed to stdout when the input file is missing or unreadable.
const usageLine = "Usage: gendocs <inputfile> [<outputfile>]"

// errUsage marks a failure that has already been reported with usageLine.
var errUsage = errors.New("usage")

// newRootCmd builds the gendocs command with its own viper instance so each
// invocation resolves flags and environment independently.
func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "gendocs <inputfile> [<outputfile>]",
		Short: "Extract /** ... */ documentation blocks from a source file",
		Long: `gendocs reads a source file and writes the text of every documentation
block to the output file, or to stdout when no output file is given.

A block opens at a line whose first word is "/**" and closes at a line whose
first word is "*/". Each closed block is followed by a blank line. Lines that
start with $SECTION or $SUBTITLE have that word removed.

Every flag can also be set through a GENDOCS_ environment variable, for
example GENDOCS_STRICT_OUTPUT=true.`,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr(), v.GetBool("verbose"))
			defer logger.Sync() //nolint:errcheck
			return runGendocs(cmd, args, v, logger)
		},
	}

	cmd.Flags().StringSlice("directive", types.DefaultDirectives(), "leading token to strip from lines inside a block (repeatable)")
	cmd.Flags().Bool("tee", false, "also copy extracted text to stdout when writing an output file")
	cmd.Flags().Bool("strict-output", false, "fail if the output file cannot be opened instead of writing to stdout")
	cmd.Flags().Bool("summary", false, "write a YAML run summary to stderr")
	cmd.Flags().Bool("verbose", false, "enable debug logging on stderr")

	bindConfig(v, cmd)
	return cmd
}

func runGendocs(cmd *cobra.Command, args []string, v *viper.Viper, logger *zap.Logger) error {
	if len(args) == 0 {
		return usage(cmd)
	}
	if len(args) > 2 {
		logger.Debug("ignoring extra arguments", zap.Strings("args", args[2:]))
	}
	cfg := runConfig(v, args)

	in, err := os.Open(cfg.Input)
	if err != nil {
		logger.Debug("cannot open input", zap.String("path", cfg.Input), zap.Error(err))
		return usage(cmd)
	}
	defer in.Close()
	if fi, err := in.Stat(); err != nil || fi.IsDir() {
		logger.Debug("input is not a readable file", zap.String("path", cfg.Input), zap.Error(err))
		return usage(cmd)
	}

	dest, err := output.Open(cfg.Output, cmd.OutOrStdout(), logger)
	if err != nil {
		return err
	}
	defer dest.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	sum, err := extract.New(cfg.Extract).Run(ctx, in, dest)
	if err != nil {
		return fmt.Errorf("extracting %s: %w", cfg.Input, err)
	}
	if err := dest.Close(); err != nil {
		return err
	}

	sum.Input = cfg.Input
	sum.Output = dest.Name()
	if sum.Unterminated {
		logger.Warn("input ended inside a documentation block", zap.String("path", cfg.Input))
	}
	logger.Debug("extraction finished",
		zap.String("output", sum.Output),
		zap.Int("blocks", sum.Blocks),
		zap.Int("lines_emitted", sum.LinesEmitted))

	if v.GetBool("summary") {
		return extract.WriteSummary(cmd.ErrOrStderr(), sum)
	}
	return nil
}

// usage prints usageLine to the command's stdout and returns errUsage.
func usage(cmd *cobra.Command) error {
	fmt.Fprintln(cmd.OutOrStdout(), usageLine)
	return errUsage
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
