// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pdiddy/gendocs/pkg/types"
)

// envPrefix is prepended to every flag name to form its environment variable.
const envPrefix = "GENDOCS"

// bindConfig wires cmd's flags into v and enables GENDOCS_* environment
// overrides. No configuration file is read.
func bindConfig(v *viper.Viper, cmd *cobra.Command) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	// BindPFlags only fails on a nil flag set.
	_ = v.BindPFlags(cmd.Flags())
}

// runConfig resolves positional arguments and bound settings into a RunConfig.
func runConfig(v *viper.Viper, args []string) types.RunConfig {
	cfg := types.RunConfig{
		Extract: types.ExtractConfig{
			Directives: splitList(v.GetStringSlice("directive")),
		},
		Output: types.OutputConfig{
			Tee:          v.GetBool("tee"),
			StrictOutput: v.GetBool("strict-output"),
		},
	}
	if len(args) > 0 {
		cfg.Input = args[0]
	}
	if len(args) > 1 {
		cfg.Output.Path = args[1]
	}
	return cfg
}

// newLogger returns a JSON logger on w. Only warnings and errors are logged
// unless verbose is set.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(w), level)
	return zap.New(core)
}

// splitList splits every element of values on commas and drops empty
// entries. Flags arrive already split, but an environment value such as
// GENDOCS_DIRECTIVE=@a,@b reaches viper as a single element.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
