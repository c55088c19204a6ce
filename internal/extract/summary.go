// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/gendocs/pkg/types"
)

// WriteSummary renders sum as a YAML document on w.
func WriteSummary(w io.Writer, sum types.Summary) error {
	data, err := yaml.Marshal(&sum)
	if err != nil {
		return fmt.Errorf("marshaling summary: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	return nil
}
