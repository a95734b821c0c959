package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/hostkit-labs/hostkit/internal/config"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// Status markers used for line-oriented text output.
const (
	markOK   = "[ OK ]"
	markMiss = "[MISS]"
	markWarn = "[WARN]"
	markFail = "[FAIL]"
)

var printer = message.NewPrinter(language.English)

// outputFormat returns the --output flag, falling back to the configured
// default.
func outputFormat() (string, error) {
	f := flagOutput
	if f == "" {
		f = config.Get(config.KeyOutput)
	}
	switch f {
	case "", formatText:
		return formatText, nil
	case formatJSON, formatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q: expected text, json or yaml", f)
	}
}

// render writes v as JSON or YAML, or calls text for the text format.
func render(w io.Writer, v any, text func(io.Writer) error) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	switch format {
	case formatJSON:
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		return enc.Close()
	default:
		return text(w)
	}
}

// probeTimeout bounds filesystem probes of exists, ls and check. Zero means
// no bound.
var probeTimeout time.Duration

func addTimeoutFlag(cmd *cobra.Command) {
	cmd.Flags().DurationVar(&probeTimeout, "timeout", 0, "Abandon filesystem probes after this long (e.g. 2s)")
}

// probeContext returns the command context, bounded by --timeout when set.
func probeContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if probeTimeout > 0 {
		return context.WithTimeout(ctx, probeTimeout)
	}
	return context.WithCancel(ctx)
}
