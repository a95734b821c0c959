package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/hostkit-labs/hostkit/internal/layout"
	"github.com/spf13/cobra"
)

var checkSchemaOnly bool

func init() {
	checkCmd.Flags().BoolVar(&checkSchemaOnly, "schema-only", false, "Validate the manifest without probing the filesystem")
	addTimeoutFlag(checkCmd)
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check <layout.yaml>",
	Short: "Verify that the files and directories of a layout manifest exist",
	Long: `Validate a layout manifest against the embedded schema, then build every file
path it declares and probe it, and list every directory it declares.

--schema-only stops after validation. --timeout bounds the filesystem probes.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if checkSchemaOnly {
			return validateOnly(out, args[0])
		}

		m, err := layout.Load(args[0])
		var invalid *layout.InvalidError
		if errors.As(err, &invalid) {
			for _, issue := range invalid.Result.Issues {
				fmt.Fprintf(out, "%s %s\n", markFail, issue)
			}
			return err
		}
		if err != nil {
			return err
		}

		ctx, cancel := probeContext(cmd)
		defer cancel()

		report, err := layout.CheckContext(ctx, m)
		if err != nil {
			return err
		}
		logger.Info("layout checked", map[string]string{
			"layout":   report.Manifest,
			"platform": report.Platform.String(),
			"missing":  printer.Sprintf("%d", report.Missing()),
		})

		printReport(out, report)
		if !report.OK() {
			return fmt.Errorf("layout %s: %d check(s) failed", m.Name, report.Missing())
		}
		return nil
	},
}

func validateOnly(w io.Writer, path string) error {
	result, err := layout.ValidateFile(path)
	if err != nil {
		return err
	}
	if !result.Valid {
		for _, issue := range result.Issues {
			fmt.Fprintf(w, "%s %s\n", markFail, issue)
		}
		return fmt.Errorf("layout %s has %d validation issue(s)", path, len(result.Issues))
	}
	fmt.Fprintf(w, "%s %s is valid\n", markOK, path)
	return nil
}

func printReport(w io.Writer, r *layout.Report) {
	fmt.Fprintf(w, "Layout %s (%s)\n", r.Manifest, r.Platform)

	for _, f := range r.Files {
		switch {
		case f.Truncated:
			fmt.Fprintf(w, "%s %s (truncated at %d bytes)\n", markWarn, f.Path, layout.MaxPathLen)
		case f.Exists:
			fmt.Fprintf(w, "%s %s\n", markOK, f.Path)
		default:
			fmt.Fprintf(w, "%s %s\n", markMiss, f.Path)
		}
	}

	for _, d := range r.Dirs {
		switch {
		case d.Err != nil:
			fmt.Fprintf(w, "%s %s: %v\n", markMiss, d.Path, d.Err)
		case !d.OK():
			printer.Fprintf(w, "%s %s: %d entries, want at least %d\n", markFail, d.Path, d.Entries, d.Spec.MinEntries)
		default:
			printer.Fprintf(w, "%s %s (%d entries)\n", markOK, d.Path, d.Entries)
		}
	}
}
