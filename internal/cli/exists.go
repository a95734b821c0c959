package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/hostkit-labs/hostkit/internal/platform"
	"github.com/spf13/cobra"
)

func init() {
	addTimeoutFlag(existsCmd)
	rootCmd.AddCommand(existsCmd)
}

type existsResult struct {
	Path   string `json:"path" yaml:"path"`
	Exists bool   `json:"exists" yaml:"exists"`
}

var existsCmd = &cobra.Command{
	Use:   "exists <path>...",
	Short: "Report whether each path exists",
	Long: `Query filesystem metadata for each path. Files and directories both count.
The command fails if any path is missing, or if --timeout passes first.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := probeContext(cmd)
		defer cancel()

		results := make([]existsResult, 0, len(args))
		missing := 0
		for _, path := range args {
			ok, err := platform.FileExistsContext(ctx, path)
			if err != nil {
				return fmt.Errorf("probing %s: %w", path, err)
			}
			logger.Debug("probe", map[string]string{"path": path, "exists": strconv.FormatBool(ok)})
			if !ok {
				missing++
			}
			results = append(results, existsResult{Path: path, Exists: ok})
		}

		err := render(cmd.OutOrStdout(), results, func(w io.Writer) error {
			for _, r := range results {
				mark := markOK
				if !r.Exists {
					mark = markMiss
				}
				fmt.Fprintf(w, "%s %s\n", mark, r.Path)
			}
			return nil
		})
		if err != nil {
			return err
		}

		if missing > 0 {
			return fmt.Errorf("%d of %d path(s) missing", missing, len(args))
		}
		return nil
	},
}
