package cli

import (
	"fmt"
	"io"

	"github.com/hostkit-labs/hostkit/internal/platform"
	"github.com/spf13/cobra"
)

var (
	lsStrict bool
	lsCount  bool
)

func init() {
	lsCmd.Flags().BoolVar(&lsStrict, "strict", false, "Fail when the directory cannot be opened")
	lsCmd.Flags().BoolVar(&lsCount, "count", false, "Print the number of entries only")
	addTimeoutFlag(lsCmd)
	rootCmd.AddCommand(lsCmd)
}

var lsCmd = &cobra.Command{
	Use:   "ls <dir>",
	Short: "List every directory entry, including . and ..",
	Long: `List the raw entries of a directory as the operating system returns them,
including the "." and ".." entries and hidden files, in native order.

Without --strict a directory that cannot be opened lists nothing, the same as
an empty listing. With --strict the open failure is reported. --timeout
abandons the listing and fails when it takes too long.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := args[0]

		var names []string
		if lsStrict || probeTimeout > 0 {
			ctx, cancel := probeContext(cmd)
			defer cancel()

			var err error
			names, err = platform.ReadDirectoryContext(ctx, dir)
			if ctxErr := ctx.Err(); ctxErr != nil {
				return fmt.Errorf("listing %s: %w", dir, ctxErr)
			}
			if err != nil {
				if lsStrict {
					return err
				}
				logger.Warn("directory could not be read", map[string]string{"dir": dir, "error": err.Error()})
			}
		} else if platform.ListDirectory(dir, &names) == 0 {
			logger.Warn("directory listed no entries", map[string]string{"dir": dir})
		}
		logger.Debug("listed", map[string]string{"dir": dir, "entries": printer.Sprintf("%d", len(names))})

		if names == nil {
			names = []string{}
		}
		if lsCount {
			return render(cmd.OutOrStdout(), map[string]int{"entries": len(names)}, func(w io.Writer) error {
				_, err := printer.Fprintf(w, "%d\n", len(names))
				return err
			})
		}
		return render(cmd.OutOrStdout(), names, func(w io.Writer) error {
			for _, name := range names {
				fmt.Fprintln(w, name)
			}
			return nil
		})
	},
}
