package cli

import (
	"fmt"
	"os"

	"github.com/hostkit-labs/hostkit/internal/branding"
	"github.com/hostkit-labs/hostkit/internal/buildinfo"
	"github.com/hostkit-labs/hostkit/internal/config"
	"github.com/hostkit-labs/hostkit/internal/logging"
	"github.com/hostkit-labs/hostkit/internal/platform"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	flagVerbose bool
	flagOutput  string

	logger logging.Logger = logging.Nop{}
	runID  string
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Write RFC 5424 diagnostics to stderr")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "Output format: text, json or yaml")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` reports how the host platform looks to an application: which
platform it was built for, how paths are separated and classified, which
byte order the CPU uses, and whether expected files and directories exist.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()

		if flagVerbose || config.GetBool(config.KeyVerbose) {
			l := logging.New(branding.CLIName(), cmd.ErrOrStderr())
			logger, runID = l, l.RunID()
		} else {
			logger, runID = logging.Nop{}, ""
		}
		logger.Debug("command started", map[string]string{
			"command":  cmd.CommandPath(),
			"platform": platform.Current().String(),
			"version":  buildVersion,
		})

		_, err := outputFormat()
		return err
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, errorLine(err))
	}
	return err
}

// errorLine formats a command failure. Verbose runs name their run ID so the
// line can be matched with the diagnostic records.
func errorLine(err error) string {
	if runID != "" {
		return fmt.Sprintf("Error: %v (run %s)", err, runID)
	}
	return fmt.Sprintf("Error: %v", err)
}

func currentBuild() buildinfo.Info {
	return buildinfo.Info{Version: buildVersion, Commit: buildCommit, Date: buildDate}
}
