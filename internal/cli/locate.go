package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/hostkit-labs/hostkit/internal/config"
	"github.com/hostkit-labs/hostkit/internal/locate"
	"github.com/spf13/cobra"
)

var (
	locateExePath   string
	locateResources string
	locateName      string
)

func init() {
	locateCmd.Flags().StringVar(&locateExePath, "exe-path", "", "Explicit path to the application executable")
	locateCmd.Flags().StringVar(&locateResources, "resources", "", "Path to the test resources directory")
	locateCmd.Flags().StringVar(&locateName, "name", "", "Executable base name (default from config)")
	rootCmd.AddCommand(locateCmd)
}

type locateResult struct {
	Executable string `json:"executable" yaml:"executable"`
	Resources  string `json:"resources,omitempty" yaml:"resources,omitempty"`
	SkipsApp   bool   `json:"skips_application_tests" yaml:"skips_application_tests"`
}

// firstNonEmpty returns the flag value or, if empty, the config value.
func firstNonEmpty(flag, key string) string {
	if flag != "" {
		return flag
	}
	return config.Get(key)
}

var locateCmd = &cobra.Command{
	Use:   "locate",
	Short: "Find the application executable and resources directory",
	Long: `Find the application executable and the test resources directory.

Without --exe-path the executable is looked for next to this binary, named
after --name with "64" appended on 64-bit builds and ".exe" on Windows. A
missing executable is an error. A missing resources directory only means the
application tests would be skipped.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		name := firstNonEmpty(locateName, config.KeyExeName)
		exePath := firstNonEmpty(locateExePath, config.KeyExePath)
		resPath := firstNonEmpty(locateResources, config.KeyResources)

		exe, exeErr := locate.Executable(exePath, name)
		res, resErr := locate.Resources(resPath)

		logger.Debug("locate", map[string]string{"name": name, "executable": exe, "resources": res})
		if resErr != nil {
			logger.Warn("resources unavailable", map[string]string{"error": resErr.Error()})
		}

		result := locateResult{Executable: exe, Resources: res, SkipsApp: resErr != nil}
		err := render(cmd.OutOrStdout(), result, func(w io.Writer) error {
			if exeErr != nil {
				fmt.Fprintf(w, "%s executable: %v\n", markMiss, exeErr)
			} else {
				fmt.Fprintf(w, "%s executable: %s\n", markOK, exe)
			}

			switch {
			case errors.Is(resErr, locate.ErrNotConfigured):
				fmt.Fprintf(w, "%s resources not configured, application tests will be skipped\n", markWarn)
			case resErr != nil:
				fmt.Fprintf(w, "%s resources: %v, application tests will be skipped\n", markWarn, resErr)
			default:
				fmt.Fprintf(w, "%s resources: %s\n", markOK, res)
			}
			return nil
		})
		if err != nil {
			return err
		}
		return exeErr
	},
}
