package cli

import (
	"encoding/json"
	"fmt"

	"github.com/hostkit-labs/hostkit/internal/branding"
	"github.com/hostkit-labs/hostkit/internal/buildinfo"
	"github.com/spf13/cobra"
)

var (
	versionShort   bool
	versionJSON    bool
	versionRequire string
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print version info as JSON")
	versionCmd.Flags().StringVar(&versionRequire, "require", "", "Fail unless the version satisfies a semver constraint")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		info := currentBuild()

		if versionRequire != "" {
			ok, err := info.Satisfies(versionRequire)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("version %s does not satisfy %q", info.Version, versionRequire)
			}
		}

		if versionShort {
			fmt.Fprintln(out, info.Version)
			return nil
		}

		if versionJSON {
			data, err := json.MarshalIndent(struct {
				buildinfo.Info
				Release bool `json:"release"`
			}{info, info.IsRelease()}, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling version info: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		kind := "development build"
		if info.IsRelease() {
			kind = "release"
		}
		fmt.Fprintf(out, "%s version %s (%s, commit: %s, built: %s)\n", branding.CLIName(), info.Version, kind, info.Commit, info.Date)
		return nil
	},
}
