package cli

import (
	"fmt"
	"io"

	"github.com/hostkit-labs/hostkit/internal/buildinfo"
	"github.com/hostkit-labs/hostkit/internal/byteorder"
	"github.com/hostkit-labs/hostkit/internal/platform"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(infoCmd)
}

type hostInfo struct {
	Platform   string         `json:"platform" yaml:"platform"`
	Separator  string         `json:"separator" yaml:"separator"`
	ByteOrder  string         `json:"byte_order" yaml:"byte_order"`
	Is64Bit    bool           `json:"is_64_bit" yaml:"is_64_bit"`
	Executable string         `json:"executable" yaml:"executable"`
	Build      buildinfo.Info `json:"build" yaml:"build"`
	Release    bool           `json:"release" yaml:"release"`
}

func collectHostInfo() hostInfo {
	p := platform.Current()
	return hostInfo{
		Platform:   p.String(),
		Separator:  string(platform.Separator),
		ByteOrder:  byteorder.HostOrder().String(),
		Is64Bit:    platform.Is64Bit(),
		Executable: p.ExecutableName("<name>"),
		Build:      currentBuild(),
		Release:    currentBuild().IsRelease(),
	}
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show platform, path separator and byte order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := collectHostInfo()
		return render(cmd.OutOrStdout(), info, func(w io.Writer) error {
			fmt.Fprintf(w, "Platform:    %s\n", info.Platform)
			fmt.Fprintf(w, "Separator:   %s\n", info.Separator)
			fmt.Fprintf(w, "Byte order:  %s\n", info.ByteOrder)
			fmt.Fprintf(w, "64-bit:      %t\n", info.Is64Bit)
			fmt.Fprintf(w, "Executables: %s\n", info.Executable)
			fmt.Fprintf(w, "Version:     %s\n", info.Build.Version)
			fmt.Fprintf(w, "Release:     %t\n", info.Release)
			return nil
		})
	},
}
