package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/hostkit-labs/hostkit/internal/platform"
	"github.com/spf13/cobra"
)

// defaultPathCapacity matches the path buffers used elsewhere in the tool.
const defaultPathCapacity = 4096

var (
	pathCapacity int
	pathAs       string
)

func init() {
	pathBuildCmd.Flags().IntVar(&pathCapacity, "capacity", defaultPathCapacity, "Maximum path length in bytes")
	pathCmd.PersistentFlags().StringVar(&pathAs, "as", "", "Apply the rules of another platform (linux, macosx, windows)")
	pathCmd.AddCommand(pathBuildCmd)
	pathCmd.AddCommand(pathAbsCmd)
	rootCmd.AddCommand(pathCmd)
}

// targetPlatform returns the platform named by --as, or the running one.
func targetPlatform() (platform.Type, error) {
	if pathAs == "" {
		return platform.Current(), nil
	}
	return platform.ParseType(pathAs)
}

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Build and classify paths",
}

type builtPath struct {
	Path      string `json:"path" yaml:"path"`
	Truncated bool   `json:"truncated" yaml:"truncated"`
	Capacity  int    `json:"capacity" yaml:"capacity"`
}

var pathBuildCmd = &cobra.Command{
	Use:   "build <dir> <base> <ext>",
	Short: "Join a directory, base name and extension",
	Long: `Write dir + separator + base + "." + ext into a buffer of --capacity bytes.
The command fails if the result had to be truncated.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := targetPlatform()
		if err != nil {
			return err
		}
		if pathCapacity < 0 {
			return fmt.Errorf("capacity must not be negative, got %d", pathCapacity)
		}

		buf := platform.NewBuffer(pathCapacity)
		ok := t.BuildAbsolutePath(args[0], args[1], args[2], buf)
		res := builtPath{Path: buf.String(), Truncated: !ok, Capacity: buf.Cap()}
		logger.Debug("path built", map[string]string{
			"platform":  t.String(),
			"path":      res.Path,
			"truncated": strconv.FormatBool(res.Truncated),
		})

		err = render(cmd.OutOrStdout(), res, func(w io.Writer) error {
			_, err := fmt.Fprintln(w, res.Path)
			return err
		})
		if err != nil {
			return err
		}
		if res.Truncated {
			return fmt.Errorf("path truncated to %d byte(s)", res.Capacity)
		}
		return nil
	},
}

type absPath struct {
	Path     string `json:"path" yaml:"path"`
	Platform string `json:"platform" yaml:"platform"`
	Absolute bool   `json:"absolute" yaml:"absolute"`
}

var pathAbsCmd = &cobra.Command{
	Use:   "abs <path>",
	Short: "Report whether a path is absolute",
	Long: `Classify a path with the platform's lexical rule: on Windows a drive letter,
colon and backslash ("C:\..."); elsewhere a leading slash. UNC paths and "~"
are not recognized.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := targetPlatform()
		if err != nil {
			return err
		}
		res := absPath{Path: args[0], Platform: t.String(), Absolute: t.IsAbsolutePath(args[0])}
		return render(cmd.OutOrStdout(), res, func(w io.Writer) error {
			_, err := fmt.Fprintln(w, res.Absolute)
			return err
		})
	},
}
